/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of linkedlist.
 *
 * linkedlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * linkedlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package coremain

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "linkedlist",
}

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay list operation scripts from a config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(&rf, cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(replayCmd)
	fs := replayCmd.PersistentFlags()
	fs.StringVarP(&rf.c, "config", "c", "", "config file")
	fs.BoolVar(&rf.metrics, "metrics", false, "print metrics in prometheus text format after the report")
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

type replayFlags struct {
	c       string
	metrics bool
}

var rf = replayFlags{}

func decoderOpt(cfg *mapstructure.DecoderConfig) {
	cfg.ErrorUnused = true
	cfg.TagName = "yaml"
	cfg.WeaklyTypedInput = true
}
