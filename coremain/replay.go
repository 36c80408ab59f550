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
	"fmt"
	"io"

	"github.com/IrineSistiana/linkedlist/mlog"
	"github.com/IrineSistiana/linkedlist/pkg/replay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runReplay loads the config, runs every script and writes the report to out.
func runReplay(f *replayFlags, out io.Writer) error {
	cfg, err := loadConfig(f.c)
	if err != nil {
		return err
	}

	lg, err := mlog.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer lg.Sync()

	reg := prometheus.NewRegistry()
	r := replay.NewRunner(replay.Opts{
		Logger:     lg,
		MetricsReg: prometheus.WrapRegistererWithPrefix("linkedlist_", reg),
	})

	results := make([]*replay.Result, 0, len(cfg.Scripts))
	for i, args := range cfg.Scripts {
		s, err := replay.Decode(args)
		if err != nil {
			return fmt.Errorf("invalid script #%d: %w", i, err)
		}
		res, err := r.Run(s)
		if err != nil {
			return err
		}
		lg.Info("script replayed", zap.String("name", s.Name), zap.String("variant", s.Variant), zap.Int("len", res.Len))
		results = append(results, res)
	}

	if err := replay.WriteReport(out, results); err != nil {
		return err
	}
	if f.metrics {
		return writeMetrics(out, reg)
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, decoderOpt); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	mlog.L().Info("config loaded", zap.String("file", v.ConfigFileUsed()), zap.Int("scripts", len(cfg.Scripts)))
	return cfg, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
