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
	"bytes"
	"testing"

	"github.com/IrineSistiana/linkedlist/pkg/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReplay(t *testing.T) {
	out := new(bytes.Buffer)
	err := runReplay(&replayFlags{c: "testdata/replay.yaml"}, out)
	require.NoError(t, err)

	var results []*replay.Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 3)

	assert.Equal(t, []string{"0", "1", "2"}, results[0].Forward)
	assert.Equal(t, 3, results[0].Len)
	assert.Nil(t, results[0].Backward)

	assert.Equal(t, []string{"1", "99", "2", "3"}, results[1].Forward)
	assert.Equal(t, []string{"3", "2", "99", "1"}, results[1].Backward)

	assert.Equal(t, []string{"b"}, results[2].Forward)
	assert.Equal(t, 3, results[2].ExpectedErrors)
}

func TestReplay_Metrics(t *testing.T) {
	out := new(bytes.Buffer)
	err := runReplay(&replayFlags{c: "testdata/replay.yaml", metrics: true}, out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `linkedlist_replay_ops_total{op="add_last"} 8`)
	assert.Contains(t, out.String(), `linkedlist_replay_errors_total{kind="dangling_node",op="add_after"} 1`)
	assert.Contains(t, out.String(), `linkedlist_replay_list_len{script="scenario"} 3`)
}

func TestReplay_Errors(t *testing.T) {
	err := runReplay(&replayFlags{c: "testdata/bad_script.yaml"}, new(bytes.Buffer))
	assert.Error(t, err)

	err = runReplay(&replayFlags{c: "testdata/not_exist.yaml"}, new(bytes.Buffer))
	assert.Error(t, err)
}

func TestRootCmd(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"replay", "-c", "testdata/replay.yaml"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "name: insert_before")
}
