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

package replay

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"
)

func ops(in ...map[string]interface{}) []interface{} {
	s := make([]interface{}, 0, len(in))
	for _, m := range in {
		s = append(s, m)
	}
	return s
}

func TestDecode(t *testing.T) {
	s, err := Decode(map[string]interface{}{
		"name":    "demo",
		"variant": "doubly",
		"ops": ops(
			map[string]interface{}{"op": "add_last", "value": 1, "tag": "a"},
			map[string]interface{}{"op": "remove", "node": "a"},
			map[string]interface{}{"op": "remove", "node": "a", "expect_err": "dangling_node"},
		),
	})
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Ops, 3)
	assert.Equal(t, Op{Op: OpAddLast, Value: "1", Tag: "a"}, s.Ops[0])
	assert.Equal(t, ErrKindDanglingNode, s.Ops[2].ExpectErr)

	_, err = Decode(map[string]interface{}{"name": "x", "variant": "doubly", "bad_key": 1})
	assert.Error(t, err)
}

func TestScript_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       Script
		wantErr bool
	}{
		{"empty singly", Script{Variant: VariantSingly}, false},
		{"bad variant", Script{Variant: "triply"}, true},
		{"unknown op", Script{Variant: VariantSingly, Ops: []Op{{Op: "push"}}}, true},
		{"missing node", Script{Variant: VariantSingly, Ops: []Op{{Op: OpRemove}}}, true},
		{"undefined tag", Script{Variant: VariantSingly, Ops: []Op{{Op: OpAddAfter, Node: "a"}}}, true},
		{"tag on remove", Script{Variant: VariantSingly, Ops: []Op{{Op: OpRemoveFirst, Tag: "a"}}}, true},
		{"dup tag", Script{Variant: VariantDoubly, Ops: []Op{{Op: OpAddLast, Tag: "a"}, {Op: OpAddLast, Tag: "a"}}}, true},
		{"bad err kind", Script{Variant: VariantDoubly, Ops: []Op{{Op: OpRemoveFirst, ExpectErr: "boom"}}}, true},
		{"tag then ref", Script{Variant: VariantDoubly, Ops: []Op{{Op: OpAddLast, Tag: "a"}, {Op: OpAddBefore, Node: "a"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	for _, variant := range []string{VariantSingly, VariantDoubly} {
		t.Run(variant, func(t *testing.T) {
			s := &Script{
				Name:    "scenario",
				Variant: variant,
				Ops: []Op{
					{Op: OpRemoveFirst, ExpectErr: ErrKindEmptyList},
					{Op: OpAddLast, Value: "1"},
					{Op: OpAddLast, Value: "2", Tag: "two"},
					{Op: OpAddLast, Value: "3"},
					{Op: OpAddBefore, Node: "two", Value: "99"},
					{Op: OpAddFirst, Value: "0"},
					{Op: OpRemoveLast},
					{Op: OpRemove, Node: "two"},
					{Op: OpAddAfter, Node: "two", Value: "x", ExpectErr: ErrKindDanglingNode},
				},
			}
			reg := prometheus.NewRegistry()
			r := NewRunner(Opts{Logger: zaptest.NewLogger(t), MetricsReg: reg})
			res, err := r.Run(s)
			require.NoError(t, err)

			assert.Equal(t, 3, res.Len)
			assert.Equal(t, []string{"0", "1", "99"}, res.Forward)
			if variant == VariantDoubly {
				assert.Equal(t, []string{"99", "1", "0"}, res.Backward)
			} else {
				assert.Nil(t, res.Backward)
			}
			assert.Equal(t, 2, res.ExpectedErrors)

			assert.Equal(t, float64(3), testutil.ToFloat64(r.opsTotal.WithLabelValues(OpAddLast)))
			assert.Equal(t, float64(1), testutil.ToFloat64(r.errTotal.WithLabelValues(OpRemoveFirst, ErrKindEmptyList)))
			assert.Equal(t, float64(1), testutil.ToFloat64(r.errTotal.WithLabelValues(OpAddAfter, ErrKindDanglingNode)))
			assert.Equal(t, float64(3), testutil.ToFloat64(r.listLen.WithLabelValues("scenario")))
		})
	}
}

func TestRunner_RunMismatch(t *testing.T) {
	r := NewRunner(Opts{})

	_, err := r.Run(&Script{Name: "unexpected", Variant: VariantSingly, Ops: []Op{{Op: OpRemoveLast}}})
	assert.Error(t, err)

	_, err = r.Run(&Script{Name: "missing", Variant: VariantSingly, Ops: []Op{
		{Op: OpAddLast, Value: "1"},
		{Op: OpRemoveLast, ExpectErr: ErrKindEmptyList},
	}})
	assert.Error(t, err)

	_, err = r.Run(&Script{Name: "variant", Variant: "triply"})
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	b := new(bytes.Buffer)
	in := []*Result{
		{Name: "a", Variant: VariantDoubly, Len: 2, Forward: []string{"1", "2"}, Backward: []string{"2", "1"}},
		{Name: "b", Variant: VariantSingly, Len: 0, Forward: []string{}},
	}
	require.NoError(t, WriteReport(b, in))
	assert.NotContains(t, b.String(), "backward: []")

	var out []*Result
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &out))
	assert.Equal(t, in, out)
}
