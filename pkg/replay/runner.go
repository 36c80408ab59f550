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
	"errors"
	"fmt"
	"io"

	"github.com/IrineSistiana/linkedlist/mlog"
	"github.com/IrineSistiana/linkedlist/pkg/list"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Opts struct {
	// Logger, optional.
	Logger *zap.Logger

	// MetricsReg, optional. Runner metrics are registered into it.
	MetricsReg prometheus.Registerer
}

// Runner runs scripts one at a time. It is not safe for concurrent use.
type Runner struct {
	logger *zap.Logger

	opsTotal *prometheus.CounterVec
	errTotal *prometheus.CounterVec
	listLen  *prometheus.GaugeVec
}

func NewRunner(opts Opts) *Runner {
	lg := opts.Logger
	if lg == nil {
		lg = mlog.Nop()
	}

	r := &Runner{
		logger: lg,
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "replay_ops_total",
			Help: "The total number of replayed list operations",
		}, []string{"op"}),
		errTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "replay_errors_total",
			Help: "The total number of list operations that returned an error",
		}, []string{"op", "kind"}),
		listLen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "replay_list_len",
			Help: "Current list length of a script",
		}, []string{"script"}),
	}
	if opts.MetricsReg != nil {
		opts.MetricsReg.MustRegister(r.opsTotal, r.errTotal, r.listLen)
	}
	return r
}

// Result is the final state of a replayed list.
type Result struct {
	Name     string   `yaml:"name"`
	Variant  string   `yaml:"variant"`
	Len      int      `yaml:"len"`
	Forward  []string `yaml:"forward"`
	Backward []string `yaml:"backward,omitempty"`

	// ExpectedErrors counts ops that failed as the script expected.
	ExpectedErrors int `yaml:"expected_errors"`
}

func newList(variant string) (list.List[string], error) {
	switch variant {
	case VariantSingly:
		return list.NewSingly[string](), nil
	case VariantDoubly:
		return list.NewDoubly[string](), nil
	default:
		return nil, fmt.Errorf("invalid variant %q", variant)
	}
}

// Run replays s against a fresh list. It stops at the first op whose
// outcome differs from what the script expects.
func (r *Runner) Run(s *Script) (*Result, error) {
	l, err := newList(s.Variant)
	if err != nil {
		return nil, err
	}

	res := &Result{Name: s.Name, Variant: s.Variant}
	tags := make(map[string]*list.Node[string])
	for i := range s.Ops {
		op := &s.Ops[i]
		err := r.apply(l, tags, op)
		r.opsTotal.WithLabelValues(op.Op).Inc()
		r.listLen.WithLabelValues(s.Name).Set(float64(l.Len()))
		if err != nil {
			r.errTotal.WithLabelValues(op.Op, errKind(err)).Inc()
		}

		if len(op.ExpectErr) == 0 {
			if err != nil {
				r.logger.Warn("op failed", zap.String("script", s.Name), zap.Int("idx", i), zap.String("op", op.Op), zap.Error(err))
				return nil, fmt.Errorf("script %q op #%d %s: %w", s.Name, i, op.Op, err)
			}
		} else {
			want := errKinds[op.ExpectErr]
			if !errors.Is(err, want) {
				r.logger.Warn("op did not fail as expected", zap.String("script", s.Name), zap.Int("idx", i), zap.String("op", op.Op), zap.Error(err))
				return nil, fmt.Errorf("script %q op #%d %s: want error %s, got %v", s.Name, i, op.Op, op.ExpectErr, err)
			}
			res.ExpectedErrors++
		}

		r.logger.Debug(
			"op replayed",
			zap.String("script", s.Name),
			zap.Int("idx", i),
			zap.String("op", op.Op),
			zap.Int("len", l.Len()),
			zap.NamedError("expected_err", err),
		)
	}

	res.Len = l.Len()
	res.Forward = make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		res.Forward = append(res.Forward, e.Value)
	}
	if _, ok := l.(*list.Doubly[string]); ok {
		res.Backward = make([]string, 0, l.Len())
		for e := l.Back(); e != nil; e = e.Prev() {
			res.Backward = append(res.Backward, e.Value)
		}
	}
	return res, nil
}

func (r *Runner) apply(l list.List[string], tags map[string]*list.Node[string], op *Op) error {
	var (
		n   *list.Node[string]
		err error
	)
	switch op.Op {
	case OpAddFirst:
		n = l.AddFirst(op.Value)
	case OpAddLast:
		n = l.AddLast(op.Value)
	case OpAddBefore:
		n, err = l.AddBefore(tags[op.Node], op.Value)
	case OpAddAfter:
		n, err = l.AddAfter(tags[op.Node], op.Value)
	case OpRemoveFirst:
		_, err = l.RemoveFirst()
	case OpRemoveLast:
		_, err = l.RemoveLast()
	case OpRemove:
		err = l.Remove(tags[op.Node])
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	if n != nil && len(op.Tag) > 0 {
		tags[op.Tag] = n
	}
	return err
}

func errKind(err error) string {
	for kind, e := range errKinds {
		if errors.Is(err, e) {
			return kind
		}
	}
	return errKindOther
}

// WriteReport writes results to w as a yaml document.
func WriteReport(w io.Writer, results []*Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
