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
	"fmt"

	"github.com/IrineSistiana/linkedlist/pkg/list"
	"github.com/IrineSistiana/linkedlist/pkg/utils"
)

const (
	VariantSingly = "singly"
	VariantDoubly = "doubly"
)

const (
	OpAddFirst    = "add_first"
	OpAddLast     = "add_last"
	OpAddBefore   = "add_before"
	OpAddAfter    = "add_after"
	OpRemoveFirst = "remove_first"
	OpRemoveLast  = "remove_last"
	OpRemove      = "remove"
)

// Error kinds that can be named in Op.ExpectErr.
const (
	ErrKindEmptyList    = "empty_list"
	ErrKindDanglingNode = "dangling_node"
	errKindOther        = "other"
)

var errKinds = map[string]error{
	ErrKindEmptyList:    list.ErrEmptyList,
	ErrKindDanglingNode: list.ErrDanglingNode,
}

// Script is a named sequence of list operations run against a fresh list.
type Script struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Ops     []Op   `yaml:"ops"`
}

type Op struct {
	// Op, required. One of the Op* constants.
	Op string `yaml:"op"`

	// Value of the node created by add ops.
	Value string `yaml:"value"`

	// Tag names the node created by an add op.
	Tag string `yaml:"tag"`

	// Node is the tag of the node used by add_before, add_after and remove.
	// A removed node keeps its tag.
	Node string `yaml:"node"`

	// ExpectErr, if set, is the error kind this op must fail with.
	ExpectErr string `yaml:"expect_err"`
}

func (op *Op) isAdd() bool {
	switch op.Op {
	case OpAddFirst, OpAddLast, OpAddBefore, OpAddAfter:
		return true
	}
	return false
}

func (op *Op) needsNode() bool {
	switch op.Op {
	case OpAddBefore, OpAddAfter, OpRemove:
		return true
	}
	return false
}

// Decode decodes and validates a script from its config map.
func Decode(in map[string]interface{}) (*Script, error) {
	s := new(Script)
	if err := utils.WeakDecode(in, s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports every problem of s at once.
func (s *Script) Validate() error {
	var es utils.Errors
	switch s.Variant {
	case VariantSingly, VariantDoubly:
	default:
		es.Append(fmt.Errorf("script %q: invalid variant %q", s.Name, s.Variant))
	}

	tags := make(map[string]struct{})
	for i := range s.Ops {
		op := &s.Ops[i]
		switch op.Op {
		case OpAddFirst, OpAddLast, OpAddBefore, OpAddAfter, OpRemoveFirst, OpRemoveLast, OpRemove:
		default:
			es.Append(fmt.Errorf("script %q op #%d: unknown op %q", s.Name, i, op.Op))
			continue
		}

		if op.needsNode() {
			if len(op.Node) == 0 {
				es.Append(fmt.Errorf("script %q op #%d: %s requires a node", s.Name, i, op.Op))
			} else if _, ok := tags[op.Node]; !ok {
				es.Append(fmt.Errorf("script %q op #%d: undefined node tag %q", s.Name, i, op.Node))
			}
		}

		if len(op.Tag) > 0 {
			if !op.isAdd() {
				es.Append(fmt.Errorf("script %q op #%d: %s cannot have a tag", s.Name, i, op.Op))
			} else if _, dup := tags[op.Tag]; dup {
				es.Append(fmt.Errorf("script %q op #%d: duplicated tag %q", s.Name, i, op.Tag))
			}
			tags[op.Tag] = struct{}{}
		}

		if len(op.ExpectErr) > 0 {
			if _, ok := errKinds[op.ExpectErr]; !ok {
				es.Append(fmt.Errorf("script %q op #%d: unknown error kind %q", s.Name, i, op.ExpectErr))
			}
		}
	}
	return es.Build()
}
