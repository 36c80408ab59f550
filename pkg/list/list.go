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

package list

import "errors"

var (
	ErrEmptyList    = errors.New("list is empty")
	ErrDanglingNode = errors.New("node does not belong to this list")
)

// List is the operation set shared by Singly and Doubly.
// A List is not safe for concurrent use.
type List[V any] interface {
	Len() int
	Front() *Node[V]
	Back() *Node[V]

	// AddFirst inserts v at the front and returns its node.
	AddFirst(v V) *Node[V]
	// AddLast inserts v at the back and returns its node.
	AddLast(v V) *Node[V]
	// AddBefore inserts v immediately before mark.
	// It returns ErrDanglingNode if mark is not in this list.
	AddBefore(mark *Node[V], v V) (*Node[V], error)
	// AddAfter inserts v immediately after mark.
	// It returns ErrDanglingNode if mark is not in this list.
	AddAfter(mark *Node[V], v V) (*Node[V], error)

	// RemoveFirst detaches and returns the front node.
	RemoveFirst() (*Node[V], error)
	// RemoveLast detaches and returns the back node.
	RemoveLast() (*Node[V], error)
	// Remove detaches n. An empty list always reports ErrEmptyList,
	// otherwise a node that is not in this list reports ErrDanglingNode.
	Remove(n *Node[V]) error
}

var (
	_ List[int] = (*Singly[int])(nil)
	_ List[int] = (*Doubly[int])(nil)
)
