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

// Node is a list element. Nodes are only created by the Add* methods
// of a list and stay bound to that list until they are removed.
type Node[V any] struct {
	Value V

	next, prev *Node[V]
	owner      any // the list this node is linked into, nil if detached
}

func newNode[V any](v V, owner any) *Node[V] {
	return &Node[V]{Value: v, owner: owner}
}

// Next returns the next node or nil.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the previous node or nil.
// Nodes of a Singly list never have a previous link.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

func (n *Node[V]) detach() {
	n.next, n.prev, n.owner = nil, nil, nil
}
