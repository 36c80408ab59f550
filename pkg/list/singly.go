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

// Singly is a singly linked list. The zero value is an empty list.
//
// Nodes only link forward, so AddBefore on an interior node, RemoveLast
// and Remove on a non-front node scan from the front to find the
// predecessor and cost O(n). Everything else is O(1).
type Singly[V any] struct {
	front, back *Node[V]
	length      int
}

func NewSingly[V any]() *Singly[V] {
	return &Singly[V]{}
}

func (l *Singly[V]) Len() int {
	return l.length
}

func (l *Singly[V]) Front() *Node[V] {
	return l.front
}

func (l *Singly[V]) Back() *Node[V] {
	return l.back
}

func (l *Singly[V]) owns(n *Node[V]) bool {
	return n != nil && n.owner == l
}

func (l *Singly[V]) AddFirst(v V) *Node[V] {
	n := newNode[V](v, l)
	if l.length == 0 {
		l.back = n
	} else {
		n.next = l.front
	}
	l.front = n
	l.length++
	return n
}

func (l *Singly[V]) AddLast(v V) *Node[V] {
	n := newNode[V](v, l)
	if l.length == 0 {
		l.front = n
	} else {
		l.back.next = n
	}
	l.back = n
	l.length++
	return n
}

func (l *Singly[V]) AddBefore(mark *Node[V], v V) (*Node[V], error) {
	if !l.owns(mark) {
		return nil, ErrDanglingNode
	}
	if mark == l.front {
		return l.AddFirst(v), nil
	}

	p := l.findPrev(mark)
	if p == nil {
		return nil, ErrDanglingNode
	}
	n := newNode[V](v, l)
	n.next = mark
	p.next = n
	l.length++
	return n, nil
}

func (l *Singly[V]) AddAfter(mark *Node[V], v V) (*Node[V], error) {
	if !l.owns(mark) {
		return nil, ErrDanglingNode
	}
	if mark == l.back {
		return l.AddLast(v), nil
	}

	n := newNode[V](v, l)
	n.next = mark.next
	mark.next = n
	l.length++
	return n, nil
}

func (l *Singly[V]) RemoveFirst() (*Node[V], error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}

	n := l.front
	if l.length == 1 {
		l.front, l.back = nil, nil
	} else {
		l.front = n.next
	}
	l.length--
	n.detach()
	return n, nil
}

func (l *Singly[V]) RemoveLast() (*Node[V], error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}

	n := l.back
	if l.length == 1 {
		l.front, l.back = nil, nil
	} else {
		p := l.findPrev(n)
		p.next = nil
		l.back = p
	}
	l.length--
	n.detach()
	return n, nil
}

func (l *Singly[V]) Remove(n *Node[V]) error {
	if l.length == 0 {
		return ErrEmptyList
	}
	if !l.owns(n) {
		return ErrDanglingNode
	}

	switch n {
	case l.front:
		_, err := l.RemoveFirst()
		return err
	case l.back:
		_, err := l.RemoveLast()
		return err
	}

	p := l.findPrev(n)
	if p == nil {
		return ErrDanglingNode
	}
	p.next = n.next
	l.length--
	n.detach()
	return nil
}

// findPrev walks from the front and returns the node whose next is target,
// or nil if target is the front or is not reachable.
func (l *Singly[V]) findPrev(target *Node[V]) *Node[V] {
	p := l.front
	for p != nil && p.next != target {
		p = p.next
	}
	return p
}
