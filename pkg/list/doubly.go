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

// Doubly is a doubly linked list. The zero value is an empty list.
// All operations are O(1).
type Doubly[V any] struct {
	front, back *Node[V]
	length      int
}

func NewDoubly[V any]() *Doubly[V] {
	return &Doubly[V]{}
}

func (l *Doubly[V]) Len() int {
	return l.length
}

func (l *Doubly[V]) Front() *Node[V] {
	return l.front
}

func (l *Doubly[V]) Back() *Node[V] {
	return l.back
}

func (l *Doubly[V]) owns(n *Node[V]) bool {
	return n != nil && n.owner == l
}

func (l *Doubly[V]) AddFirst(v V) *Node[V] {
	n := newNode[V](v, l)
	if l.length == 0 {
		l.back = n
	} else {
		n.next = l.front
		l.front.prev = n
	}
	l.front = n
	l.length++
	return n
}

func (l *Doubly[V]) AddLast(v V) *Node[V] {
	n := newNode[V](v, l)
	if l.length == 0 {
		l.front = n
	} else {
		n.prev = l.back
		l.back.next = n
	}
	l.back = n
	l.length++
	return n
}

func (l *Doubly[V]) AddBefore(mark *Node[V], v V) (*Node[V], error) {
	if !l.owns(mark) {
		return nil, ErrDanglingNode
	}
	if mark == l.front {
		return l.AddFirst(v), nil
	}

	n := newNode[V](v, l)
	n.prev = mark.prev
	mark.prev.next = n
	mark.prev = n
	n.next = mark
	l.length++
	return n, nil
}

func (l *Doubly[V]) AddAfter(mark *Node[V], v V) (*Node[V], error) {
	if !l.owns(mark) {
		return nil, ErrDanglingNode
	}
	if mark == l.back {
		return l.AddLast(v), nil
	}

	n := newNode[V](v, l)
	n.next = mark.next
	mark.next.prev = n
	mark.next = n
	n.prev = mark
	l.length++
	return n, nil
}

func (l *Doubly[V]) RemoveFirst() (*Node[V], error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}

	n := l.front
	if l.length == 1 {
		l.front, l.back = nil, nil
	} else {
		l.front = n.next
		l.front.prev = nil
	}
	l.length--
	n.detach()
	return n, nil
}

func (l *Doubly[V]) RemoveLast() (*Node[V], error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}

	n := l.back
	if l.length == 1 {
		l.front, l.back = nil, nil
	} else {
		l.back = n.prev
		l.back.next = nil
	}
	l.length--
	n.detach()
	return n, nil
}

func (l *Doubly[V]) Remove(n *Node[V]) error {
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

	n.prev.next = n.next
	n.next.prev = n.prev
	l.length--
	n.detach()
	return nil
}
