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

package lru

import (
	"fmt"

	"github.com/IrineSistiana/linkedlist/pkg/list"
)

// LRU is a fixed size cache that evicts the least recently used key.
// It is not safe for concurrent use, see concurrent_lru.
type LRU[K comparable, V any] struct {
	maxSize int
	onEvict func(key K, v V)

	l *list.Doubly[KV[K, V]]
	m map[K]*list.Node[KV[K, V]]
}

type KV[K comparable, V any] struct {
	key K
	v   V
}

func NewLRU[K comparable, V any](maxSize int, onEvict func(key K, v V)) *LRU[K, V] {
	if maxSize <= 0 {
		panic(fmt.Sprintf("LRU: invalid max size: %d", maxSize))
	}

	return &LRU[K, V]{
		maxSize: maxSize,
		onEvict: onEvict,
		l:       list.NewDoubly[KV[K, V]](),
		m:       make(map[K]*list.Node[KV[K, V]]),
	}
}

func (q *LRU[K, V]) Add(key K, v V) {
	if e, ok := q.m[key]; ok { // update existed key
		q.moveToBack(e).Value.v = v
		return
	}

	o := q.Len() - q.maxSize + 1
	for o > 0 {
		key, v, _ := q.PopOldest()
		if q.onEvict != nil {
			q.onEvict(key, v)
		}
		o--
	}

	q.m[key] = q.l.AddLast(KV[K, V]{
		key: key,
		v:   v,
	})
}

func (q *LRU[K, V]) Del(key K) {
	e := q.m[key]
	if e != nil {
		q.delElem(e)
	}
}

func (q *LRU[K, V]) delElem(e *list.Node[KV[K, V]]) {
	key, v := e.Value.key, e.Value.v
	q.mustRemove(e)
	delete(q.m, key)
	if q.onEvict != nil {
		q.onEvict(key, v)
	}
}

func (q *LRU[K, V]) PopOldest() (key K, v V, ok bool) {
	e, err := q.l.RemoveFirst()
	if err != nil {
		return
	}
	key, v = e.Value.key, e.Value.v
	delete(q.m, key)
	return key, v, true
}

func (q *LRU[K, V]) Clean(f func(key K, v V) (remove bool)) (removed int) {
	e := q.l.Front()
	for e != nil {
		next := e.Next() // Delete e will clean its pointers. Save it first.
		key, v := e.Value.key, e.Value.v
		if remove := f(key, v); remove {
			q.delElem(e)
			removed++
		}
		e = next
	}
	return removed
}

func (q *LRU[K, V]) Get(key K) (v V, ok bool) {
	e, ok := q.m[key]
	if !ok {
		return
	}
	return q.moveToBack(e).Value.v, true
}

func (q *LRU[K, V]) Len() int {
	return q.l.Len()
}

// moveToBack re-inserts e as the most recently used entry and returns
// the node that replaces it.
func (q *LRU[K, V]) moveToBack(e *list.Node[KV[K, V]]) *list.Node[KV[K, V]] {
	if e == q.l.Back() {
		return e
	}
	q.mustRemove(e)
	ne := q.l.AddLast(e.Value)
	q.m[e.Value.key] = ne
	return ne
}

func (q *LRU[K, V]) mustRemove(e *list.Node[KV[K, V]]) {
	if err := q.l.Remove(e); err != nil {
		panic(fmt.Sprintf("LRU: broken index: %v", err))
	}
}
