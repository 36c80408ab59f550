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

package concurrent_lru

import (
	"hash/maphash"
	"sync"

	"github.com/IrineSistiana/linkedlist/pkg/lru"
	"github.com/IrineSistiana/linkedlist/pkg/utils"
)

const (
	defaultShardNum        = 64
	defaultMaxSizePerShard = 1024
)

// ShardedLRU spreads string keys over several LRUs. Every shard owns
// one list and guards it with its own lock.
type ShardedLRU[V any] struct {
	seed maphash.Seed
	l    []*shardedLRU[V]
}

// NewShardedLRU creates a ShardedLRU. A zero shardNum or maxSizePerShard
// is replaced by a default.
func NewShardedLRU[V any](
	shardNum, maxSizePerShard int,
	onEvict func(key string, v V),
) *ShardedLRU[V] {
	utils.SetDefaultNum(&shardNum, defaultShardNum)
	utils.SetDefaultNum(&maxSizePerShard, defaultMaxSizePerShard)

	cl := &ShardedLRU[V]{
		seed: maphash.MakeSeed(),
		l:    make([]*shardedLRU[V], shardNum),
	}

	for i := range cl.l {
		cl.l[i] = &shardedLRU[V]{
			lru: lru.NewLRU[string, V](maxSizePerShard, onEvict),
		}
	}

	return cl
}

func (c *ShardedLRU[V]) Add(key string, v V) {
	sl := c.getShard(key)
	sl.Add(key, v)
}

func (c *ShardedLRU[V]) Del(key string) {
	sl := c.getShard(key)
	sl.Del(key)
}

func (c *ShardedLRU[V]) Clean(f func(key string, v V) (remove bool)) (removed int) {
	for i := range c.l {
		removed += c.l[i].Clean(f)
	}
	return removed
}

func (c *ShardedLRU[V]) Get(key string) (v V, ok bool) {
	sl := c.getShard(key)
	v, ok = sl.Get(key)
	return
}

func (c *ShardedLRU[V]) Len() int {
	sum := 0
	for _, lru := range c.l {
		sum += lru.Len()
	}
	return sum
}

func (c *ShardedLRU[V]) shardNum() int {
	return len(c.l)
}

func (c *ShardedLRU[V]) getShard(key string) *shardedLRU[V] {
	h := maphash.Hash{}
	h.SetSeed(c.seed)

	h.WriteString(key)
	n := h.Sum64() % uint64(c.shardNum())
	return c.l[n]
}

type shardedLRU[V any] struct {
	sync.Mutex
	lru *lru.LRU[string, V]
}

func (sl *shardedLRU[V]) Add(key string, v V) {
	sl.Lock()
	defer sl.Unlock()

	sl.lru.Add(key, v)
}

func (sl *shardedLRU[V]) Del(key string) {
	sl.Lock()
	defer sl.Unlock()

	sl.lru.Del(key)
}

func (sl *shardedLRU[V]) Clean(f func(key string, v V) (remove bool)) (removed int) {
	sl.Lock()
	defer sl.Unlock()

	return sl.lru.Clean(f)
}

func (sl *shardedLRU[V]) Get(key string) (v V, ok bool) {
	sl.Lock()
	defer sl.Unlock()

	return sl.lru.Get(key)
}

func (sl *shardedLRU[V]) Len() int {
	sl.Lock()
	defer sl.Unlock()

	return sl.lru.Len()
}
