// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cache provides a typed LRU cache with hit and miss accounting.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// LRU a LRU cache extends golang-lru.
type LRU[K comparable, V any] struct {
	cache *lru.Cache
	group singleflight.Group
	stats Stats
}

// NewLRU create a LRU cache instance.
// maxSize should be > 0, or an error returned.
func NewLRU[K comparable, V any](maxSize int) (*LRU[K, V], error) {
	cache, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{cache: cache}, nil
}

// Get looks up key, recording a hit or a miss.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	if v, ok := l.cache.Get(key); ok {
		l.stats.Hit()
		return v.(V), true
	}
	l.stats.Miss()
	var zero V
	return zero, false
}

// Add adds a value to the cache.
func (l *LRU[K, V]) Add(key K, value V) {
	l.cache.Add(key, value)
}

// Len returns the number of cached entries.
func (l *LRU[K, V]) Len() int {
	return l.cache.Len()
}

// Loader defines loader to load value.
type Loader[K comparable, V any] func(key K) (V, error)

// Source tells where GetOrLoad took a value from.
type Source int

const (
	FromCache Source = iota // already cached
	Loaded                  // loaded by this call
	Shared                  // loaded by a concurrent call for the same key
)

func (s Source) String() string {
	switch s {
	case FromCache:
		return "cache"
	case Loaded:
		return "loaded"
	case Shared:
		return "shared"
	default:
		return "unknown"
	}
}

// GetOrLoad first try to get from cache, do load if missed.
// Concurrent loads of the same key share one call to loader.
func (l *LRU[K, V]) GetOrLoad(key K, loader Loader[K, V]) (V, Source, error) {
	var zero V
	if v, ok := l.Get(key); ok {
		return v, FromCache, nil
	}
	loaded := false
	v, err, _ := l.group.Do(fmt.Sprint(key), func() (any, error) {
		loaded = true
		v, err := loader(key)
		if err != nil {
			return nil, err
		}
		l.cache.Add(key, v)
		return v, nil
	})
	source := Shared
	if loaded {
		source = Loaded
	}
	if err != nil {
		return zero, source, err
	}
	return v.(V), source, nil
}

// Stats returns the hit and miss counters of the cache.
func (l *LRU[K, V]) Stats() *Stats {
	return &l.stats
}
