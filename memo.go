package aoc

import "tailscale.com/util/deephash"

// Counter counts the leaves of a recursive expansion. expand must depend
// only on its argument; the cache is keyed by key(item) and the number of
// rounds left, so anything else expand looks at would make cached counts
// wrong.
//
// A Counter's cache lives as long as the Counter. It is not safe for
// concurrent use.
type Counter[K comparable, T any] struct {
	expand func(T) []T
	key    func(T) K
	cache  map[countKey[K]]int
}

type countKey[K comparable] struct {
	item   K
	rounds int
}

// NewCounter returns a Counter keyed by the items themselves.
func NewCounter[T comparable](expand func(T) []T) *Counter[T, T] {
	return NewCounterFunc(expand, func(v T) T { return v })
}

// NewHashedCounter returns a Counter for items that are not comparable,
// such as slices. Items are keyed by their deephash.
func NewHashedCounter[T any](expand func(T) []T) *Counter[deephash.Sum, T] {
	return NewCounterFunc(expand, func(v T) deephash.Sum {
		return deephash.Hash(&v)
	})
}

// NewCounterFunc returns a Counter that caches by key(item).
func NewCounterFunc[K comparable, T any](expand func(T) []T, key func(T) K) *Counter[K, T] {
	return &Counter[K, T]{
		expand: expand,
		key:    key,
		cache:  make(map[countKey[K]]int),
	}
}

// CountAfter returns the number of items item turns into after rounds
// expansions. Zero rounds leave the item as is, so the count is 1; negative
// rounds are treated the same way.
func (c *Counter[K, T]) CountAfter(item T, rounds int) int {
	if rounds <= 0 {
		return 1
	}
	k := countKey[K]{c.key(item), rounds}
	if v, ok := c.cache[k]; ok {
		return v
	}
	n := 0
	for _, child := range c.expand(item) {
		n += c.CountAfter(child, rounds-1)
	}
	c.cache[k] = n
	return n
}

// CountAll sums CountAfter over items.
func (c *Counter[K, T]) CountAll(items []T, rounds int) int {
	n := 0
	for _, it := range items {
		n += c.CountAfter(it, rounds)
	}
	return n
}

// Len returns the number of cached counts.
func (c *Counter[K, T]) Len() int {
	return len(c.cache)
}

// Reset drops the cache.
func (c *Counter[K, T]) Reset() {
	clear(c.cache)
}
