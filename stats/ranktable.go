// Package stats provides the self-organizing frequency statistics used by the
// context-adaptive codecs.
package stats

import "iter"

// node is a single counted symbol. Nodes live in an arena owned by the table
// and are addressed by integer handle, so the hash index and the rank order
// never alias each other's memory.
type node[T comparable] struct {
	val   T
	count int
	rank  int
}

// RankTable counts symbol occurrences and maintains a total order of symbols
// by descending count.
//
// The table supports O(1) lookup in both directions: Rank maps a symbol to
// its 0-based position in the descending-count order, Position maps a
// position back to its symbol. Each Insert increments one count and restores
// the order with at most a single swap, which is amortized cheap for the
// skewed distributions the conditional codec feeds it.
//
// A symbol's stored rank always equals its index in the rank order, and the
// counts read in rank order are non-increasing. Ties keep the relative order
// they already occupy; no secondary sort key is imposed.
type RankTable[T comparable] struct {
	index  map[T]int // symbol -> arena handle
	sorted []int     // rank -> arena handle
	arena  []node[T]
}

// New creates an empty RankTable.
func New[T comparable]() *RankTable[T] {
	return &RankTable[T]{
		index: make(map[T]int),
	}
}

// NewCapacity creates an empty RankTable sized for the expected number of
// distinct symbols.
func NewCapacity[T comparable](capacity int) *RankTable[T] {
	return &RankTable[T]{
		index:  make(map[T]int, capacity),
		sorted: make([]int, 0, capacity),
		arena:  make([]node[T], 0, capacity),
	}
}

// Insert records one occurrence of val, creating an entry with count 1 if the
// symbol is new, and returns the symbol's rank after the update.
func (t *RankTable[T]) Insert(val T) int {
	h, ok := t.index[val]
	if ok {
		t.arena[h].count++
		return t.promote(t.arena[h].rank)
	}

	rank := len(t.sorted)
	t.arena = append(t.arena, node[T]{val: val, count: 1, rank: rank})
	h = len(t.arena) - 1
	t.index[val] = h
	t.sorted = append(t.sorted, h)

	return t.promote(rank)
}

// Feed inserts every value of vals in order.
func (t *RankTable[T]) Feed(vals []T) {
	for _, v := range vals {
		t.Insert(v)
	}
}

// Rank returns the 0-based position of val in the descending-count order.
func (t *RankTable[T]) Rank(val T) (int, bool) {
	h, ok := t.index[val]
	if !ok {
		return 0, false
	}

	return t.arena[h].rank, true
}

// Position returns the symbol stored at the given rank.
func (t *RankTable[T]) Position(rank int) (T, bool) {
	if rank < 0 || rank >= len(t.sorted) {
		var zero T
		return zero, false
	}

	return t.arena[t.sorted[rank]].val, true
}

// Count returns the number of recorded occurrences of val.
func (t *RankTable[T]) Count(val T) (int, bool) {
	h, ok := t.index[val]
	if !ok {
		return 0, false
	}

	return t.arena[h].count, true
}

// Members returns the number of distinct symbols in the table.
func (t *RankTable[T]) Members() int {
	return len(t.sorted)
}

// All iterates over the symbols in descending-count order.
func (t *RankTable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, h := range t.sorted {
			if !yield(t.arena[h].val) {
				return
			}
		}
	}
}

// promote restores the descending-count order after the count at rank ix was
// incremented. It scans from rank 0 toward ix for the first entry whose count
// is now strictly lower and swaps the updated entry into that position.
// Returns the entry's new rank.
func (t *RankTable[T]) promote(ix int) int {
	r := ix
	refCount := t.arena[t.sorted[ix]].count
	for i := 0; i <= ix; i++ {
		if t.arena[t.sorted[i]].count < refCount {
			r = i
			break
		}
	}
	t.swap(r, ix)

	return r
}

// swap exchanges the entries at ranks a and b, keeping stored ranks in sync
// with their positions.
func (t *RankTable[T]) swap(a, b int) {
	t.arena[t.sorted[a]].rank = b
	t.arena[t.sorted[b]].rank = a
	t.sorted[a], t.sorted[b] = t.sorted[b], t.sorted[a]
}

// coherent reports whether the rank order and the stored ranks agree: every
// entry's rank equals its index and counts are non-increasing in rank order.
func (t *RankTable[T]) coherent() bool {
	for i, h := range t.sorted {
		if t.arena[h].rank != i {
			return false
		}
		if i > 0 && t.arena[t.sorted[i-1]].count < t.arena[h].count {
			return false
		}
	}

	return true
}
