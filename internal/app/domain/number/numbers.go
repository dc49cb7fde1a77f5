package number

import (
	"iter"
	"slices"
)

// Numbers is an owned sequence of numbers returned by queries. It keeps no
// reference to the structure it was computed from.
type Numbers struct {
	items []string
}

func New(capacity int) *Numbers {
	return &Numbers{items: make([]string, 0, capacity)}
}

func (n *Numbers) Add(s string) {
	n.items = append(n.items, s)
}

func (n *Numbers) Get(idx int) (string, bool) {
	if n == nil || idx < 0 || idx >= len(n.items) {
		return "", false
	}
	return n.items[idx], true
}

func (n *Numbers) Len() int {
	if n == nil {
		return 0
	}
	return len(n.items)
}

func (n *Numbers) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if n == nil {
			return
		}
		for i, s := range n.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Slice returns a copy of the stored numbers.
func (n *Numbers) Slice() []string {
	if n == nil {
		return []string{}
	}
	return append(make([]string, 0, len(n.items)), n.items...)
}

// Release drops the stored numbers. Further Get calls report absent.
func (n *Numbers) Release() {
	if n == nil {
		return
	}
	clear(n.items)
	n.items = nil
}

// SortUnique sorts the sequence in alphabet order and drops duplicates.
func (n *Numbers) SortUnique() {
	slices.SortFunc(n.items, Compare)
	n.items = slices.Compact(n.items)
}
