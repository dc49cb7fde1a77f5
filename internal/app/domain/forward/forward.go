package forward

import (
	"errors"
	"fmt"
	"iter"
	"phoneforward/internal/app/domain/number"
	"phoneforward/internal/app/infrastructure/trie"
	"strings"
)

var (
	ErrInvalidNumber = number.ErrInvalidNumber
	ErrSelfForward   = errors.New("number forwarded to itself")
	ErrNoSpace       = errors.New("no space left for forwards")
)

// Engine stores prefix forwards: a number starting with a stored source
// prefix is rewritten by swapping that prefix for the target. Forwards are
// not transitive.
//
// Engine is not safe for concurrent use. Callers serialize mutations and
// queries against each other.
type Engine struct {
	trie *trie.Trie
}

type Option func(*Engine)

// WithNodeLimit caps the trie size. Add fails with ErrNoSpace once the
// limit would be exceeded.
func WithNodeLimit(limit int) Option {
	return func(e *Engine) {
		e.trie.SetLimit(limit)
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{trie: trie.New(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add forwards every number starting with source to the same number with
// source replaced by target. An existing forward for source is replaced.
func (e *Engine) Add(source, target string) error {
	if !number.Valid(source) || !number.Valid(target) {
		return ErrInvalidNumber
	}
	if source == target {
		return ErrSelfForward
	}

	n, err := e.trie.Insert(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSpace, err)
	}
	e.trie.SetForward(n, strings.Clone(target))
	return nil
}

// Remove drops every forward whose source starts with prefix. It reports
// whether anything was removed.
func (e *Engine) Remove(prefix string) bool {
	if !number.Valid(prefix) {
		return false
	}
	return e.trie.Remove(prefix)
}

// Get returns the forward of num: the longest matching source prefix is
// replaced by its target, or num itself when nothing matches. The result is
// empty only for an invalid num.
func (e *Engine) Get(num string) *number.Numbers {
	if !number.Valid(num) {
		return number.New(0)
	}

	res := number.New(1)
	length, target, ok := e.trie.LongestForwarded(num)
	if !ok {
		res.Add(strings.Clone(num))
		return res
	}
	res.Add(target + num[length:])
	return res
}

// Reverse lists num and every number some stored forward rewrites into num
// textually, sorted and without duplicates. The longest-match rule is not
// applied, so the result may contain numbers whose forward differs; see
// GetReverse for the exact preimage.
func (e *Engine) Reverse(num string) *number.Numbers {
	if !number.Valid(num) {
		return number.New(0)
	}

	res := number.New(1)
	res.Add(strings.Clone(num))
	for n := range e.trie.All() {
		target, ok := n.Forward()
		if !ok || !strings.HasPrefix(num, target) {
			continue
		}
		res.Add(n.Prefix() + num[len(target):])
	}

	res.SortUnique()
	return res
}

// GetReverse returns the sorted set of numbers x with Get(x) == num.
func (e *Engine) GetReverse(num string) *number.Numbers {
	candidates := e.Reverse(num)
	defer candidates.Release()

	res := number.New(candidates.Len())
	for _, x := range candidates.All() {
		got := e.Get(x)
		if s, ok := got.Get(0); ok && s == num {
			res.Add(x)
		}
		got.Release()
	}
	return res
}

// Rules yields every stored forward as (source, target) in alphabet order
// of the source.
func (e *Engine) Rules() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for n := range e.trie.All() {
			target, ok := n.Forward()
			if !ok {
				continue
			}
			if !yield(n.Prefix(), target) {
				return
			}
		}
	}
}

// Len returns the number of stored forwards.
func (e *Engine) Len() int { return e.trie.Forwards() }

// Nodes returns the number of trie nodes in use.
func (e *Engine) Nodes() int { return e.trie.Len() }

// NodeLimit returns the node cap, 0 when unlimited.
func (e *Engine) NodeLimit() int { return e.trie.Limit() }

// SetNodeLimit changes the cap for later insertions. Nodes already stored
// are kept even when they exceed it.
func (e *Engine) SetNodeLimit(limit int) { e.trie.SetLimit(limit) }

// Clear removes all forwards.
func (e *Engine) Clear() { e.trie.Clear() }
