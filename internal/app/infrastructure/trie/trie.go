package trie

import (
	"errors"
	"iter"
	"phoneforward/internal/app/domain/number"
)

var ErrNodeLimit = errors.New("trie node limit reached")

// Trie stores forwards keyed by number prefix. Paths handed to it must
// already be valid numbers. It is not safe for concurrent use.
type Trie struct {
	root     *Node
	nodes    int
	forwards int
	limit    int
}

// New creates an empty trie. A positive limit caps the number of non-root
// nodes; Insert fails with ErrNodeLimit instead of growing past it.
func New(limit int) *Trie {
	return &Trie{root: &Node{}, limit: max(limit, 0)}
}

// Len returns the number of non-root nodes.
func (t *Trie) Len() int { return t.nodes }

// Forwards returns the number of nodes carrying a forward.
func (t *Trie) Forwards() int { return t.forwards }

func (t *Trie) Limit() int { return t.limit }

func (t *Trie) SetLimit(limit int) { t.limit = max(limit, 0) }

// Insert returns the node at the end of path, creating missing nodes on the
// way. If the node limit is reached, every node created by this call is
// released again and the trie is left as it was.
func (t *Trie) Insert(path string) (*Node, error) {
	var created []*Node

	cur := t.root
	for i := 0; i < len(path); i++ {
		id := number.ID(path[i])
		next := cur.children[id]
		if next == nil {
			if t.limit > 0 && t.nodes >= t.limit {
				t.rollback(created)
				return nil, ErrNodeLimit
			}
			next = &Node{digit: path[i], parent: cur}
			cur.children[id] = next
			t.nodes++
			created = append(created, next)
		}
		cur = next
	}
	return cur, nil
}

func (t *Trie) rollback(created []*Node) {
	for i := len(created) - 1; i >= 0; i-- {
		n := created[i]
		n.detach()
		n.parent = nil
		t.nodes--
	}
}

// SetForward stores target at n, replacing any previous value. An empty
// target clears the forward.
func (t *Trie) SetForward(n *Node, target string) {
	switch {
	case n.forward == "" && target != "":
		t.forwards++
	case n.forward != "" && target == "":
		t.forwards--
	}
	n.forward = target
}

// Find returns the node at the end of path or nil.
func (t *Trie) Find(path string) *Node {
	cur := t.root
	for i := 0; i < len(path) && cur != nil; i++ {
		cur = cur.children[number.ID(path[i])]
	}
	return cur
}

// LongestForwarded walks num from the root and returns the deepest forward
// seen on the way together with the number of digits it covers.
func (t *Trie) LongestForwarded(num string) (length int, target string, ok bool) {
	cur := t.root
	for i := 0; i < len(num); i++ {
		cur = cur.children[number.ID(num[i])]
		if cur == nil {
			break
		}
		if cur.forward != "" {
			length, target, ok = i+1, cur.forward, true
		}
	}
	return length, target, ok
}

// Remove deletes the node at path together with its subtree and prunes the
// ancestors left without content. It reports whether the path existed.
func (t *Trie) Remove(path string) bool {
	n := t.Find(path)
	if n == nil || n.IsRoot() {
		return false
	}

	parent := n.parent
	n.detach()
	t.release(n)
	t.prune(parent)
	return true
}

// Clear drops every node below the root.
func (t *Trie) Clear() {
	for _, child := range t.root.children {
		if child != nil {
			child.detach()
			t.release(child)
		}
	}
}

// release frees n and all of its descendants in post-order. The cursor
// climbs back through parent links and resumes at the next sibling, so no
// stack proportional to the depth is needed.
func (t *Trie) release(n *Node) {
	stop := n.parent
	cur, from := n, 0

	for cur != stop {
		if next := cur.firstChild(from); next != nil {
			cur, from = next, 0
			continue
		}

		parent := cur.parent
		from = number.ID(cur.digit) + 1
		cur.detach()
		if cur.forward != "" {
			t.forwards--
			cur.forward = ""
		}
		cur.parent = nil
		t.nodes--
		cur = parent
	}
}

// prune removes n and its ancestors while they are dead branches.
func (t *Trie) prune(n *Node) {
	for n != nil && n.IsDead() {
		parent := n.parent
		n.detach()
		n.parent = nil
		t.nodes--
		n = parent
	}
}

// All walks every node, the root included, in depth-first order with
// siblings visited by increasing digit id. Each node is yielded once with
// its depth. The trie must not be modified during the walk.
func (t *Trie) All() iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		cur, depth, from := t.root, 0, 0
		if !yield(cur, depth) {
			return
		}

		for {
			if next := cur.firstChild(from); next != nil {
				cur, from = next, 0
				depth++
				if !yield(cur, depth) {
					return
				}
				continue
			}

			if cur == t.root {
				return
			}
			from = number.ID(cur.digit) + 1
			cur = cur.parent
			depth--
		}
	}
}
