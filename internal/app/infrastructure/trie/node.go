package trie

import "phoneforward/internal/app/domain/number"

// Node is the position reached after consuming one digit of a prefix.
// The parent link is only used for upward walks and never owns its target.
type Node struct {
	digit    byte
	forward  string
	parent   *Node
	children [number.AlphabetSize]*Node
}

// Forward returns the target stored at this node.
func (n *Node) Forward() (string, bool) {
	return n.forward, n.forward != ""
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsDead reports a non-root node that holds neither a forward nor children.
func (n *Node) IsDead() bool {
	return !n.IsRoot() && n.forward == "" && n.firstChild(0) == nil
}

// Prefix rebuilds the digit path from the root to n.
func (n *Node) Prefix() string {
	depth := 0
	for cur := n; !cur.IsRoot(); cur = cur.parent {
		depth++
	}

	buf := make([]byte, depth)
	for cur := n; !cur.IsRoot(); cur = cur.parent {
		depth--
		buf[depth] = cur.digit
	}
	return string(buf)
}

// firstChild returns the first existing child with digit id >= from.
func (n *Node) firstChild(from int) *Node {
	for id := from; id < number.AlphabetSize; id++ {
		if n.children[id] != nil {
			return n.children[id]
		}
	}
	return nil
}

func (n *Node) detach() {
	if n.parent != nil {
		id := number.ID(n.digit)
		if n.parent.children[id] == n {
			n.parent.children[id] = nil
		}
	}
}
