// =============================================================================
// internal/suffix/tree.go - Public-suffix label tree and domain matcher
// =============================================================================
package suffix

import "strings"

// Wildcard is the label matching any otherwise-unmatched label.
const Wildcard = "*"

// Node is one level of the public-suffix label tree. A label maps
// either to a child Node (the suffix continues below) or to a leaf
// marker (the suffix ends here; a true marker is an exception rule).
// A label may carry both when it is itself a rule and has longer rules
// beneath it. The tree is read-only after loading.
type Node struct {
	children map[string]*Node
	leaves   map[string]bool
}

// NewNode returns an empty tree node.
func NewNode() *Node {
	return &Node{
		children: make(map[string]*Node),
		leaves:   make(map[string]bool),
	}
}

// AddRule inserts one suffix rule with its labels given
// outermost-first ("co.uk" as ["uk", "co"]). The exception flag marks
// "!" rules.
func (n *Node) AddRule(labels []string, exception bool) {
	node := n
	for i, label := range labels {
		if i == len(labels)-1 {
			node.leaves[label] = exception
			return
		}
		child, ok := node.children[label]
		if !ok {
			child = NewNode()
			node.children[label] = child
		}
		node = child
	}
}

// RegistrableDomain splits a lowercased host name against the tree and
// returns its registrable domain: the longest matching public suffix
// plus one label. Exception rules shorten the suffix by one level.
// When no rule matches beyond the first label, the result degrades to
// the outermost label alone.
func (n *Node) RegistrableDomain(host string) string {
	labels := strings.Split(host, ".")

	var accumulated []string // collected innermost-last
	inSuffix := true
	node := n

	for i := len(labels) - 1; i >= 0; i-- {
		label := labels[i]
		if inSuffix {
			accumulated = append([]string{label}, accumulated...)
		}

		if node == nil {
			break
		}
		if child, ok := node.children[label]; ok {
			node = child
			continue
		}
		if marker, ok := node.leaves[label]; ok {
			inSuffix = !marker
			node = nil
			continue
		}
		if marker, ok := node.leaves[Wildcard]; ok {
			// The wildcard entry's own marker is authoritative here,
			// matching standard public-suffix semantics.
			inSuffix = !marker
			node = nil
			continue
		}
		if child, ok := node.children[Wildcard]; ok {
			node = child
			continue
		}
		break
	}

	return strings.Join(accumulated, ".")
}
