package tree

import (
	"github.com/pbanos/cedar/dataset"
)

/*
Node is a node of a classification tree. It is either a *Leaf or an
*Internal node, no other implementations exist; code traversing a tree
switches on these two types.

Nodes are never modified once the tree they belong to has been built, so a
tree can be read from several goroutines at a time.
*/
type Node interface {
	// Incoming returns the value on the parent's split feature that leads to
	// this node, or nil for the root of a tree.
	Incoming() dataset.Value
	isNode()
}

/*
Leaf is a terminal node. It holds the distribution of the labels of the
training rows that reached it.
*/
type Leaf struct {
	Distribution  *Distribution
	IncomingValue dataset.Value
}

/*
Internal is a node that splits the rows reaching it by the value they take
for a feature. It has a branch for every value of the feature observed among
its training rows, in the order in which those values first occurred, and the
incoming values of its branches are pairwise distinct.
*/
type Internal struct {
	FeatureIndex  int
	Branches      []Node
	IncomingValue dataset.Value
}

// NewLeaf returns a leaf for the given labels reached through the incoming value.
func NewLeaf(labels []string, incoming dataset.Value) *Leaf {
	return &Leaf{NewDistribution(labels), incoming}
}

// Incoming returns the value that leads to the leaf from its parent.
func (l *Leaf) Incoming() dataset.Value {
	return l.IncomingValue
}

// Incoming returns the value that leads to the node from its parent.
func (in *Internal) Incoming() dataset.Value {
	return in.IncomingValue
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

/*
Branch returns the branch of the node whose incoming value equals the given
value, or nil if no branch was grown for it.
*/
func (in *Internal) Branch(v dataset.Value) Node {
	for _, b := range in.Branches {
		if b.Incoming() == v {
			return b
		}
	}
	return nil
}
