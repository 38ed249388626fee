/*
Package tree provides the nodes of multiway classification trees and the
operations that read them: classifying points, testing a tree against a
labelled dataset and dumping its structure.
*/
package tree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/cedar/dataset"
)

/*
Classify takes the root of a tree and a point, a row of feature values with
the same layout as the rows the tree was grown from, and returns the label
the tree predicts for the point and true.

Starting at the root, on every internal node the point's value for the
node's feature selects the branch to follow, and the majority label of the
leaf reached is the prediction. If no branch matches the point's value, or
the leaf reached has no labels, Classify returns an empty string and false.

Classify panics if the point has no value for the feature of a node it
goes through.
*/
func Classify(n Node, point []dataset.Value) (string, bool) {
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Distribution.Majority()
		case *Internal:
			if node.FeatureIndex >= len(point) {
				panic(fmt.Sprintf("tree: point has %d values, node splits on feature %d", len(point), node.FeatureIndex))
			}
			n = node.Branch(point[node.FeatureIndex])
			if n == nil {
				return "", false
			}
		default:
			panic(fmt.Sprintf("tree: unknown node type %T", n))
		}
	}
}

/*
Predict is like Classify but returns ErrNoMatch when the tree has no
prediction for the point.
*/
func Predict(n Node, point []dataset.Value) (string, error) {
	label, ok := Classify(n, point)
	if !ok {
		return "", ErrNoMatch
	}
	return label, nil
}

/*
Test takes the root of a tree and a dataset and returns two values:
  - the prediction success rate of the tree over the rows of the dataset
  - the number of rows for which the tree made no prediction

An empty dataset yields 0.0 and 0.
*/
func Test(n Node, d *dataset.Dataset) (float64, int) {
	if d.Count() == 0 {
		return 0.0, 0
	}
	var result float64
	var noMatch int
	for i := 0; i < d.Count(); i++ {
		label, ok := Classify(n, d.Row(i))
		if !ok {
			noMatch++
			continue
		}
		if label == d.Label(i) {
			result += 1.0
		}
	}
	return result / float64(d.Count()), noMatch
}

/*
Walk takes the root of a tree and a function and calls the function with
every node of the tree and its depth, the root having depth 0. Nodes are
visited depth-first, parents before their children and branches in order.
If the function returns an error the walk is aborted and the error returned.
*/
func Walk(n Node, f func(Node, int) error) error {
	return walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int) error) error {
	err := f(n, depth)
	if err != nil {
		return err
	}
	if in, ok := n.(*Internal); ok {
		for _, b := range in.Branches {
			err = walk(b, depth+1, f)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Depth returns the number of edges on the longest path from n to a leaf.
func Depth(n Node) int {
	var result int
	Walk(n, func(_ Node, d int) error {
		if d > result {
			result = d
		}
		return nil
	})
	return result
}

// Leaves returns the number of leaves in the tree rooted at n.
func Leaves(n Node) int {
	var result int
	Walk(n, func(n Node, _ int) error {
		if _, ok := n.(*Leaf); ok {
			result++
		}
		return nil
	})
	return result
}

/*
Dump writes a line for every node of the tree rooted at n on w, visiting
them as Walk does. Internal nodes print the index of their split feature
and leaves their label distribution, both prefixed by the value they are
reached through.
*/
func Dump(w io.Writer, n Node) error {
	return Walk(n, func(n Node, depth int) error {
		var prefix string
		if depth > 0 {
			prefix = fmt.Sprintf("%s|__%v: ", strings.Repeat("   ", depth-1), n.Incoming())
		}
		var err error
		switch node := n.(type) {
		case *Leaf:
			_, err = fmt.Fprintf(w, "%s%v\n", prefix, node.Distribution)
		case *Internal:
			_, err = fmt.Fprintf(w, "%sfeature %d\n", prefix, node.FeatureIndex)
		default:
			err = fmt.Errorf("unknown node type %T", n)
		}
		return err
	})
}

// String returns the output of Dump for the tree rooted at n.
func String(n Node) string {
	var buf bytes.Buffer
	Dump(&buf, n)
	return buf.String()
}
