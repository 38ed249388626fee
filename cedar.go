/*
Package cedar grows multiway classification trees from datasets of discrete
feature values and their labels.

At every node the feature whose partition of the node's rows yields the
highest Gini information gain is chosen, and a branch is grown for each of
its values. Nodes for which no feature yields a positive gain become leaves.
*/
package cedar

import (
	"github.com/pbanos/cedar/dataset"
	"github.com/pbanos/cedar/impurity"
	"github.com/pbanos/cedar/queue"
	"github.com/pbanos/cedar/tree"
)

/*
Logger is an interface wrapping the Logf method, used by a Builder to
report the nodes it grows.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Builder grows trees. The zero value is ready to use. If Logger is set,
every node grown is reported to it.
*/
type Builder struct {
	Logger Logger
}

/*
Build takes a dataset and returns the root of a tree grown from it.
*/
func Build(d *dataset.Dataset) tree.Node {
	return (&Builder{}).Build(d)
}

/*
BestSplit takes a dataset and returns the index of the feature whose
partition of the dataset yields the highest information gain, along with
that gain.

Features are evaluated in index order and a feature only replaces the best
one so far if its gain is strictly greater, so ties are won by the lowest
index. If no feature yields a positive gain, the result is 0, 0.0: the
dataset should not be split.
*/
func BestSplit(d *dataset.Dataset) (featureIndex int, gain float64) {
	labels := d.Labels()
	for f := 0; f < d.Width(); f++ {
		subsets := d.Partition(f)
		if len(subsets) < 2 {
			continue
		}
		splits := make([][]string, 0, len(subsets))
		for _, s := range subsets {
			splits = append(splits, s.Dataset.Labels())
		}
		g := impurity.InfoGain(labels, splits)
		if g > gain {
			featureIndex, gain = f, g
		}
	}
	return
}

/*
Build takes a dataset and returns the root of a tree grown from it.
*/
func (b *Builder) Build(d *dataset.Dataset) tree.Node {
	return b.BuildFrom(d, nil)
}

/*
BuildFrom takes a dataset and an incoming value and returns a tree grown
from the dataset whose root is reached through the incoming value.

Nodes are grown from a stack of pending tasks rather than recursively, but
the result is the same: a leaf with the distribution of the labels if
BestSplit yields no gain, otherwise an internal node on the best feature
with a subtree for each subset of the feature's partition, in partition
order, reached through the subset's value.

An empty dataset results in a leaf with an empty distribution.
*/
func (b *Builder) BuildFrom(d *dataset.Dataset, incoming dataset.Value) tree.Node {
	var root tree.Node
	stack := queue.New()
	stack.Push(&queue.Task{
		Dataset:       d,
		IncomingValue: incoming,
		Attach:        func(n tree.Node) { root = n },
	})
	for task := stack.Pull(); task != nil; task = stack.Pull() {
		stack.PushAll(b.branchOut(task))
	}
	return root
}

// branchOut grows the node for the task and returns the tasks for its branches.
func (b *Builder) branchOut(task *queue.Task) []*queue.Task {
	featureIndex, gain := BestSplit(task.Dataset)
	if gain <= 0 {
		leaf := tree.NewLeaf(task.Dataset.Labels(), task.IncomingValue)
		b.logf("%*sleaf %v: %v", 2*task.Depth, "", task.IncomingValue, leaf.Distribution)
		task.Complete(leaf)
		return nil
	}
	subsets := task.Dataset.Partition(featureIndex)
	node := &tree.Internal{
		FeatureIndex:  featureIndex,
		Branches:      make([]tree.Node, len(subsets)),
		IncomingValue: task.IncomingValue,
	}
	b.logf("%*ssplit %v on feature %d (%d rows, gain %f, %d branches)", 2*task.Depth, "", task.IncomingValue, featureIndex, task.Dataset.Count(), gain, len(subsets))
	tasks := make([]*queue.Task, 0, len(subsets))
	for i, s := range subsets {
		i := i
		tasks = append(tasks, &queue.Task{
			Dataset:       s.Dataset,
			IncomingValue: s.Value,
			Depth:         task.Depth + 1,
			Attach:        func(n tree.Node) { node.Branches[i] = n },
		})
	}
	task.Complete(node)
	return tasks
}

func (b *Builder) logf(format string, a ...interface{}) {
	if b.Logger != nil {
		b.Logger.Logf(format, a...)
	}
}
