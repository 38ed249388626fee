package queue

import (
	"fmt"

	"github.com/pbanos/cedar/dataset"
	"github.com/pbanos/cedar/tree"
)

// Task represents a tree.Node to be grown.
type Task struct {
	// The training rows reaching the node
	// and their labels.
	Dataset *dataset.Dataset
	// The value on the parent's split feature
	// that leads to the node, nil for the root.
	IncomingValue dataset.Value
	// The depth of the node in the tree.
	Depth int
	// Attach receives the grown node and links it
	// to its parent. It may be nil for the root.
	Attach func(tree.Node)
}

// Complete takes the node grown for the task and
// hands it to the task's Attach function if any.
func (t *Task) Complete(n tree.Node) {
	if t.Attach != nil {
		t.Attach(n)
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %v depth %d %v}", t.IncomingValue, t.Depth, t.Dataset)
}
