package tree

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrNoMatch is the error for samples the tree has no prediction for: at
some node the sample takes a value for the split feature that no training
row reaching that node took. It is a regular outcome of classification,
not a failure of the tree.
*/
const ErrNoMatch = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Distribution holds how many times each label occurs in a set of labels.
Labels are kept in the order in which they were first seen, which is the
order used to break ties when picking the majority label.
*/
type Distribution struct {
	counts *linkedhashmap.Map
	total  int
}

/*
NewDistribution takes a slice of labels and returns their distribution.
*/
func NewDistribution(labels []string) *Distribution {
	counts := linkedhashmap.New()
	for _, l := range labels {
		c, _ := counts.Get(l)
		n, _ := c.(int)
		counts.Put(l, n+1)
	}
	return &Distribution{counts, len(labels)}
}

// Total returns the number of labels in the distribution.
func (d *Distribution) Total() int {
	return d.total
}

// Count returns the number of occurrences of the given label.
func (d *Distribution) Count(label string) int {
	c, _ := d.counts.Get(label)
	n, _ := c.(int)
	return n
}

// Labels returns the distinct labels in the order they were first seen.
func (d *Distribution) Labels() []string {
	keys := d.counts.Keys()
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k.(string))
	}
	return result
}

/*
Majority returns the most frequent label and true, or an empty string and
false if the distribution is empty. Among equally frequent labels the one
seen first wins.
*/
func (d *Distribution) Majority() (label string, ok bool) {
	best := 0
	it := d.counts.Iterator()
	for it.Next() {
		if n := it.Value().(int); n > best {
			best = n
			label = it.Key().(string)
			ok = true
		}
	}
	return
}

func (d *Distribution) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	it := d.counts.Iterator()
	for i := 0; it.Next(); i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %d", it.Key(), it.Value())
	}
	buf.WriteString("}")
	return buf.String()
}
