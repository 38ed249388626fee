/*
Package impurity provides the measures used to score how mixed a set of
labels is and how much a partition of it reduces that mix.
*/
package impurity

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
Gini takes a slice of labels and returns its Gini impurity: the probability
that two labels drawn at random from it differ, computed as
1 - sum(p_c^2) over every distinct label c with frequency p_c. The terms are
subtracted in the order labels are first seen, so equal slices always yield
the same bits.

An empty slice has an impurity of 0, there is no information to lose.
*/
func Gini(labels []string) float64 {
	if len(labels) == 0 {
		return 0.0
	}
	counts := linkedhashmap.New()
	for _, l := range labels {
		c, _ := counts.Get(l)
		n, _ := c.(int)
		counts.Put(l, n+1)
	}
	total := float64(len(labels))
	result := 1.0
	it := counts.Iterator()
	for it.Next() {
		p := float64(it.Value().(int)) / total
		result -= p * p
	}
	return result
}

/*
InfoGain takes the labels of a set and the labels of each of the subsets
of a partition of that set and returns the weighted information gain of the
partition: the Gini impurity of the parent minus the impurity of every subset
weighted by its share of the parent.

The subsets are expected to partition the parent exactly (same multiset of
labels, no overlap), otherwise the result has no meaning. For a true partition
the result is never negative.
*/
func InfoGain(parent []string, subsets [][]string) float64 {
	if len(parent) == 0 {
		return 0.0
	}
	total := float64(len(parent))
	gain := Gini(parent)
	for _, s := range subsets {
		gain -= Gini(s) * float64(len(s)) / total
	}
	return gain
}
