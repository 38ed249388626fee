package dataset

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

/*
Subset is one of the parts of a partition of a dataset: the rows of the
dataset whose value for the partitioning feature is Value, along their
labels.
*/
type Subset struct {
	Value   Value
	Dataset *Dataset
}

/*
UniqueValues takes the index of a feature and returns the distinct values
the rows of the dataset take for it, each once, in the order in which they
first occur.

It panics if the index is not a valid feature index for the dataset.
*/
func (d *Dataset) UniqueValues(featureIndex int) []Value {
	d.checkFeature(featureIndex)
	seen := linkedhashset.New()
	for _, row := range d.rows {
		seen.Add(row[featureIndex])
	}
	return seen.Values()
}

/*
Partition takes the index of a feature and splits the dataset into one subset
per distinct value of the feature, in the order returned by UniqueValues.
Each subset holds every row with that value and its label, in their original
order, so the subsets are disjoint and together contain every row of the
dataset exactly once.

It panics if the index is not a valid feature index for the dataset.
*/
func (d *Dataset) Partition(featureIndex int) []Subset {
	values := d.UniqueValues(featureIndex)
	positions := make(map[Value]int, len(values))
	rows := make([][][]Value, len(values))
	labels := make([][]string, len(values))
	for i, v := range values {
		positions[v] = i
	}
	for i, row := range d.rows {
		p := positions[row[featureIndex]]
		rows[p] = append(rows[p], row)
		labels[p] = append(labels[p], d.labels[i])
	}
	result := make([]Subset, 0, len(values))
	for i, v := range values {
		result = append(result, Subset{
			Value:   v,
			Dataset: &Dataset{rows[i], labels[i], d.width},
		})
	}
	return result
}
