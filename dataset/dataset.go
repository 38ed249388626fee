/*
Package dataset provides the in-memory table of discrete feature rows and
aligned class labels from which trees are grown, and the operations that
split it by the values of a feature.
*/
package dataset

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
)

/*
Value is the value of a sample for a feature. Values are expected to be
discrete: small integers produced by binning or categorical tokens. They
are compared with == so they must be of a comparable type.
*/
type Value = interface{}

/*
Dataset represents an ordered collection of rows of feature values with a
label for each of them. All rows have the same width and the i-th label
belongs to the i-th row.

A Dataset is never modified after creation: subsets share the underlying
rows with the dataset they were obtained from.
*/
type Dataset struct {
	rows   [][]Value
	labels []string
	width  int
}

/*
New takes a slice of rows and a slice of labels and returns a Dataset with
them or an error if they do not satisfy the structural constraints of a
dataset: as many labels as rows, every row as wide as the first one and every
value non-nil, comparable and equal to itself (no NaN).
*/
func New(rows [][]Value, labels []string) (*Dataset, error) {
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("dataset has %d rows but %d labels", len(rows), len(labels))
	}
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), width)
		}
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("row %d has no value for feature %d", i, j)
			}
			if !reflect.TypeOf(v).Comparable() {
				return nil, fmt.Errorf("row %d has value of non-comparable type %T for feature %d", i, v, j)
			}
			if isNaN(v) {
				return nil, fmt.Errorf("row %d has NaN value for feature %d", i, j)
			}
		}
	}
	return &Dataset{rows, labels, width}, nil
}

/*
MustNew is like New but panics if the rows and labels do not satisfy the
constraints of a dataset.
*/
func MustNew(rows [][]Value, labels []string) *Dataset {
	d, err := New(rows, labels)
	if err != nil {
		panic(fmt.Sprintf("dataset: %v", err))
	}
	return d
}

// Count returns the number of rows in the dataset.
func (d *Dataset) Count() int {
	return len(d.rows)
}

// Width returns the number of features of every row in the dataset.
func (d *Dataset) Width() int {
	return d.width
}

// Row returns the i-th row of the dataset.
func (d *Dataset) Row(i int) []Value {
	return d.rows[i]
}

// Label returns the label for the i-th row of the dataset.
func (d *Dataset) Label(i int) string {
	return d.labels[i]
}

/*
Labels returns the labels of the dataset in row order. The returned slice
must not be modified.
*/
func (d *Dataset) Labels() []string {
	return d.labels
}

func (d *Dataset) String() string {
	return fmt.Sprintf("{Dataset %d rows x %d features}", len(d.rows), d.width)
}

func (d *Dataset) checkFeature(featureIndex int) {
	if featureIndex < 0 || featureIndex >= d.width {
		panic(fmt.Sprintf("dataset: feature index %d out of range [0, %d)", featureIndex, d.width))
	}
}

// isNaN reports whether v is a floating point or complex NaN, which is never
// equal to itself and so cannot be matched to a branch.
func isNaN(v Value) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsNaN(rv.Complex())
	}
	return false
}
