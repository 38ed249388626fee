/*
Package discretize turns continuous values into small ordinal ones by
splitting their range into bins of equal width.
*/
package discretize

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// rangeMargin is the share of the range the lowest edge is moved down so
// that the minimum value falls in the first bin.
var rangeMargin = decimal.New(1, -3)

/*
Bins represents the division of a range of values into intervals of equal
width, closed on the right: (e0, e1], (e1, e2], ... (en-1, en].
*/
type Bins struct {
	edges []decimal.Decimal
}

/*
Fit takes a slice of values and a number of bins and returns the Bins that
divide the range of the values into that many intervals of equal width.

The lowest edge is moved down by a thousandth of the range so the minimum
value belongs to the first bin. If all values are equal, the range is
widened by a thousandth of the value on each side (or by 0.001 if the value
is 0) before dividing it.

It returns an error if there are no values or the number of bins is lower
than 1.
*/
func Fit(values []decimal.Decimal, n int) (*Bins, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("cannot fit bins without values")
	}
	if n < 1 {
		return nil, fmt.Errorf("cannot fit %d bins", n)
	}
	min, max := decimal.Min(values[0], values[1:]...), decimal.Max(values[0], values[1:]...)
	var adjustment decimal.Decimal
	if min.Equal(max) {
		min = min.Sub(widening(min))
		max = max.Add(widening(max))
	} else {
		adjustment = max.Sub(min).Mul(rangeMargin)
	}
	width := max.Sub(min)
	count := decimal.New(int64(n), 0)
	edges := make([]decimal.Decimal, n+1)
	for i := 0; i < n; i++ {
		edges[i] = min.Add(width.Mul(decimal.New(int64(i), 0)).Div(count))
	}
	edges[0] = edges[0].Sub(adjustment)
	edges[n] = max
	return &Bins{edges}, nil
}

func widening(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return rangeMargin
	}
	return v.Abs().Mul(rangeMargin)
}

// Count returns the number of bins.
func (b *Bins) Count() int {
	return len(b.edges) - 1
}

// Edges returns the n+1 edges delimiting the n bins.
func (b *Bins) Edges() []decimal.Decimal {
	return b.edges
}

/*
Index takes a value and returns the index of the bin it belongs to, from 0
to Count()-1. Values at or below the lowest edge get -1 and values above the
highest edge get Count().
*/
func (b *Bins) Index(v decimal.Decimal) int {
	if v.LessThanOrEqual(b.edges[0]) {
		return -1
	}
	for i, e := range b.edges[1:] {
		if v.LessThanOrEqual(e) {
			return i
		}
	}
	return b.Count()
}

func (b *Bins) String() string {
	return fmt.Sprintf("%v", b.edges)
}

