/*
Package preprocessing turns samples into the feature rows and labels trees
are grown from and classify.
*/
package preprocessing

import (
	"fmt"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/dataset"
	"github.com/pbanos/cedar/discretize"
	"github.com/pbanos/cedar/feature"
	"github.com/shopspring/decimal"
)

/*
Encoder translates samples into rows of dataset values. Discrete feature
values are kept as strings and continuous ones are replaced by the index
of the bin they fall in, the bins having been fitted on training samples.
*/
type Encoder struct {
	features []feature.Feature
	class    *feature.DiscreteFeature
	bins     map[string]*discretize.Bins
}

/*
Fit takes a slice of features, the name of the one holding the class label
and a slice of training samples, and returns an Encoder whose rows hold the
values for every feature but the class, in the given order.

The class feature must be discrete. Bins for each continuous feature are
fitted on the training samples' values for it.
*/
func Fit(features []feature.Feature, className string, samples []bio.Sample) (*Encoder, error) {
	f, _ := feature.Find(features, className)
	if f == nil {
		return nil, fmt.Errorf("class feature '%s' is not defined", className)
	}
	class, ok := f.(*feature.DiscreteFeature)
	if !ok {
		return nil, fmt.Errorf("class feature '%s' must be discrete", className)
	}
	e := &Encoder{class: class, bins: make(map[string]*discretize.Bins)}
	for _, f := range features {
		if f == class {
			continue
		}
		e.features = append(e.features, f)
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok {
			continue
		}
		values := make([]decimal.Decimal, 0, len(samples))
		for i, s := range samples {
			v, err := s.ValueFor(cf)
			if err != nil {
				return nil, fmt.Errorf("reading sample %d: %v", i+1, err)
			}
			d, ok := v.(decimal.Decimal)
			if !ok {
				return nil, fmt.Errorf("sample %d has non-numeric value %v for continuous feature %s", i+1, v, cf.Name())
			}
			values = append(values, d)
		}
		b, err := discretize.Fit(values, cf.Bins())
		if err != nil {
			return nil, fmt.Errorf("fitting bins for feature %s: %v", cf.Name(), err)
		}
		e.bins[cf.Name()] = b
	}
	return e, nil
}

// Features returns the features encoded into rows, in column order.
func (e *Encoder) Features() []feature.Feature {
	return e.features
}

// Class returns the feature holding the class label.
func (e *Encoder) Class() *feature.DiscreteFeature {
	return e.class
}

// Bins returns the bins fitted for the continuous feature with the given
// name, or nil if there is none.
func (e *Encoder) Bins(name string) *discretize.Bins {
	return e.bins[name]
}

/*
Point takes a sample and returns its row of values, or an error if the
sample lacks a value for any of the encoded features. The sample does not
need a value for the class feature.
*/
func (e *Encoder) Point(s bio.Sample) ([]dataset.Value, error) {
	point := make([]dataset.Value, len(e.features))
	for i, f := range e.features {
		v, err := s.ValueFor(f)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("missing value for feature %s", f.Name())
		}
		switch v := v.(type) {
		case decimal.Decimal:
			b, ok := e.bins[f.Name()]
			if !ok {
				return nil, fmt.Errorf("numeric value %v for discrete feature %s", v, f.Name())
			}
			point[i] = b.Index(v)
		case string:
			point[i] = v
		default:
			return nil, fmt.Errorf("unsupported value %v of type %T for feature %s", v, v, f.Name())
		}
	}
	return point, nil
}

/*
Dataset takes a slice of samples and returns a dataset with a row for each
sample and its class value as label, or an error.
*/
func (e *Encoder) Dataset(samples []bio.Sample) (*dataset.Dataset, error) {
	rows := make([][]dataset.Value, 0, len(samples))
	labels := make([]string, 0, len(samples))
	for i, s := range samples {
		point, err := e.Point(s)
		if err != nil {
			return nil, fmt.Errorf("encoding sample %d: %v", i+1, err)
		}
		label, err := s.ValueFor(e.class)
		if err != nil {
			return nil, fmt.Errorf("encoding sample %d: %v", i+1, err)
		}
		ls, ok := label.(string)
		if !ok {
			return nil, fmt.Errorf("encoding sample %d: missing value for class feature %s", i+1, e.class.Name())
		}
		rows = append(rows, point)
		labels = append(labels, ls)
	}
	return dataset.New(rows, labels)
}
