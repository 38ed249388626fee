/*
Package feature describes the properties observed on samples: discrete
features, taking a value among a finite set, and continuous ones, taking
numeric values that must be discretized into bins before growing a tree.
*/
package feature

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultBins is the number of bins a continuous feature is discretized into
// when its metadata does not say otherwise.
const DefaultBins = 4

/*
Feature represents a property that can be observed
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value. Its values are discretized into a number of equal-width bins.
*/
type ContinuousFeature struct {
	name string
	bins int
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
NewContinuousFeature takes a name string and a number of bins and returns a
continuous feature with the given name whose values are discretized in that
many bins. A number of bins lower than 1 is replaced by DefaultBins.
*/
func NewContinuousFeature(name string, bins int) *ContinuousFeature {
	if bins < 1 {
		bins = DefaultBins
	}
	return &ContinuousFeature{name, bins}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is included in the available values fo the feature, the method
returns true and nil. Otherwise it returns false and an error describing the
reason.
*/
func (df *DiscreteFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("discrete feature %s got no value", df.Name())
	}
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("discrete feature %s expects string value, got %T value", df.Name(), value)
	}
	for _, av := range df.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), vs)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

// Bins returns the number of bins the feature's values are discretized into.
func (cf *ContinuousFeature) Bins() int {
	return cf.bins
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is a decimal.Decimal it returns true and nil, otherwise it returns
false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("continuous feature %s got no value", cf.Name())
	}
	_, ok := value.(decimal.Decimal)
	if !ok {
		return false, fmt.Errorf("continuous feature %s expects decimal value, got %T value", cf.Name(), value)
	}
	return true, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

/*
ParseValue takes a feature and the string representation of a value and
returns the value for the feature: the string itself for discrete features
and a decimal.Decimal for continuous ones. It returns an error if the string
is not a valid value for the feature.
*/
func ParseValue(f Feature, s string) (interface{}, error) {
	var value interface{} = s
	if _, ok := f.(*ContinuousFeature); ok {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("converting %q to a number for feature %s: %v", s, f.Name(), err)
		}
		value = d
	}
	if ok, err := f.Valid(value); !ok {
		return nil, err
	}
	return value, nil
}

/*
Find takes a slice of features and a name and returns the feature with that
name and its index in the slice, or nil and -1 if there is none.
*/
func Find(features []Feature, name string) (Feature, int) {
	for i, f := range features {
		if f.Name() == name {
			return f, i
		}
	}
	return nil, -1
}
