/*
Package bio reads samples from, and writes them to, the different sources
supported by cedar: CSV streams and, through its subpackages, SQL databases,
MongoDB and Redis.

Sample values are the ones accepted by the features describing them:
strings for discrete features and decimal.Decimal for continuous ones.
*/
package bio

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pbanos/cedar/feature"
)

/*
Sample represents an item to process or from which to learn how to process them.

Its ValueFor method returns the value of the sample corresponding to the feature
passed as parameter, or nil if the sample has none.
*/
type Sample interface {
	ValueFor(feature.Feature) (interface{}, error)
}

/*
Writer is an interface for a destination to which samples can be written.
*/
type Writer interface {
	// Write takes a context and a slice of samples and writes them,
	// returning the number of samples written and an error if not all
	// of them could be written.
	Write(context.Context, []Sample) (int, error)
	// Flush ensures any pending written operations finish
	Flush() error
}

type sample struct {
	featureValues map[string]interface{}
}

/*
NewSample takes a map of feature string names to values and returns a sample.
*/
func NewSample(featureValues map[string]interface{}) Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(f feature.Feature) (interface{}, error) {
	return s.featureValues[f.Name()], nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}

/*
ParseSample takes a slice of features and a function returning the raw
string value of a sample for a feature name, and returns a sample with the
values parsed for every feature in the slice. A raw value is missing when
the function returns false; missing values are not supported and make
ParseSample return an error, as do values not valid for their feature.
*/
func ParseSample(features []feature.Feature, raw func(name string) (string, bool)) (Sample, error) {
	featureValues := make(map[string]interface{}, len(features))
	for _, f := range features {
		v, ok := raw(f.Name())
		if !ok {
			return nil, fmt.Errorf("missing value for feature %s", f.Name())
		}
		value, err := feature.ParseValue(f, v)
		if err != nil {
			return nil, err
		}
		featureValues[f.Name()] = value
	}
	return NewSample(featureValues), nil
}

/*
Values takes a sample and a slice of features and returns the values of the
sample for the features, in the same order. It returns an error if the
sample has no value for any of them.
*/
func Values(s Sample, features []feature.Feature) ([]interface{}, error) {
	result := make([]interface{}, 0, len(features))
	for _, f := range features {
		v, err := s.ValueFor(f)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("sample %v has no value for feature %s", s, f.Name())
		}
		result = append(result, v)
	}
	return result, nil
}

/*
RawString takes a value as decoded from a document store (a string, a
number or a json.Number) and returns its string representation for
ParseSample, or false if the value is nil.
*/
func RawString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
