package bio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/cedar/feature"
)

/*
ValueRequester represents a way to ask for feature values and reject the
given values.
*/
type ValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
ReadSample takes an io.Reader, a slice of features, a ValueRequester and a
map of feature names to raw values already known, and returns a sample with
a value for every feature or an error.

Values for features not in the map are requested with the ValueRequester
and read from the reader, one per line. Lines that are not a valid value for
the feature are rejected with the ValueRequester's RejectValueFor method and
the next line is read, until a valid one is found or the reader is
exhausted. A known value that is not valid makes ReadSample fail.
*/
func ReadSample(r io.Reader, features []feature.Feature, requester ValueRequester, known map[string]string) (Sample, error) {
	scanner := bufio.NewScanner(r)
	featureValues := make(map[string]interface{}, len(features))
	for _, f := range features {
		if raw, ok := known[f.Name()]; ok {
			v, err := feature.ParseValue(f, raw)
			if err != nil {
				return nil, err
			}
			featureValues[f.Name()] = v
			continue
		}
		err := requester.RequestValueFor(f)
		if err != nil {
			return nil, err
		}
		v, err := readValue(scanner, f, requester)
		if err != nil {
			return nil, err
		}
		featureValues[f.Name()] = v
	}
	return NewSample(featureValues), nil
}

func readValue(scanner *bufio.Scanner, f feature.Feature, requester ValueRequester) (interface{}, error) {
	for scanner.Scan() {
		line := scanner.Text()
		v, err := feature.ParseValue(f, line)
		if err == nil {
			return v, nil
		}
		err = requester.RejectValueFor(f, line)
		if err != nil {
			return nil, err
		}
	}
	err := scanner.Err()
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("EOF when requesting value for %s", f.Name())
}
