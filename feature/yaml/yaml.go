/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/cedar/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it in the order they are declared,
or an error.

The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each feature with its name and either
  - a list of valid values for discrete features,
  - the string 'continuous' for continuous features discretized into the
    default number of bins, or
  - an object with a bins property for continuous features discretized into
    that many bins.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := []feature.Feature{}
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		f, err := parseFeature(fn, item.Value)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}

func parseFeature(name string, declaration interface{}) (feature.Feature, error) {
	switch values := declaration.(type) {
	case string:
		if values != "continuous" {
			return nil, fmt.Errorf("invalid declaration %q for feature %s", values, name)
		}
		return feature.NewContinuousFeature(name, feature.DefaultBins), nil
	case []interface{}:
		stringVs := []string{}
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		return feature.NewDiscreteFeature(name, stringVs), nil
	case yaml.MapSlice:
		bins := feature.DefaultBins
		for _, item := range values {
			if fmt.Sprintf("%v", item.Key) != "bins" {
				return nil, fmt.Errorf("unknown property %v for feature %s", item.Key, name)
			}
			n, ok := item.Value.(int)
			if !ok || n < 1 {
				return nil, fmt.Errorf("bins for feature %s must be a positive integer, got %v", name, item.Value)
			}
			bins = n
		}
		return feature.NewContinuousFeature(name, bins), nil
	default:
		return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", declaration, name)
	}
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}
