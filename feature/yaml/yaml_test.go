package yaml

import (
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pbanos/cedar/feature"
)

const drugMetadata = `
features:
  Age: {bins: 4}
  Sex: [F, M]
  BP: [LOW, NORMAL, HIGH]
  Cholesterol: [NORMAL, HIGH]
  Na_to_K: continuous
  Drug: [drugA, drugB, drugC, drugX, drugY]
`

func TestReadFeatures(t *testing.T) {
	features, err := ReadFeatures([]byte(drugMetadata))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range features {
		names = append(names, f.Name())
	}
	want := []string{"Age", "Sex", "BP", "Cholesterol", "Na_to_K", "Drug"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("feature names = %v, want %v", names, want)
	}
	age, ok := features[0].(*feature.ContinuousFeature)
	if !ok || age.Bins() != 4 {
		t.Errorf("Age = %#v, want a continuous feature with 4 bins", features[0])
	}
	nak, ok := features[4].(*feature.ContinuousFeature)
	if !ok || nak.Bins() != feature.DefaultBins {
		t.Errorf("Na_to_K = %#v, want a continuous feature with default bins", features[4])
	}
	bp, ok := features[2].(*feature.DiscreteFeature)
	if !ok || !reflect.DeepEqual(bp.AvailableValues(), []string{"LOW", "NORMAL", "HIGH"}) {
		t.Errorf("BP = %#v", features[2])
	}
}

func TestReadFeaturesNumericDiscreteValues(t *testing.T) {
	features, err := ReadFeatures([]byte("features:\n  Grade: [1, 2, 3]\n"))
	if err != nil {
		t.Fatal(err)
	}
	df := features[0].(*feature.DiscreteFeature)
	if !reflect.DeepEqual(df.AvailableValues(), []string{"1", "2", "3"}) {
		t.Errorf("AvailableValues() = %v", df.AvailableValues())
	}
}

func TestReadFeaturesErrors(t *testing.T) {
	for _, md := range []string{
		"other: 1\n",
		"features:\n  Age: numeric\n",
		"features:\n  Age: {bins: 0}\n",
		"features:\n  Age: {width: 3}\n",
		"features:\n  Age: 3\n",
		"features: [\n",
	} {
		if _, err := ReadFeatures([]byte(md)); err == nil {
			t.Errorf("ReadFeatures(%q) did not fail", md)
		}
	}
}

func TestReadFeaturesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	if err := ioutil.WriteFile(path, []byte(drugMetadata), 0644); err != nil {
		t.Fatal(err)
	}
	features, err := ReadFeaturesFromFile(path)
	if err != nil || len(features) != 6 {
		t.Errorf("ReadFeaturesFromFile = %d features, %v", len(features), err)
	}
	if _, err = ReadFeaturesFromFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
