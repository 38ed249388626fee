package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
	"gopkg.in/mgo.v2/bson"
)

func TestWriteAndReadSamples(t *testing.T) {
	url := os.Getenv("CEDAR_TEST_MONGO_URL")
	if url == "" {
		t.Skip("CEDAR_TEST_MONGO_URL not set")
	}
	ctx := context.Background()
	features := []feature.Feature{
		feature.NewContinuousFeature("Na_to_K", 6),
		feature.NewDiscreteFeature("BP", []string{"LOW", "NORMAL", "HIGH"}),
		feature.NewDiscreteFeature("Drug", []string{"drugA", "drugC", "drugY"}),
	}
	samples, err := bio.ReadCSV(strings.NewReader("Na_to_K,BP,Drug\n25.355,HIGH,drugY\n13.093,LOW,drugC\n10.114,HIGH,drugA\n"), features)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Dial(url)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	c := s.session.DB("").C(samplesCollectionName)
	_, err = c.RemoveAll(bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	defer c.RemoveAll(bson.M{})
	n, err := NewWriter(s, features).Write(ctx, samples)
	if err != nil || n != 3 {
		t.Fatalf("expected to write 3 samples, got %d, %v", n, err)
	}
	read, err := s.ReadSamples(ctx, features)
	if err != nil {
		t.Fatal(err)
	}
	if len(read) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(read))
	}
	for i := range samples {
		expected, _ := bio.Values(samples[i], features)
		got, _ := bio.Values(read[i], features)
		for j := range expected {
			if fmt.Sprint(expected[j]) != fmt.Sprint(got[j]) {
				t.Errorf("sample %d, feature %s: expected %v, got %v", i, features[j].Name(), expected[j], got[j])
			}
		}
	}
	_, err = c.RemoveAll(bson.M{})
	if err != nil {
		t.Fatal(err)
	}
	err = c.Insert(bson.M{"Na_to_K": 12.5, "BP": "LOW"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = s.ReadSamples(ctx, features); err == nil {
		t.Error("expected an error reading a document without a value for Drug")
	}
}
