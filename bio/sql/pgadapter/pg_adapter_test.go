package pgadapter

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/pbanos/cedar/bio"
	biosql "github.com/pbanos/cedar/bio/sql"
	"github.com/pbanos/cedar/feature"
)

func TestWriteAndReadSamples(t *testing.T) {
	url := os.Getenv("CEDAR_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("CEDAR_TEST_POSTGRES_URL not set")
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
	a, err := New(url)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	w, err := biosql.NewWriter(ctx, a, features)
	if err != nil {
		t.Fatal(err)
	}
	before, err := a.ReadSamples(ctx, features)
	if err != nil {
		t.Fatal(err)
	}
	n, err := w.Write(ctx, samples)
	if err != nil || n != 3 {
		t.Fatalf("expected to write 3 samples, got %d, %v", n, err)
	}
	after, err := a.ReadSamples(ctx, features)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+3 {
		t.Fatalf("expected %d samples, got %d", len(before)+3, len(after))
	}
	read := after[len(before):]
	for i := range samples {
		expected, _ := bio.Values(samples[i], features)
		got, _ := bio.Values(read[i], features)
		for j := range expected {
			if fmt.Sprint(expected[j]) != fmt.Sprint(got[j]) {
				t.Errorf("sample %d, feature %s: expected %v, got %v", i, features[j].Name(), expected[j], got[j])
			}
		}
	}
}
