package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/cedar/bio"
	"github.com/pbanos/cedar/feature"
)

func TestKindOf(t *testing.T) {
	for location, expected := range map[string]sourceKind{
		"":                              csvSource,
		"drugs.csv":                     csvSource,
		"drugs.db":                      sqlite3Source,
		"postgresql://localhost/drugs":  postgreSQLSource,
		"postgres://localhost/drugs":    postgreSQLSource,
		"mongodb://localhost/drugs":     mongoSource,
		"redis://localhost/0?key=drugs": redisSource,
		"/tmp/drugs.db.csv":             csvSource,
	} {
		if got := kindOf(location); got != expected {
			t.Errorf("kindOf(%q) = %d, expected %d", location, got, expected)
		}
	}
}

func TestCopySamplesBetweenSources(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	features := []feature.Feature{
		feature.NewContinuousFeature("Na_to_K", 6),
		feature.NewDiscreteFeature("Drug", []string{"drugA", "drugY"}),
	}
	samples, err := bio.ReadCSV(strings.NewReader("Na_to_K,Drug\n25.355,drugY\n10.114,drugA\n"), features)
	if err != nil {
		t.Fatal(err)
	}
	for _, location := range []string{filepath.Join(dir, "drugs.csv"), filepath.Join(dir, "drugs.db")} {
		w, closeW, err := openWriter(ctx, logger(false), location, 0, features)
		if err != nil {
			t.Fatalf("opening writer for %s: %v", location, err)
		}
		n, err := w.Write(ctx, samples)
		if err != nil || n != len(samples) {
			t.Fatalf("writing to %s: wrote %d, %v", location, n, err)
		}
		if err = w.Flush(); err != nil {
			t.Fatal(err)
		}
		if err = closeW(); err != nil {
			t.Fatal(err)
		}
		read, err := readSamples(ctx, logger(false), location, 0, features)
		if err != nil {
			t.Fatalf("reading from %s: %v", location, err)
		}
		if len(read) != len(samples) {
			t.Fatalf("expected %d samples from %s, got %d", len(samples), location, len(read))
		}
		for i := range samples {
			expected, _ := bio.Values(samples[i], features)
			got, _ := bio.Values(read[i], features)
			if fmt.Sprint(expected) != fmt.Sprint(got) {
				t.Errorf("%s sample %d: expected %v, got %v", location, i, expected, got)
			}
		}
	}
}

func TestSplitSamples(t *testing.T) {
	samples := make([]bio.Sample, 100)
	for i := range samples {
		samples[i] = bio.NewSample(map[string]interface{}{"i": i})
	}
	kept, split := splitSamples(samples, 20, 42)
	if len(kept)+len(split) != len(samples) {
		t.Fatalf("expected %d samples in total, got %d", len(samples), len(kept)+len(split))
	}
	keptAgain, _ := splitSamples(samples, 20, 42)
	if len(keptAgain) != len(kept) {
		t.Errorf("expected the same split for the same seed")
	}
	_, all := splitSamples(samples, 100, 42)
	if len(all) != len(samples) {
		t.Errorf("expected every sample in the split set with probability 100, got %d", len(all))
	}
}

func TestKnownValues(t *testing.T) {
	ccc := &classifyCmdConfig{point: []string{"Sex=M", "BP=HIGH", "Note=a=b"}}
	known, err := ccc.knownValues()
	if err != nil {
		t.Fatal(err)
	}
	if known["Sex"] != "M" || known["BP"] != "HIGH" || known["Note"] != "a=b" {
		t.Errorf("unexpected known values %v", known)
	}
	ccc.point = []string{"=M"}
	if _, err = ccc.knownValues(); err == nil {
		t.Error("expected an error for a value without name")
	}
}

func TestFeatureLegend(t *testing.T) {
	if got := featureLegend([]string{"Age", "Sex"}); got != "0=Age, 1=Sex" {
		t.Errorf("unexpected legend %q", got)
	}
}

func TestValidatePrompts(t *testing.T) {
	features := []feature.Feature{
		feature.NewContinuousFeature("Na_to_K", 6),
		feature.NewDiscreteFeature("BP", []string{"LOW", "HIGH"}),
		feature.NewDiscreteFeature("Drug", []string{"drugA", "drugY"}),
	}
	ccc := &classifyCmdConfig{trainingCmdConfig: &trainingCmdConfig{classFeature: "Drug"}}
	if err := ccc.validatePrompts(features, map[string]string{"BP": "LOW"}); err == nil {
		t.Error("expected an error when STDIN holds the training set and Na_to_K must be prompted")
	}
	if err := ccc.validatePrompts(features, map[string]string{"BP": "LOW", "Na_to_K": "12.5"}); err != nil {
		t.Errorf("unexpected error with every feature given: %v", err)
	}
	ccc.dataInput = "drugs.csv"
	if err := ccc.validatePrompts(features, nil); err != nil {
		t.Errorf("unexpected error with a training file: %v", err)
	}
}
