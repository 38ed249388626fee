package sqlite3adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/cedar/bio"
	biosql "github.com/pbanos/cedar/bio/sql"
	"github.com/pbanos/cedar/feature"
	"github.com/shopspring/decimal"
)

func drugFeatures() []feature.Feature {
	return []feature.Feature{
		feature.NewContinuousFeature("Na_to_K", 6),
		feature.NewDiscreteFeature("BP", []string{"LOW", "NORMAL", "HIGH"}),
		feature.NewDiscreteFeature("Drug", []string{"drugA", "drugC", "drugY"}),
	}
}

func TestWriteAndReadSamples(t *testing.T) {
	ctx := context.Background()
	features := drugFeatures()
	samples, err := bio.ReadCSV(strings.NewReader("Na_to_K,BP,Drug\n25.355,HIGH,drugY\n13.093,LOW,drugC\n10.114,HIGH,drugA\n"), features)
	if err != nil {
		t.Fatal(err)
	}
	a, err := New(filepath.Join(t.TempDir(), "drugs.db"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	w, err := biosql.NewWriter(ctx, a, features)
	if err != nil {
		t.Fatal(err)
	}
	n, err := w.Write(ctx, samples)
	if err != nil || n != 3 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if err = w.Flush(); err != nil {
		t.Fatal(err)
	}

	read, err := a.ReadSamples(ctx, features)
	if err != nil {
		t.Fatal(err)
	}
	if len(read) != 3 {
		t.Fatalf("read %d samples, want 3", len(read))
	}
	for i, s := range read {
		got, err := bio.Values(s, features)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := bio.Values(samples[i], features)
		if !got[0].(decimal.Decimal).Equal(want[0].(decimal.Decimal)) {
			t.Errorf("sample %d Na_to_K = %v, want %v", i, got[0], want[0])
		}
		if got[1] != want[1] || got[2] != want[2] {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestReadSamplesRejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	features := drugFeatures()
	a, err := New(filepath.Join(t.TempDir(), "drugs.db"), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	w, err := biosql.NewWriter(ctx, a, features)
	if err != nil {
		t.Fatal(err)
	}
	s := bio.NewSample(map[string]interface{}{"Na_to_K": decimal.NewFromInt(7), "BP": "VERY HIGH", "Drug": "drugA"})
	if _, err = w.Write(ctx, []bio.Sample{s}); err != nil {
		t.Fatal(err)
	}
	if _, err = a.ReadSamples(ctx, features); err == nil {
		t.Error("expected an error reading an unknown BP value")
	}
}

func TestColumnName(t *testing.T) {
	a, err := New(filepath.Join(t.TempDir(), "drugs.db"), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if c, err := a.ColumnName("Na_to_K"); err != nil || c != `"Na_to_K"` {
		t.Errorf("ColumnName = %s, %v", c, err)
	}
	for _, name := range []string{"id", `a"b`, ""} {
		if _, err := a.ColumnName(name); err == nil {
			t.Errorf("ColumnName(%q) did not fail", name)
		}
	}
}
