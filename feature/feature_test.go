package feature

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDiscreteFeatureValid(t *testing.T) {
	f := NewDiscreteFeature("Sex", []string{"F", "M"})
	if ok, err := f.Valid("F"); !ok || err != nil {
		t.Errorf("Valid(F) = %v, %v", ok, err)
	}
	for _, v := range []interface{}{"X", 1, nil} {
		if ok, err := f.Valid(v); ok || err == nil {
			t.Errorf("Valid(%v) = %v, %v, want false and an error", v, ok, err)
		}
	}
}

func TestContinuousFeature(t *testing.T) {
	f := NewContinuousFeature("Age", 0)
	if f.Bins() != DefaultBins {
		t.Errorf("Bins() = %d, want %d", f.Bins(), DefaultBins)
	}
	if ok, _ := f.Valid(decimal.NewFromInt(3)); !ok {
		t.Error("decimal value rejected")
	}
	if ok, _ := f.Valid(3.0); ok {
		t.Error("float64 value accepted")
	}
}

func TestParseValue(t *testing.T) {
	age := NewContinuousFeature("Age", 4)
	v, err := ParseValue(age, "23.5")
	if err != nil {
		t.Fatal(err)
	}
	if d := v.(decimal.Decimal); !d.Equal(decimal.RequireFromString("23.5")) {
		t.Errorf("ParseValue = %v, want 23.5", d)
	}
	if _, err = ParseValue(age, "?"); err == nil {
		t.Error("expected an error parsing ?")
	}
	bp := NewDiscreteFeature("BP", []string{"LOW", "HIGH"})
	if v, err = ParseValue(bp, "LOW"); err != nil || v != "LOW" {
		t.Errorf("ParseValue = %v, %v, want LOW", v, err)
	}
	if _, err = ParseValue(bp, "NORMAL"); err == nil {
		t.Error("expected an error parsing an unknown value")
	}
}

func TestFind(t *testing.T) {
	features := []Feature{NewDiscreteFeature("Sex", nil), NewContinuousFeature("Age", 4)}
	if f, i := Find(features, "Age"); i != 1 || f != features[1] {
		t.Errorf("Find(Age) = %v, %d", f, i)
	}
	if f, i := Find(features, "Drug"); i != -1 || f != nil {
		t.Errorf("Find(Drug) = %v, %d", f, i)
	}
}
