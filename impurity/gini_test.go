package impurity

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestGiniPure(t *testing.T) {
	for _, labels := range [][]string{{"a"}, {"a", "a", "a"}, {"drugY", "drugY"}} {
		if g := Gini(labels); g != 0.0 {
			t.Errorf("Gini(%v) = %v, want 0", labels, g)
		}
	}
}

func TestGiniEmpty(t *testing.T) {
	if g := Gini(nil); g != 0.0 {
		t.Errorf("Gini(nil) = %v, want 0", g)
	}
}

func TestGiniBalanced(t *testing.T) {
	for k := 2; k <= 6; k++ {
		var labels []string
		for i := 0; i < k; i++ {
			labels = append(labels, string(rune('a'+i)), string(rune('a'+i)))
		}
		want := 1.0 - 1.0/float64(k)
		if g := Gini(labels); math.Abs(g-want) > epsilon {
			t.Errorf("Gini with %d balanced labels = %v, want %v", k, g, want)
		}
	}
}

func TestGiniMixedIsPositive(t *testing.T) {
	g := Gini([]string{"a", "a", "b"})
	want := 1.0 - (4.0/9.0 + 1.0/9.0)
	if math.Abs(g-want) > epsilon {
		t.Errorf("Gini = %v, want %v", g, want)
	}
}

func TestInfoGainPerfectSplit(t *testing.T) {
	parent := []string{"A", "A", "B"}
	gain := InfoGain(parent, [][]string{{"A", "A"}, {"B"}})
	if math.Abs(gain-Gini(parent)) > epsilon {
		t.Errorf("InfoGain of perfect split = %v, want %v", gain, Gini(parent))
	}
}

func TestInfoGainUselessSplit(t *testing.T) {
	parent := []string{"A", "B", "A", "B"}
	gain := InfoGain(parent, [][]string{{"A", "B"}, {"A", "B"}})
	if math.Abs(gain) > epsilon {
		t.Errorf("InfoGain of useless split = %v, want 0", gain)
	}
}

func TestInfoGainNeverNegative(t *testing.T) {
	parent := []string{"x", "y", "z", "x", "x", "y", "z", "z", "y", "x"}
	partitions := [][][]string{
		{parent},
		{parent[:1], parent[1:]},
		{parent[:3], parent[3:7], parent[7:]},
		{{"x", "x", "x", "x"}, {"y", "y", "y"}, {"z", "z", "z"}},
		{{"x", "y"}, {"z", "x"}, {"x", "y"}, {"z", "z"}, {"y", "x"}},
	}
	for i, p := range partitions {
		if gain := InfoGain(parent, p); gain < -epsilon {
			t.Errorf("partition %d: InfoGain = %v, want >= 0", i, gain)
		}
	}
}

func TestInfoGainEmptyParent(t *testing.T) {
	if gain := InfoGain(nil, nil); gain != 0.0 {
		t.Errorf("InfoGain(nil, nil) = %v, want 0", gain)
	}
}

func TestGiniIsStable(t *testing.T) {
	var labels []string
	for i := 0; i < 42; i++ {
		labels = append(labels, string(rune('a'+i%7)))
	}
	labels = append(labels, "h", "h", "i")
	first := Gini(labels)
	for i := 0; i < 500; i++ {
		if g := Gini(labels); g != first {
			t.Fatalf("Gini(%v) = %v on call %d, first call returned %v", labels, g, i, first)
		}
	}
}
