package core

import "testing"

func TestInterval_Surrounds(t *testing.T) {
	interval := NewInterval(0.001, 10.0)

	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"inside", 5.0, true},
		{"exactly at lower bound", 0.001, false},
		{"exactly at upper bound", 10.0, false},
		{"below", 0.0, false},
		{"above", 11.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Surrounds(tt.value); got != tt.expected {
				t.Errorf("Surrounds(%f) = %t, expected %t", tt.value, got, tt.expected)
			}
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	interval := NewInterval(0.0, 1.0)
	if !interval.Contains(0.0) || !interval.Contains(1.0) {
		t.Error("Contains should include both bounds")
	}
	if interval.Contains(1.5) {
		t.Error("Contains should exclude values above the upper bound")
	}
}

func TestInterval_Size(t *testing.T) {
	if size := NewInterval(0.5, 3.0).Size(); size != 2.5 {
		t.Errorf("Expected size 2.5, got %f", size)
	}
	if size := NewInterval(5.0, 1.0).Size(); size >= 0 {
		t.Errorf("Inverted interval should have negative size, got %f", size)
	}
}

func TestInterval_Inverted(t *testing.T) {
	// An inverted interval is empty: no parameter qualifies.
	interval := NewInterval(5.0, 1.0)
	for _, v := range []float64{0.0, 1.0, 3.0, 5.0, 6.0} {
		if interval.Surrounds(v) {
			t.Errorf("Inverted interval should not surround %f", v)
		}
	}
}
