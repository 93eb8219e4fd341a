package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"single value", []float64{5}, 5},
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"unsorted input", []float64{9, 7, 8.5, 7.2}, 7.85},
		{"duplicates", []float64{2, 2, 2, 8}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.in); !almostEqual(got, tt.want) {
				t.Errorf("Median(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Median(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("Median mutated its input: %v", in)
	}
}

func TestQuantile(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		if got := Quantile(x, tt.q); !almostEqual(got, tt.want) {
			t.Errorf("Quantile(%v, %v) = %v, want %v", x, tt.q, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	// Classic textbook sample: mean 5, sample std sqrt(32/7).
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := Describe(x)

	if s.Count != 8 {
		t.Errorf("Count = %d, want 8", s.Count)
	}
	if !almostEqual(s.Mean, 5) {
		t.Errorf("Mean = %v, want 5", s.Mean)
	}
	if !almostEqual(s.Std, math.Sqrt(32.0/7.0)) {
		t.Errorf("Std = %v, want %v", s.Std, math.Sqrt(32.0/7.0))
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("Min/Max = %v/%v, want 2/9", s.Min, s.Max)
	}
	if !almostEqual(s.Q1, 4) {
		t.Errorf("Q1 = %v, want 4", s.Q1)
	}
	if !almostEqual(s.Median, 4.5) {
		t.Errorf("Median = %v, want 4.5", s.Median)
	}
	if !almostEqual(s.Q3, 5.5) {
		t.Errorf("Q3 = %v, want 5.5", s.Q3)
	}
}

func TestDescribeSingleValue(t *testing.T) {
	s := Describe([]float64{3.14})
	if s.Count != 1 || s.Mean != 3.14 || s.Min != 3.14 || s.Max != 3.14 {
		t.Errorf("Describe single value = %+v", s)
	}
	if s.Std != 0 {
		t.Errorf("Std of a single value = %v, want 0", s.Std)
	}
}

func TestCounts(t *testing.T) {
	got := Counts([]int{0, 1, 1, 0, 1})
	if got[0] != 2 || got[1] != 3 {
		t.Errorf("Counts = %v, want map[0:2 1:3]", got)
	}
	if len(Counts(nil)) != 0 {
		t.Errorf("Counts(nil) not empty")
	}
}
