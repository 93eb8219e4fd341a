package stats

import "testing"

func TestHistogram(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	bins := Histogram(x, 5)

	if len(bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(bins))
	}
	if bins[0].Lo != 0 {
		t.Errorf("first bin Lo = %v, want 0", bins[0].Lo)
	}
	if bins[4].Hi != 10 {
		t.Errorf("last bin Hi = %v, want 10", bins[4].Hi)
	}

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(x) {
		t.Errorf("bin counts sum to %d, want %d", total, len(x))
	}
	// The maximum lands in the last bin rather than overflowing past it.
	if bins[4].Count != 3 {
		t.Errorf("last bin count = %d, want 3 (8, 9 and the max 10)", bins[4].Count)
	}
}

func TestHistogramConstantColumn(t *testing.T) {
	bins := Histogram([]float64{4.2, 4.2, 4.2}, 20)
	if len(bins) != 1 {
		t.Fatalf("got %d bins for a constant column, want 1", len(bins))
	}
	if bins[0].Lo != 4.2 || bins[0].Hi != 4.2 || bins[0].Count != 3 {
		t.Errorf("bin = %+v, want {4.2 4.2 3}", bins[0])
	}
}

func TestHistogramEmpty(t *testing.T) {
	if bins := Histogram(nil, 10); bins != nil {
		t.Errorf("Histogram(nil) = %v, want nil", bins)
	}
	if bins := Histogram([]float64{1, 2}, 0); bins != nil {
		t.Errorf("Histogram with 0 buckets = %v, want nil", bins)
	}
}

func TestHistogramAdjacentBinsShareEdges(t *testing.T) {
	bins := Histogram([]float64{0, 10}, 4)
	for i := 1; i < len(bins); i++ {
		if bins[i].Lo != bins[i-1].Hi {
			t.Errorf("bin %d Lo = %v, previous Hi = %v", i, bins[i].Lo, bins[i-1].Hi)
		}
	}
}
