package stats

// Bin is one histogram bucket. Lo is inclusive; Hi is exclusive except for
// the last bin, which also counts the maximum value.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram distributes values over `buckets` equal-width bins spanning
// [min, max]. A constant column collapses into a single bin holding every
// value. Empty input yields nil.
func Histogram(x []float64, buckets int) []Bin {
	if len(x) == 0 || buckets <= 0 {
		return nil
	}
	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []Bin{{Lo: min, Hi: max, Count: len(x)}}
	}

	width := (max - min) / float64(buckets)
	bins := make([]Bin, buckets)
	for i := range bins {
		bins[i].Lo = min + float64(i)*width
		bins[i].Hi = min + float64(i+1)*width
	}
	bins[buckets-1].Hi = max

	for _, v := range x {
		idx := int((v - min) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		bins[idx].Count++
	}
	return bins
}
