// Package dataset loads the water potability CSV into an immutable in-memory
// table. Missing numeric cells are filled with the per-column median at load
// time, so every consumer sees complete measurement columns. Loads are
// memoized per path for the lifetime of the process.
package dataset

import (
	"fmt"

	"github.com/QinisoNst/water-q/internal/stats"
)

// Dataset is the cleaned tabular representation of the CSV. It is created
// once by the Loader and shared read-only between all renderers; none of the
// accessors expose internal slices for mutation of numeric data beyond the
// column vectors themselves, which callers treat as read-only.
type Dataset struct {
	// ID uniquely identifies this load (shown in logs and reports).
	ID string
	// Path is the file the dataset was read from.
	Path string
	// Columns is the header in file order, including the label column when
	// present.
	Columns []string

	rows     int
	numeric  map[string][]float64
	labels   []int
	hasLabel bool
	missing  map[string]int
	medians  map[string]float64
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.rows }

// Parameters returns the measurement column names in file order, excluding
// the label column. This is the full selectable set for the trend and
// distribution pages.
func (d *Dataset) Parameters() []string {
	params := make([]string, 0, len(d.numeric))
	for _, name := range d.Columns {
		if name == LabelColumn {
			continue
		}
		params = append(params, name)
	}
	return params
}

// Column returns the imputed value vector for a numeric column.
func (d *Dataset) Column(name string) ([]float64, bool) {
	vals, ok := d.numeric[name]
	return vals, ok
}

// MissingCount reports how many cells of the column were empty in the source
// file, before imputation. After loading the column itself holds no gaps.
func (d *Dataset) MissingCount(name string) int { return d.missing[name] }

// ImputedMedian returns the median that was used to fill the column's gaps,
// and whether any cell actually needed filling.
func (d *Dataset) ImputedMedian(name string) (float64, bool) {
	if d.missing[name] == 0 {
		return 0, false
	}
	return d.medians[name], true
}

// HasLabel reports whether the source file carried the Potability column.
func (d *Dataset) HasLabel() bool { return d.hasLabel }

// LabelCounts returns the number of samples per potability class. The keys
// present are a subset of {0, 1} and the counts sum to Rows().
func (d *Dataset) LabelCounts() (map[int]int, error) {
	if !d.hasLabel {
		return nil, ErrNoLabelColumn
	}
	return stats.Counts(d.labels), nil
}

// Head returns up to n rows as display strings, in source row order and
// column order, for the overview table.
func (d *Dataset) Head(n int) [][]string {
	if n > d.rows {
		n = d.rows
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, len(d.Columns))
		for _, name := range d.Columns {
			if name == LabelColumn {
				row = append(row, fmt.Sprintf("%d", d.labels[i]))
				continue
			}
			row = append(row, fmt.Sprintf("%.3f", d.numeric[name][i]))
		}
		out = append(out, row)
	}
	return out
}
