package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/QinisoNst/water-q/internal/logging"
	"github.com/QinisoNst/water-q/internal/stats"
)

// Result is what a load produces: either a Dataset or a typed failure.
// It is never mutated after creation.
type Result struct {
	Dataset *Dataset
	Err     error
}

// Failed reports whether the load produced no usable dataset.
func (r *Result) Failed() bool { return r.Err != nil }

// Loader memoizes load results per distinct input path for the lifetime of
// the process. A failed load is cached too: there is no retry policy, the
// user fixes the file and restarts.
type Loader struct {
	// Log, when given a writer, emits per-load diagnostics.
	Log logging.Logger

	mu    sync.Mutex
	cache map[string]*Result
}

// NewLoader creates an empty Loader. Construct one at startup and inject it
// into every consumer so all of them share the same cached Dataset.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*Result)}
}

// Load reads, validates and cleans the CSV at path. Repeated calls with the
// same path return the previously computed Result without touching disk.
func (l *Loader) Load(path string) *Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res, ok := l.cache[path]; ok {
		l.Log.Logf(path, "cache hit")
		return res
	}
	res := l.load(path)
	l.cache[path] = res
	return res
}

func (l *Loader) load(path string) *Result {
	f, err := os.Open(path)
	if err != nil {
		l.Log.Logf(path, "open failed: %v", err)
		return &Result{Err: notFound(path, err)}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{Err: parseErr(path, "empty file")}
		}
		return &Result{Err: parseErr(path, "read header: %w", err)}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	pos, err := validateHeader(header)
	if err != nil {
		l.Log.Logf(path, "schema mismatch: %v", err)
		return &Result{Err: parseErr(path, "schema mismatch: %w", err)}
	}
	_, hasLabel := pos[LabelColumn]

	numeric := make(map[string][]float64, len(NumericColumns))
	for _, name := range NumericColumns {
		numeric[name] = []float64{}
	}
	var labels []int
	rows := 0

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &Result{Err: parseErr(path, "row %d: %w", rows+2, err)}
		}
		for _, name := range NumericColumns {
			cell := strings.TrimSpace(record[pos[name]])
			if cell == "" {
				// Missing cell; filled with the column median below.
				numeric[name] = append(numeric[name], math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return &Result{Err: parseErr(path, "row %d: column %q: invalid numeric value %q", rows+2, name, cell)}
			}
			numeric[name] = append(numeric[name], v)
		}
		if hasLabel {
			cell := strings.TrimSpace(record[pos[LabelColumn]])
			v, err := strconv.Atoi(cell)
			if err != nil || (v != 0 && v != 1) {
				return &Result{Err: parseErr(path, "row %d: column %q: invalid label %q (expected 0 or 1)", rows+2, LabelColumn, cell)}
			}
			labels = append(labels, v)
		}
		rows++
	}

	missing := make(map[string]int, len(NumericColumns))
	medians := make(map[string]float64, len(NumericColumns))
	for _, name := range NumericColumns {
		vals := numeric[name]
		known := make([]float64, 0, len(vals))
		for _, v := range vals {
			if !math.IsNaN(v) {
				known = append(known, v)
			}
		}
		gaps := len(vals) - len(known)
		missing[name] = gaps
		if gaps == 0 {
			continue
		}
		if len(known) == 0 {
			return &Result{Err: parseErr(path, "column %q is entirely empty; no median to impute", name)}
		}
		med := stats.Median(known)
		medians[name] = med
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = med
			}
		}
		l.Log.Logf(path, "imputed %d missing value(s) in %q with median %g", gaps, name, med)
	}

	d := &Dataset{
		ID:       uuid.New().String(),
		Path:     path,
		Columns:  header,
		rows:     rows,
		numeric:  numeric,
		labels:   labels,
		hasLabel: hasLabel,
		missing:  missing,
		medians:  medians,
	}
	l.Log.Logf(path, "loaded %d row(s), %d column(s), id=%s", rows, len(header), d.ID)
	return &Result{Dataset: d}
}
