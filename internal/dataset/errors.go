package dataset

import (
	"errors"
	"fmt"
)

// Kind classifies why a dataset could not be loaded.
type Kind int

const (
	// KindFileNotFound means the CSV path does not exist or is unreadable.
	KindFileNotFound Kind = iota
	// KindParse covers everything else: malformed CSV, schema mismatch,
	// non-numeric cells, columns that cannot be imputed.
	KindParse
)

// LoadError is the typed failure carried by a Result. It is reported to the
// user and degrades the dashboard pages; it never terminates the process.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	default:
		return fmt.Sprintf("error loading data: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrNoLabelColumn is returned by Dataset.LabelCounts when the CSV had no
// Potability column. Only the potability page degrades on it.
var ErrNoLabelColumn = errors.New("no Potability column in dataset")

// IsNotFound reports whether err is a LoadError of kind KindFileNotFound.
func IsNotFound(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == KindFileNotFound
}

// IsParse reports whether err is a LoadError of kind KindParse.
func IsParse(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == KindParse
}

func notFound(path string, err error) *LoadError {
	return &LoadError{Kind: KindFileNotFound, Path: path, Err: err}
}

func parseErr(path string, format string, args ...any) *LoadError {
	return &LoadError{Kind: KindParse, Path: path, Err: fmt.Errorf(format, args...)}
}
