package logging

import (
	"fmt"
	"io"
	"strings"
)

// Basic ANSI color codes used for log prefixes.
const (
	Reset    = "\033[0m"
	FgCyan   = "\033[36m"
	FgGreen  = "\033[32m"
	FgYellow = "\033[33m"
	FgRed    = "\033[31m"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> path=<dataPath> <formattedMessage>\n
//
// where <dataPath> is trimmed and defaults to "(unknown)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitPath controls whether the dataset path field is written.
	// When false (default), output includes: "path=<dataPath>".
	OmitPath bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(dataPath string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = l.PrefixColor + prefix + Reset
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitPath {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	p := strings.TrimSpace(dataPath)
	if p == "" {
		p = "(unknown)"
	}
	fmt.Fprintf(l.Writer, "%s path=%s %s\n", prefix, p, msg)
}
