package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_EnabledAndSetWriter(t *testing.T) {
	var l Logger
	if l.Enabled() {
		t.Fatalf("expected disabled when Writer is nil")
	}

	var buf bytes.Buffer
	l.SetWriter(&buf)
	if !l.Enabled() {
		t.Fatalf("expected enabled after setting Writer")
	}
}

func TestLogger_Logf_WritesPrefixPathAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:"}
	l.Logf("  data/water.csv  ", "msg %d", 1)

	out := buf.String()
	if !strings.Contains(out, "X:") {
		t.Fatalf("expected prefix, got %q", out)
	}
	if !strings.Contains(out, "path=data/water.csv") {
		t.Fatalf("expected trimmed path, got %q", out)
	}
	if !strings.Contains(out, "msg 1") {
		t.Fatalf("expected formatted message, got %q", out)
	}
}

func TestLogger_Logf_EmptyPath_UsesUnknown(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:"}
	l.Logf("   ", "x")

	out := buf.String()
	if !strings.Contains(out, "path=(unknown)") {
		t.Fatalf("expected unknown path, got %q", out)
	}
}

func TestLogger_Logf_DefaultPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf}
	l.Logf("data/water.csv", "x")

	out := buf.String()
	if !strings.Contains(out, "Log:") {
		t.Fatalf("expected default prefix, got %q", out)
	}
}

func TestLogger_Logf_ColoredPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", PrefixColor: FgGreen, OmitPath: true}
	l.Logf("", "x")

	out := buf.String()
	if !strings.Contains(out, FgGreen+"X:"+Reset) {
		t.Fatalf("expected colored prefix, got %q", out)
	}
}

func TestLogger_Logf_OmitField(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", OmitPath: true}
	l.Logf("data/water.csv", "x")

	out := buf.String()
	if out != "X: x\n" {
		t.Fatalf("output = %q, want %q", out, "X: x\\n")
	}
}

func TestLogger_Logf_NilReceiver_NoPanic(t *testing.T) {
	var l *Logger
	l.Logf("data/water.csv", "x")
}
