package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QinisoNst/water-q/internal/dataset"
)

const testHeader = "ph,Hardness,Solids,Chloramines,Sulfate,Conductivity,Organic_carbon,Trihalomethanes,Turbidity,Potability"

// loadTestDataset writes a small CSV and loads it through the real loader so
// UI tests exercise the same Dataset the commands hand them.
func loadTestDataset(t *testing.T, lines ...string) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "water.csv")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	res := dataset.NewLoader().Load(path)
	if res.Failed() {
		t.Fatalf("load failed: %v", res.Err)
	}
	return res.Dataset
}

func testRow(ph, label string) string {
	return ph + ",200,20000,7,330,400,14,66,4," + label
}

func TestSummaryUI_PrintReport(t *testing.T) {
	d := loadTestDataset(t,
		testHeader,
		testRow("7.0", "1"),
		testRow("", "0"),
		testRow("9.0", "1"),
	)

	tests := []struct {
		name  string
		quiet bool
		head  int
		want  []string // Strings that should appear in output
	}{
		{
			name:  "full report",
			quiet: false,
			head:  2,
			want: []string{
				"Water Quality Dataset Report",
				"Dataset",
				"Rows",
				"Sample Records",
				"Missing Values (before imputation)",
				"filled with median 8.000",
				"Basic Statistics",
				"Potability",
				"Not Potable",
				"33.3%",
				"66.7%",
			},
		},
		{
			name:  "full report without sample records",
			quiet: false,
			head:  0,
			want:  []string{"Water Quality Dataset Report", "Basic Statistics"},
		},
		{
			name:  "quiet report",
			quiet: true,
			head:  5,
			want: []string{
				"rows: 3",
				"columns: " + testHeader,
				"ph: missing=1",
				"potability: not_potable=1 potable=2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sui := NewSummaryUI(&buf, tt.quiet)
			sui.PrintReport(d, tt.head)

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q\noutput:\n%s", w, out)
				}
			}
			if tt.head == 0 && strings.Contains(out, "Sample Records") {
				t.Errorf("head=0 output still shows sample records")
			}
		})
	}
}

func TestSummaryUI_PrintReportNoLabel(t *testing.T) {
	noLabel := strings.TrimSuffix(testHeader, ",Potability")
	d := loadTestDataset(t,
		noLabel,
		"7,200,20000,7,330,400,14,66,4",
	)

	var buf bytes.Buffer
	NewSummaryUI(&buf, false).PrintReport(d, 0)
	if !strings.Contains(buf.String(), "No 'Potability' column found in dataset.") {
		t.Errorf("missing-label warning absent:\n%s", buf.String())
	}

	buf.Reset()
	NewSummaryUI(&buf, true).PrintReport(d, 0)
	if !strings.Contains(buf.String(), "potability: (no label column)") {
		t.Errorf("quiet missing-label line absent:\n%s", buf.String())
	}
}

func TestSummaryUI_PrintLoadFailure(t *testing.T) {
	err := errors.New("file not found: /tmp/missing.csv")

	var buf bytes.Buffer
	NewSummaryUI(&buf, true).PrintLoadFailure(err)
	if got := buf.String(); got != "load failed: file not found: /tmp/missing.csv\n" {
		t.Errorf("quiet failure output = %q", got)
	}

	buf.Reset()
	NewSummaryUI(&buf, false).PrintLoadFailure(err)
	out := buf.String()
	if !strings.Contains(out, "No data available.") || !strings.Contains(out, "/tmp/missing.csv") {
		t.Errorf("failure box output missing pieces:\n%s", out)
	}
}
