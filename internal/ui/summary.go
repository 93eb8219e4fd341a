package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/stats"
)

// SummaryUI renders the dataset overview and potability breakdown to a
// writer, for scripted use outside the interactive dashboard.
type SummaryUI struct {
	writer io.Writer
	quiet  bool
}

// NewSummaryUI creates a new UI handler for the summary command
func NewSummaryUI(w io.Writer, quiet bool) *SummaryUI {
	return &SummaryUI{
		writer: w,
		quiet:  quiet,
	}
}

// PrintLoadFailure reports a failed load. The failure is not fatal: it is
// the same degraded state every dashboard page shows.
func (s *SummaryUI) PrintLoadFailure(err error) {
	if s.quiet {
		fmt.Fprintf(s.writer, "load failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.writer, WarningBox.Render(GetWarnMark()+" No data available.\n"+Dim.Render(err.Error())))
}

// PrintReport renders the full overview: shape, columns, missing counts,
// descriptive statistics and the potability split.
func (s *SummaryUI) PrintReport(d *dataset.Dataset, head int) {
	if s.quiet {
		s.printSimpleReport(d)
		return
	}

	var out strings.Builder

	out.WriteString(Success.Bold(true).Render("Water Quality Dataset Report"))
	out.WriteString("\n\n")

	out.WriteString(SectionHeader.Render("Dataset"))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("File", Secondary.Render(d.Path)))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("Load ID", Dim.Render(d.ID)))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("Rows", fmt.Sprintf("%d", d.Rows())))
	out.WriteString("\n")
	out.WriteString(FormatKeyValue("Columns", fmt.Sprintf("%d (%s)", len(d.Columns), strings.Join(d.Columns, ", "))))
	out.WriteString("\n\n")

	if head > 0 {
		out.WriteString(SectionHeader.Render("Sample Records"))
		out.WriteString("\n")
		out.WriteString(renderTable(d.Columns, d.Head(head)))
		out.WriteString("\n\n")
	}

	out.WriteString(SectionHeader.Render("Missing Values (before imputation)"))
	out.WriteString("\n")
	for _, name := range d.Parameters() {
		line := fmt.Sprintf("%-16s %5d", name, d.MissingCount(name))
		if med, ok := d.ImputedMedian(name); ok {
			line += Dim.Render(fmt.Sprintf("   filled with median %.3f", med))
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	out.WriteString("\n")

	out.WriteString(SectionHeader.Render("Basic Statistics"))
	out.WriteString("\n")
	out.WriteString(renderDescribe(d))
	out.WriteString("\n\n")

	out.WriteString(s.renderPotability(d))

	fmt.Fprintln(s.writer, HighlightBox.Render(out.String()))
}

func (s *SummaryUI) renderPotability(d *dataset.Dataset) string {
	var b strings.Builder
	b.WriteString(SectionHeader.Render("Potability"))
	b.WriteString("\n")

	counts, err := d.LabelCounts()
	if err != nil {
		b.WriteString(Warning.Render("No 'Potability' column found in dataset."))
		return b.String()
	}
	notPotable, potable := counts[0], counts[1]
	total := notPotable + potable
	b.WriteString(fmt.Sprintf("%-14s %6d %8s\n", "Not Potable", notPotable, Percent(notPotable, total)))
	b.WriteString(fmt.Sprintf("%-14s %6d %8s\n", "Potable", potable, Percent(potable, total)))
	b.WriteString(SplitBar(notPotable, potable, 40))
	return b.String()
}

// printSimpleReport is the condensed quiet-mode output: one line per fact,
// no boxes, stable for grepping.
func (s *SummaryUI) printSimpleReport(d *dataset.Dataset) {
	fmt.Fprintf(s.writer, "rows: %d\n", d.Rows())
	fmt.Fprintf(s.writer, "columns: %s\n", strings.Join(d.Columns, ","))
	for _, name := range d.Parameters() {
		values, _ := d.Column(name)
		sum := stats.Describe(values)
		fmt.Fprintf(s.writer, "%s: missing=%d mean=%.3f std=%.3f min=%.3f max=%.3f\n",
			name, d.MissingCount(name), sum.Mean, sum.Std, sum.Min, sum.Max)
	}
	counts, err := d.LabelCounts()
	if err != nil {
		fmt.Fprintln(s.writer, "potability: (no label column)")
		return
	}
	fmt.Fprintf(s.writer, "potability: not_potable=%d potable=%d\n", counts[0], counts[1])
}
