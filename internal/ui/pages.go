package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/stats"
)

// noData is the shared fallback for every data-dependent page when the load
// failed. The message carries the load error so the user can fix the file.
func (m dashboardModel) noData(context string) string {
	msg := "No data available for " + context + "."
	if m.result != nil && m.result.Err != nil {
		msg += "\n" + Dim.Render(m.result.Err.Error())
	}
	return WarningBox.Render(GetWarnMark() + " " + msg)
}

func (m dashboardModel) viewHome() string {
	var b strings.Builder
	b.WriteString(RenderGradientBanner(BannerASCII))
	b.WriteString("\n")
	b.WriteString(Subtitle.Render("Exploratory Analysis of Water Quality Parameters"))
	b.WriteString("\n\n")
	b.WriteString("This dashboard analyzes water quality data including parameters such as:\n")
	b.WriteString(GetBullet() + " pH, Hardness, Solids, Chloramines, Sulfate\n")
	b.WriteString(GetBullet() + " Conductivity, Organic Carbon, Trihalomethanes, Turbidity, Potability\n\n")
	b.WriteString(FormatKeyValue("Data file", Secondary.Render(m.path)))
	if m.hasData() {
		b.WriteString("\n")
		b.WriteString(FormatKeyValue("Samples", fmt.Sprintf("%d", m.result.Dataset.Rows())))
	}
	return b.String()
}

func (m dashboardModel) viewOverview() string {
	if !m.hasData() {
		return m.noData("the dataset overview")
	}
	d := m.result.Dataset

	var b strings.Builder
	b.WriteString(SectionHeader.Render("Sample Records"))
	b.WriteString("\n")
	end := m.headOffset + headPageSize
	if end > m.headRows() {
		end = m.headRows()
	}
	head := d.Head(end)
	if m.headOffset < len(head) {
		b.WriteString(renderTable(d.Columns, head[m.headOffset:]))
	}
	b.WriteString("\n")
	b.WriteString(Dim.Render(fmt.Sprintf("rows %d–%d of the first %d", m.headOffset+1, end, m.headRows())))
	b.WriteString("\n\n")

	b.WriteString(SectionHeader.Render("Dataset Shape"))
	b.WriteString("\n")
	b.WriteString(FormatKeyValue("Rows", fmt.Sprintf("%d", d.Rows())))
	b.WriteString("\n")
	b.WriteString(FormatKeyValue("Columns", fmt.Sprintf("%d", len(d.Columns))))
	b.WriteString("\n\n")

	b.WriteString(SectionHeader.Render("Column Names"))
	b.WriteString("\n")
	b.WriteString(strings.Join(d.Columns, ", "))
	b.WriteString("\n\n")

	b.WriteString(SectionHeader.Render("Missing Values (before imputation)"))
	b.WriteString("\n")
	for _, name := range d.Parameters() {
		count := d.MissingCount(name)
		line := fmt.Sprintf("%-16s %5d", name, count)
		if med, ok := d.ImputedMedian(name); ok {
			line += Dim.Render(fmt.Sprintf("   filled with median %.3f", med))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(SectionHeader.Render("Basic Statistics"))
	b.WriteString("\n")
	b.WriteString(renderDescribe(d))

	return b.String()
}

func (m dashboardModel) viewTrends() string {
	if !m.hasData() {
		return m.noData("trends")
	}
	name, ok := m.selectedParam()
	if !ok {
		return m.noData("trends")
	}
	d := m.result.Dataset
	values, _ := d.Column(name)

	chartW := m.contentWidth() - 34
	chart := SectionHeader.Render(name+" Trend Over Samples") + "\n\n" +
		LineChart(values, chartW, 12, name+" by sample index")
	return lipgloss.JoinHorizontal(lipgloss.Top, m.params.View(), "  ", chart)
}

func (m dashboardModel) viewDistribution() string {
	if !m.hasData() {
		return m.noData("the distribution")
	}
	name, ok := m.selectedParam()
	if !ok {
		return m.noData("the distribution")
	}
	d := m.result.Dataset
	values, _ := d.Column(name)

	bins := stats.Histogram(values, distributionBuckets)
	chart := SectionHeader.Render(name+" Distribution") + "\n\n" +
		HistogramChart(bins, 30)
	return lipgloss.JoinHorizontal(lipgloss.Top, m.params.View(), "  ", chart)
}

func (m dashboardModel) viewPotability() string {
	if !m.hasData() {
		return m.noData("the potability analysis")
	}
	d := m.result.Dataset
	counts, err := d.LabelCounts()
	if err != nil {
		return WarningBox.Render(GetWarnMark() + " No 'Potability' column found in dataset.")
	}

	notPotable := counts[0]
	potable := counts[1]
	total := notPotable + potable

	var b strings.Builder
	b.WriteString(SectionHeader.Render("Potability Counts"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-14s %6s %8s\n", "Class", "Count", "Share"))
	b.WriteString(fmt.Sprintf("%-14s %6d %8s\n", "Not Potable", notPotable, Percent(notPotable, total)))
	b.WriteString(fmt.Sprintf("%-14s %6d %8s\n", "Potable", potable, Percent(potable, total)))
	b.WriteString("\n")
	b.WriteString(SplitBar(notPotable, potable, 40))
	b.WriteString("\n")
	b.WriteString(BarFilled.Render("█") + " Not Potable " + Dim.Render(Percent(notPotable, total)) +
		"   " + BarAlt.Render("█") + " Potable " + Dim.Render(Percent(potable, total)))
	return b.String()
}

func (m dashboardModel) viewAbout() string {
	var b strings.Builder
	b.WriteString(SectionHeader.Render("About This Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(Bold.Render("Water Quality Dashboard"))
	b.WriteString("\n")
	b.WriteString("Exploratory analysis of water quality measurements over a static CSV dataset.\n\n")
	b.WriteString("Parameters included:\n")
	b.WriteString(GetBullet() + " pH, Hardness, Solids, Chloramines, Sulfate\n")
	b.WriteString(GetBullet() + " Conductivity, Organic Carbon, Trihalomethanes, Turbidity, Potability\n\n")
	b.WriteString(FormatKeyValue("Purpose", "explore parameter trends, distributions, and potability of water samples"))
	b.WriteString("\n\n")
	b.WriteString(Muted.Render("© 2026 | Water Quality Dashboard"))
	return b.String()
}

// renderTable lays out rows under a header with fixed-width cells.
func renderTable(cols []string, rows [][]string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(Bold.Render(fmt.Sprintf("%-12s", c)))
	}
	for _, row := range rows {
		b.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(fmt.Sprintf("%-12s", cell))
		}
	}
	return b.String()
}

// renderDescribe prints one describe line per numeric column.
func renderDescribe(d *dataset.Dataset) string {
	var b strings.Builder
	b.WriteString(Bold.Render(fmt.Sprintf("%-16s %6s %10s %10s %10s %10s %10s %10s %10s",
		"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")))
	for _, name := range d.Parameters() {
		values, ok := d.Column(name)
		if !ok {
			continue
		}
		s := stats.Describe(values)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-16s %6d %10.3f %10.3f %10.3f %10.3f %10.3f %10.3f %10.3f",
			name, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max))
	}
	return b.String()
}
