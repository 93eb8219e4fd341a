package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/logging"
	"github.com/QinisoNst/water-q/internal/ui"
)

var (
	checkData    string
	checkVerbose bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dataset against the expected schema",
	Long: "Load the CSV, validate it against the fixed water potability schema and " +
		"report per-column status. Exits non-zero when the file cannot be loaded.",
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := dataPath(checkData)

	loader := dataset.NewLoader()
	if checkVerbose {
		loader.Log = logging.Logger{
			Writer:      os.Stderr,
			PrefixText:  "check:",
			PrefixColor: logging.FgCyan,
		}
	}

	res := loader.Load(path)
	out := cmd.OutOrStdout()

	if res.Failed() {
		fmt.Fprintln(out, ui.FormatStatus("error", res.Err.Error()))
		return fmt.Errorf("dataset check failed: %w", res.Err)
	}

	d := res.Dataset
	fmt.Fprintln(out, ui.FormatStatus("success", fmt.Sprintf("loaded %s (%d rows)", path, d.Rows())))
	for _, name := range dataset.NumericColumns {
		if count := d.MissingCount(name); count > 0 {
			med, _ := d.ImputedMedian(name)
			fmt.Fprintln(out, ui.FormatStatus("warning",
				fmt.Sprintf("%-16s %d missing value(s) imputed with median %.3f", name, count, med)))
			continue
		}
		fmt.Fprintln(out, ui.FormatStatus("success", fmt.Sprintf("%-16s complete", name)))
	}
	if d.HasLabel() {
		counts, _ := d.LabelCounts()
		fmt.Fprintln(out, ui.FormatStatus("success",
			fmt.Sprintf("%-16s %d not potable / %d potable", dataset.LabelColumn, counts[0], counts[1])))
	} else {
		fmt.Fprintln(out, ui.FormatStatus("warning",
			fmt.Sprintf("%-16s column absent; potability page will be unavailable", dataset.LabelColumn)))
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVarP(&checkData, "data", "d", "", "Path to the water potability CSV (defaults to "+dataset.DefaultPath+")")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Log load diagnostics to stderr")
}
