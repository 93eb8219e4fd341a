package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QinisoNst/water-q/internal/apperr"
	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/ui"
)

var (
	summaryData  string
	summaryQuiet bool
	summaryHead  int
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dataset overview without the interactive dashboard",
	Long: "Print the dataset overview (shape, missing values, descriptive statistics) " +
		"and the potability breakdown to stdout. A failed load degrades to a warning, " +
		"exactly like the dashboard pages.",
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	if summaryHead < 0 || summaryHead > 50 {
		return apperr.Userf("invalid --head %d (expected 0–50)", summaryHead)
	}

	path := dataPath(summaryData)
	res := dataset.NewLoader().Load(path)

	sui := ui.NewSummaryUI(cmd.OutOrStdout(), summaryQuiet)
	if res.Failed() {
		sui.PrintLoadFailure(res.Err)
		return nil
	}
	sui.PrintReport(res.Dataset, summaryHead)
	return nil
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryData, "data", "d", "", "Path to the water potability CSV (defaults to "+dataset.DefaultPath+")")
	summaryCmd.Flags().BoolVarP(&summaryQuiet, "quiet", "q", false, "Condensed one-line-per-fact output")
	summaryCmd.Flags().IntVar(&summaryHead, "head", 5, "Number of sample rows to print (0–50)")
}
