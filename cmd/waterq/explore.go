package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/QinisoNst/water-q/internal/apperr"
	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/ui"
)

var exploreData string

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Launch the interactive dashboard",
	Long: "Launch the interactive dashboard: navigate between the overview, trend, " +
		"distribution and potability pages with the sidebar. The dataset is loaded once " +
		"and cached for the whole session.",
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := dataPath(exploreData)
	loader := dataset.NewLoader()

	// Preload so a broken file is reported before the screen is taken over.
	res := loader.Load(path)
	if res.Failed() {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.GetWarnMark()+" "+res.Err.Error())

		open := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Open the dashboard without data?").
				Description("Every data page will show a warning until the file is fixed and waterq is restarted.").
				Value(&open),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return apperr.ErrCancelled
			}
			return err
		}
		if !open {
			return apperr.ErrCancelled
		}
	}

	return ui.RunDashboard(loader, path)
}

func init() {
	exploreCmd.Flags().StringVarP(&exploreData, "data", "d", "", "Path to the water potability CSV (defaults to "+dataset.DefaultPath+")")
}
