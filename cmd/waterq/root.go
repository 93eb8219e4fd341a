package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/QinisoNst/water-q/internal/dataset"
	"github.com/QinisoNst/water-q/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "waterq",
	Short: "Exploratory dashboard over a water potability dataset",
	Long:  longDescription,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var cfgFile string
var version string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.waterq.yaml or ./config/defaults.yaml)")

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	// Add subcommands
	rootCmd.AddCommand(exploreCmd, summaryCmd, checkCmd)
}

func initConfig() {
	// Enable environment variable support (e.g., WATERQ_DATA_PATH overrides
	// the dataset location): data.path -> WATERQ_DATA_PATH.
	viper.SetEnvPrefix("WATERQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		viper.AddConfigPath("./config")

		// Try .waterq first, then fall back to defaults.yaml
		viper.SetConfigName(".waterq")
	}

	err := viper.ReadInConfig()

	notFound := &viper.ConfigFileNotFoundError{}
	if cfgFile == "" && err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil && errors.As(err, notFound):
		// The config file is optional, we shouldn't exit when it is missing
	default:
		configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, configMsg)
	}
}

// dataPath resolves the effective dataset path: the command's --data flag,
// then the config file / environment, then the built-in default.
func dataPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := viper.GetString("data.path"); p != "" {
		return p
	}
	return dataset.DefaultPath
}

const longDescription = "Exploratory dashboard over a static water potability dataset. " +
	"Loads the CSV, fills missing measurements with per-column medians, and renders " +
	"overview tables, trend and distribution charts, and the potability breakdown in the terminal."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}
