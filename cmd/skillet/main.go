package main

import (
	"fmt"
	"os"

	"github.com/skillhouse/skillet/pkg/logger"
	"github.com/skillhouse/skillet/pkg/presenter"
	"github.com/skillhouse/skillet/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "Discover and compile agent skills",
	Long: `Skillet discovers skill bundles (directories containing a SKILL.md file
with YAML frontmatter), prioritizes them across project and user search
roots, and compiles them into prompt-ready output for coding agents.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := viper.GetString("log_level")
		if err := logger.SetLogLevel(level); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, keeping current level", level))
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLET")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillet")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "fmt")
	viper.SetDefault("skills.catalog_budget", skills.DefaultCatalogBudget)
}

func bindFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	bindFlags(rootCmd.PersistentFlags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
