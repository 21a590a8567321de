package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnlab",
	Short: "Learning assessment and flashcard study",
	Long: "learnlab grades the age-banded learning assessment, stores the resulting\n" +
		"learning profile, and runs flashcard study sessions from the course catalog.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/learnlab/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LEARNLAB_LOG_LEVEL)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
