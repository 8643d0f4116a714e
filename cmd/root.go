package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clubcompass",
	Short: "Find the student club that fits you",
	Long:  "Club Compass is a terminal client for discovering campus clubs: take the matching quiz, browse the catalog, bookmark and compare clubs, and ask seniors on the Q&A board.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Backend base URL (overrides CLUBCOMPASS_API_URL)")
	rootCmd.PersistentFlags().String("db", "", "Path to the local cache database (overrides CLUBCOMPASS_DB)")
	rootCmd.PersistentFlags().String("log", "", "Write a debug log to this file (overrides CLUBCOMPASS_LOG)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(clubsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
