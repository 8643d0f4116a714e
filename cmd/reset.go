package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the local cache (credential and last result)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st := openStore(cfg)
		if st == nil {
			return fmt.Errorf("local cache not available")
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.ClearCredential(ctx); err != nil {
			return fmt.Errorf("clear credential: %w", err)
		}
		if err := st.ClearResult(ctx); err != nil {
			return fmt.Errorf("clear result: %w", err)
		}

		fmt.Println("Local cache cleared.")
		return nil
	},
}
