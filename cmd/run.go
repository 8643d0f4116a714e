package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clubcompass/clubcompass/internal/api"
	"github.com/clubcompass/clubcompass/internal/app"
	"github.com/clubcompass/clubcompass/internal/config"
	"github.com/clubcompass/clubcompass/internal/logging"
	"github.com/clubcompass/clubcompass/internal/store"
)

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("log"); v != "" {
		cfg.LogFile = v
	}
	return cfg, cfg.Validate()
}

// openStore opens the local cache. A broken cache degrades the app, it
// does not stop it, so failures come back as nil.
func openStore(cfg config.Config) *store.Store {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Local cache unavailable:", err)
			return nil
		}
	} else if err := store.EnsureDir(path); err != nil {
		fmt.Fprintln(os.Stderr, "Local cache unavailable:", err)
		return nil
	}

	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Local cache unavailable:", err)
		return nil
	}
	return st
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, startQuiz bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		if err := logging.Setup(cfg.LogFile); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
	}

	client := api.New(cfg)
	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	return app.Run(app.Options{
		Config:    cfg,
		Client:    client,
		Store:     st,
		StartQuiz: startQuiz,
	})
}
