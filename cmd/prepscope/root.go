package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/config"
	"github.com/prepscope/prepscope/internal/extract"
	"github.com/prepscope/prepscope/internal/store"
	"github.com/prepscope/prepscope/internal/taxonomy"
	"github.com/prepscope/prepscope/internal/workflow"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "prepscope",
	Short: "JD analyzer — know where you stand before the interview",
	Long:  "PrepScope turns a pasted job description into a readiness profile: skill tags, a score, predicted interview rounds, a 7-day plan, and likely questions. Everything runs locally from static rules.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPSCOPE_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > PREPSCOPE_CONFIG env var > "./config.yaml".
// A missing implicit config file falls back to built-in defaults; an explicit
// --config path that cannot be read is an error.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if path == "" {
		if env := os.Getenv("PREPSCOPE_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// openKV opens the SQLite store at the configured path, creating the parent
// directory on first use.
func openKV(cfg *config.Config) (*store.SQLiteKV, error) {
	dir := filepath.Dir(cfg.Storage.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return store.NewSQLiteKV(cfg.Storage.Path)
}

// buildWorkflow constructs the analysis workflow over the configured
// taxonomy (built-in unless a taxonomy file is configured).
func buildWorkflow(cfg *config.Config) (*workflow.Workflow, error) {
	table := taxonomy.Default()
	if cfg.Taxonomy.Path != "" {
		loaded, err := taxonomy.Load(cfg.Taxonomy.Path)
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	return workflow.New(extract.New(table)), nil
}
