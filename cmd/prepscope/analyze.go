package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/store"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description",
	Long:  "Reads a JD from --jd-file (or stdin), runs the readiness analysis, saves the entry to history, and prints a summary.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "company name (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "role title (optional)")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd-file", "", "path to a file with the JD text (default: read stdin)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	var jdText string
	if analyzeJDFile != "" {
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return fmt.Errorf("read JD file: %w", err)
		}
		jdText = string(data)
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read JD from stdin: %w", err)
		}
		jdText = string(data)
	}

	if len(strings.TrimSpace(jdText)) > 0 && len(jdText) < cfg.Analyze.ShortJDWarning {
		logger.Warn("JD text is very short, results may be generic",
			"length", len(jdText), "threshold", cfg.Analyze.ShortJDWarning)
	}

	wf, err := buildWorkflow(cfg)
	if err != nil {
		return err
	}

	entry, err := wf.Analyze(analyzeCompany, analyzeRole, jdText)
	if err != nil {
		return err
	}

	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := store.NewHistoryStore(kv).Save(entry); err != nil {
		return err
	}
	logger.Debug("entry saved", "id", entry.ID)

	printSummary(entry)
	return nil
}
