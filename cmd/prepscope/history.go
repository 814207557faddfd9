package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long:  "Prints the saved analysis entries, newest first. Corrupted records are skipped and the count is reported.",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	h, err := store.NewHistoryStore(kv).Load()
	if err != nil {
		return err
	}

	if len(h.Entries) == 0 {
		fmt.Println("No saved analyses yet. Run 'prepscope analyze' first.")
	} else {
		fmt.Printf("%-38s %-20s %-24s %s\n", "ID", "Company", "Role", "Score")
		fmt.Println(strings.Repeat("─", 92))
		for _, e := range h.Entries {
			fmt.Printf("%-38s %-20s %-24s %d/100\n",
				e.ID, truncate(orDash(e.Company), 20), truncate(orDash(e.Role), 24), e.FinalScore)
		}
		fmt.Printf("\nTotal: %d entries\n", len(h.Entries))
	}

	if h.Corrupted > 0 {
		fmt.Printf("Skipped %d corrupted record(s).\n", h.Corrupted)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	entry, ok, err := store.NewHistoryStore(kv).GetByID(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry with id %s", args[0])
	}

	printSummary(entry)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	hs := store.NewHistoryStore(kv)
	if _, ok, err := hs.GetByID(args[0]); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("no entry with id %s", args[0])
	}

	if err := hs.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
