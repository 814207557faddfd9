package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/checklist"
	"github.com/prepscope/prepscope/internal/store"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Walk the manual test checklist (TUI)",
	Long:  "Opens the interactive checklist of manual verification steps. Toggled state is persisted when you quit.",
	RunE:  runTests,
}

var testsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the test checklist",
	RunE:  runTestsReset,
}

func init() {
	testsCmd.AddCommand(testsResetCmd)
	rootCmd.AddCommand(testsCmd)
}

func runTests(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	cs := store.NewChecklistStore(kv)
	state, err := cs.Checked()
	if err != nil {
		return err
	}

	updated, err := checklist.Run(state)
	if err != nil {
		return err
	}
	if err := cs.SetChecked(updated); err != nil {
		return err
	}

	fmt.Printf("%d/%d tests passed\n", checklist.PassedCount(updated), len(checklist.Items))
	return nil
}

func runTestsReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := store.NewChecklistStore(kv).Reset(); err != nil {
		return err
	}
	fmt.Println("Checklist reset.")
	return nil
}
