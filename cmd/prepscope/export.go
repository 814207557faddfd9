package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/report"
	"github.com/prepscope/prepscope/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export {plan|checklist|questions|report} <id>",
	Short:     "Export an analysis as plain text",
	Long:      "Renders the 7-day plan, the round checklist, the question list, or the combined report for one entry. Writes to stdout unless -o is given.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"plan", "checklist", "questions", "report"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind, id := args[0], args[1]

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	entry, ok, err := store.NewHistoryStore(kv).GetByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry with id %s", id)
	}

	var text string
	switch kind {
	case "plan":
		text = report.PlanText(entry)
	case "checklist":
		text = report.ChecklistText(entry)
	case "questions":
		text = report.QuestionsText(entry)
	case "report":
		text = report.Text(entry)
	default:
		return fmt.Errorf("unknown export kind %q (valid: plan, checklist, questions, report)", kind)
	}

	if exportOut != "" {
		if err := os.WriteFile(exportOut, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Wrote %s\n", exportOut)
		return nil
	}

	fmt.Println(text)
	return nil
}
