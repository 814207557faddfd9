package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/store"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id> <skill>",
	Short: "Toggle skill confidence on an entry",
	Long:  "Flips one skill between 'practice' and 'know', recomputes the readiness score, and persists the entry.",
	Args:  cobra.ExactArgs(2),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, skill := args[0], args[1]

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
	entry, ok, err := hs.GetByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry with id %s", id)
	}
	if !entry.ExtractedSkills.HasSkill(skill) {
		return fmt.Errorf("skill %q is not part of entry %s", skill, id)
	}

	wf, err := buildWorkflow(cfg)
	if err != nil {
		return err
	}

	updated := wf.ToggleConfidence(entry, skill)
	if err := hs.Update(updated); err != nil {
		return err
	}

	fmt.Printf("%s → %s · readiness %d/100 (was %d)\n",
		skill, updated.SkillConfidenceMap[skill], updated.FinalScore, entry.FinalScore)
	return nil
}
