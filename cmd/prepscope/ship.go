package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepscope/prepscope/internal/gate"
	"github.com/prepscope/prepscope/internal/model"
	"github.com/prepscope/prepscope/internal/store"
)

var (
	shipLovable  string
	shipGithub   string
	shipDeployed string
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Show submission status",
	Long:  "Prints the milestone checklist, link validation, and whether the project counts as shipped.",
	RunE:  runShip,
}

var shipLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Save the final submission links",
	Long:  "Validates and stores the three artifact URLs. Invalid fields are reported individually and nothing is saved.",
	RunE:  runShipLinks,
}

func init() {
	shipLinksCmd.Flags().StringVar(&shipLovable, "lovable", "", "Lovable project URL")
	shipLinksCmd.Flags().StringVar(&shipGithub, "github", "", "GitHub repository URL")
	shipLinksCmd.Flags().StringVar(&shipDeployed, "deployed", "", "live deployment URL")
	shipCmd.AddCommand(shipLinksCmd)
	rootCmd.AddCommand(shipCmd)
}

func newGate(cs *store.ChecklistStore) *gate.Gate {
	return gate.New(&gate.ChecklistSource{Checked: cs.Checked})
}

func runShip(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	g := newGate(store.NewChecklistStore(kv))

	statuses, err := g.StepStatuses()
	if err != nil {
		return err
	}
	fmt.Println("Milestones:")
	for _, s := range statuses {
		mark := "✗"
		if s.Completed {
			mark = "✓"
		}
		fmt.Printf("  %s %s\n", mark, s.Label)
	}

	links, err := store.NewLinksStore(kv).Saved()
	if err != nil {
		return err
	}
	problems := g.ValidateLinks(links)
	fmt.Println("\nLinks:")
	if len(problems) == 0 {
		fmt.Println("  ✓ all three links provided and valid")
	} else {
		for field, msg := range problems {
			fmt.Printf("  ✗ %s: %s\n", field, msg)
		}
	}

	shipped, err := g.IsShipped(links)
	if err != nil {
		return err
	}
	if shipped {
		fmt.Println("\nShipped. 🎉")
		fmt.Println()
		fmt.Println(gate.SubmissionText(links))
	} else {
		fmt.Println("\nNot shipped yet.")
	}
	return nil
}

func runShipLinks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	links := model.SubmissionLinks{
		LovableLink:  shipLovable,
		GithubLink:   shipGithub,
		DeployedLink: shipDeployed,
	}

	g := newGate(store.NewChecklistStore(kv))
	if problems := g.ValidateLinks(links); len(problems) > 0 {
		for field, msg := range problems {
			fmt.Printf("%s: %s\n", field, msg)
		}
		return fmt.Errorf("links not saved: %d field(s) invalid", len(problems))
	}

	if err := store.NewLinksStore(kv).Save(links); err != nil {
		return err
	}
	fmt.Println("Links saved.")
	return nil
}
