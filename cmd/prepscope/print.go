package main

import (
	"fmt"
	"strings"

	"github.com/prepscope/prepscope/internal/model"
)

// printSummary writes a human-readable overview of one entry to stdout.
func printSummary(entry model.AnalysisEntry) {
	fmt.Printf("Entry %s\n", entry.ID)
	if entry.Company != "" || entry.Role != "" {
		fmt.Printf("%s — %s\n", orDash(entry.Company), orDash(entry.Role))
	}
	fmt.Printf("Readiness: %d/100 (base %d)\n\n", entry.FinalScore, entry.BaseScore)

	fmt.Println("Skills:")
	for _, cat := range entry.ExtractedSkills {
		fmt.Printf("  %-14s %s\n", cat.Name+":", strings.Join(cat.Skills, ", "))
	}

	if intel := entry.CompanyIntel; intel != nil {
		fmt.Printf("\nCompany intel: %s · %s · %s\n", intel.Name, intel.SizeLabel, intel.Industry)
		fmt.Println("Predicted rounds:")
		for _, r := range intel.Rounds {
			fmt.Printf("  %s: %s\n", r.Round, r.Title)
		}
	}

	fmt.Printf("\nUse 'prepscope export report %s' for the full report.\n", entry.ID)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
