package cmd

import (
	"context"
	"fmt"
	"strings"

	"geotutor/internal/profile"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner-id>",
	Short: "Show a learner's mastery and answer history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		profilesPath, err := resolveProfilesPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve profiles path: %w", err)
		}

		profiles := profile.NewStore(profilesPath).Load()
		p, ok := profiles[learnerID]
		if !ok {
			return fmt.Errorf("no profile for learner %q", learnerID)
		}

		fmt.Printf("Learner:     %s\n", learnerID)
		fmt.Printf("Mastery:     %.3f\n", p.Mastery)
		fmt.Printf("Difficulty:  %s\n", p.Difficulty)
		fmt.Printf("Attempts:    %d\n", p.Attempts)
		fmt.Printf("Correct:     %d\n", p.Correct)
		if p.Attempts > 0 {
			fmt.Printf("Accuracy:    %.0f%%\n", 100*float64(p.Correct)/float64(p.Attempts))
		}
		fmt.Printf("Last login:  %s\n", p.LastLogin)

		return printEventStats(cmd, learnerID)
	},
}

// printEventStats shows per-shape tallies and recent answers from the
// event log. A missing log is not an error; the profile alone is shown.
func printEventStats(cmd *cobra.Command, learnerID string) error {
	st, err := openEventStore(cmd)
	if err != nil {
		fmt.Printf("\n(no event log: %v)\n", err)
		return nil
	}
	defer st.Close()

	ctx := context.Background()
	repo := st.EventRepo()

	summary, err := repo.Summary(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("query summary: %w", err)
	}
	if summary.Attempts == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("By shape")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("%-12s  %8s  %8s\n", "Shape", "Attempts", "Correct")
	for _, shape := range []string{"Triangle", "Square", "Rectangle"} {
		tally, ok := summary.ByShape[shape]
		if !ok {
			continue
		}
		fmt.Printf("%-12s  %8d  %8d\n", shape, tally.Attempts, tally.Correct)
	}

	events, err := repo.Recent(ctx, learnerID, 10)
	if err != nil {
		return fmt.Errorf("query recent events: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent answers")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-19s  %-10s  %-7s  %9s  %9s  %s\n",
		"Time", "Shape", "Level", "Answer", "Area", "OK")
	for _, e := range events {
		ok := "✓"
		if !e.Correct {
			ok = "✗"
		}
		fmt.Printf("%-19s  %-10s  %-7s  %9.2f  %9.2f  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Shape, e.Difficulty, e.Answer, e.CorrectArea, ok)
	}
	return nil
}
