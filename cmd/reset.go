package cmd

import (
	"fmt"
	"time"

	"geotutor/internal/profile"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner-id>",
	Short: "Reset a learner's profile to defaults",
	Long: `Reset a learner's mastery, difficulty, and counters to their
starting values. The learner's record is kept, not deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		profilesPath, err := resolveProfilesPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve profiles path: %w", err)
		}

		store := profile.NewStore(profilesPath)
		profiles := store.Load()
		if _, ok := profiles[learnerID]; !ok {
			return fmt.Errorf("no profile for learner %q", learnerID)
		}

		profiles[learnerID] = profile.NewProfile(time.Now())
		if err := store.Save(profiles); err != nil {
			return fmt.Errorf("save profiles: %w", err)
		}

		fmt.Printf("Profile for %q reset to defaults.\n", learnerID)
		return nil
	},
}
