package cmd

import (
	"geotutor/internal/profile"
	"geotutor/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geotutor",
	Short: "Adaptive geometry area tutor",
	Long:  "GeoTutor — terminal tutor that adapts area problems for triangles, squares, and rectangles to each learner's mastery.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("profiles", "", "Path to the learner profile file (overrides GEOTUTOR_PROFILES env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log file (overrides GEOTUTOR_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveProfilesPath returns the profile file path using --profiles
// (highest priority), then GEOTUTOR_PROFILES, then the default XDG path.
func resolveProfilesPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("profiles"); p != "" {
		return p, store.EnsureDir(p)
	}
	return profile.DefaultPath()
}

// resolveDBPath returns the event log path using --db (highest
// priority), then GEOTUTOR_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
