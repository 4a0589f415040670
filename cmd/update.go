package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"geotutor/internal/selfupdate"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{
			Version: version,
		})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; install a release build to use update checks.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}

		fmt.Printf("New version available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
		fmt.Printf("Release notes: %s\n", result.ReleaseURL)
		return nil
	},
}
