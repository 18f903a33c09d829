package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulachik/viralkit/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms and their conventions",
	RunE:  runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, spec := range platform.All() {
		fmt.Fprintf(out, "%s\n", spec.Platform)
		fmt.Fprintf(out, "  Character limit: %d\n", spec.CharLimit)
		fmt.Fprintf(out, "  Hashtags: %s\n", spec.HashtagStrategy)
		fmt.Fprintf(out, "  Best practices: %s\n", spec.BestPractices)
		fmt.Fprintln(out)
	}
	return nil
}
