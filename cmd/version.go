package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scribedocs/scribe/internal/version"
)

var versionFormat string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for scribe including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  scribe version               # Show short version
  scribe version --format json # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()

	if versionFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}

	fmt.Printf("scribe %s\n", info.Version)
	fmt.Printf("  commit:   %s\n", info.GitCommit)
	if !info.BuildTime.IsZero() {
		fmt.Printf("  built:    %s\n", info.BuildTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Printf("  go:       %s\n", info.GoVersion)
	fmt.Printf("  platform: %s\n", info.Platform)
	return nil
}
