package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/scribedocs/scribe/internal/content"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered components and discovered pages",
	Long: `Show the display components the theme registered and the Markdown
pages discovered under the content roots.

Examples:
  scribe list                      # Human-readable listing
  scribe list --format yaml        # Machine-readable YAML`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format (text, yaml)")
}

// listReport is the YAML shape of the list output.
type listReport struct {
	Components []componentEntry `yaml:"components"`
	Pages      []pageEntry      `yaml:"pages"`
}

type componentEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Origin      string `yaml:"origin"`
}

type pageEntry struct {
	Path   string `yaml:"path"`
	Title  string `yaml:"title"`
	Layout string `yaml:"layout,omitempty"`
	Draft  bool   `yaml:"draft,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, cfg, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}

	scanner := content.NewScanner(cfg.Content.Roots, cfg.Content.ExcludePatterns)
	pages, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("scanning content: %w", err)
	}

	report := listReport{}
	for _, info := range a.Components().GetAll() {
		report.Components = append(report.Components, componentEntry{
			Name:        info.Name,
			Description: info.Description,
			Origin:      info.Origin,
		})
	}
	sort.Slice(report.Components, func(i, j int) bool {
		return report.Components[i].Name < report.Components[j].Name
	})

	for _, page := range pages {
		report.Pages = append(report.Pages, pageEntry{
			Path:   page.Path,
			Title:  page.Meta.Title,
			Layout: page.Meta.Layout,
			Draft:  page.Meta.Draft,
		})
	}

	if listFormat == "yaml" {
		return yaml.NewEncoder(os.Stdout).Encode(report)
	}

	fmt.Printf("Theme: %s\n\nComponents (%d):\n", a.Theme().Name(), len(report.Components))
	for _, c := range report.Components {
		fmt.Printf("  %-10s %s (%s)\n", c.Name, c.Description, c.Origin)
	}
	fmt.Printf("\nPages (%d):\n", len(report.Pages))
	for _, p := range report.Pages {
		marker := ""
		if p.Draft {
			marker = " [draft]"
		}
		fmt.Printf("  %-40s %s%s\n", p.Path, p.Title, marker)
	}
	return nil
}
