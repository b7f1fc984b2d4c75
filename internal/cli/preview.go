package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/preview"
)

// previewCommand creates the preview command for interactive HTML output.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "preview [network.json]",
		Short: "Write an interactive HTML view of a network",
		Long: `Write an interactive HTML view of a network using Apache ECharts.

The preview shows nodes at their stored positions, directed edges, and
community coloring when labels are present. It is a structural check, not
a strategy render; use 'render' for the actual edge drawings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], output, title)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.html)")
	cmd.Flags().StringVar(&title, "title", "", "page title")

	return cmd
}

func (c *CLI) runPreview(input, output, title string) error {
	track := newProgress(c.Logger)

	n, err := network.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load network %s: %w", input, err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := preview.Render(n, f, preview.Options{Title: title}); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	track.done("preview rendered")

	printSuccess("Preview written")
	printFile(output)
	return nil
}
