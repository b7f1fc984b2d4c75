package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

// layoutCommand creates the layout command for assigning node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{Engine: pipeline.DefaultEngine}

	cmd := &cobra.Command{
		Use:   "layout [network.json]",
		Short: "Assign node positions via Graphviz",
		Long: `Assign node positions to a network via a Graphviz layout engine.

The layout command takes a network document whose positions are missing or
unsatisfying and writes a copy with engine-computed coordinates. Straight
edge geometries follow the new positions; explicit curves are kept.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", opts.Engine, "Graphviz engine: dot, neato, sfdp (default), circo")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the layout cache")

	return cmd
}

// runLayout loads the network, assigns positions, and writes the result.
func (c *CLI) runLayout(ctx context.Context, input, output string, noCache bool, opts pipeline.Options) error {
	n, err := network.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load network %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Engine))
	spinner.Start()

	cacheHit, err := runner.AssignPositionsWithCacheInfo(ctx, n, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := network.WriteFile(n, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(n.NodeCount(), n.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
