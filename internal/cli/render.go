package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

// renderCommand creates the render command for drawing network edges.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		weightsCSV string
		theme      string
		noCache    bool
		withLayout bool
		engine     string
		opts       pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [network.json]",
		Short: "Render a network's edges with a strategy",
		Long: `Render a network's edges to SVG, PNG, or HTML.

The input is a network JSON document: nodes with positions (and optional
community labels), directed edges with optional weights and curved
geometries. The --strategy flag picks how edges are drawn:

  plain               uniform color and width (default)
  weighted            equal-width weight bins colored dark to light
  community-gradient  gradients between endpoint community colors
  origin-destination  a gradient from every edge's origin to destination

Layout and render results are cached locally for faster repeat runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if weightsCSV != "" {
				values, err := parseWeightValues(weightsCSV)
				if err != nil {
					return err
				}
				opts.WeightValues = values
			}
			if theme != "" {
				t, err := loadTheme(theme)
				if err != nil {
					return err
				}
				t.apply(&opts)
			}
			if withLayout {
				opts.Engine = engine
			}
			// No strategy on an interactive terminal: let the user pick.
			if opts.Strategy == "" && isatty.IsTerminal(os.Stdout.Fd()) {
				strategy, err := runPicker(NewStrategyPickModel())
				if err != nil {
					return err
				}
				opts.Strategy = strategy
			}
			return c.runRender(cmd.Context(), args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, html (comma-separated)")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "edge strategy: plain (default), weighted, community-gradient, origin-destination")
	cmd.Flags().StringVarP(&opts.WeightsProperty, "weights", "w", "", "edge property to bin by (weighted); 'betweenness' is computed when absent")
	cmd.Flags().StringVar(&weightsCSV, "weight-values", "", "explicit per-edge weights, comma-separated (weighted)")
	cmd.Flags().IntVarP(&opts.Bins, "bins", "k", 0, "number of weight bins (weighted, default 5)")
	cmd.Flags().IntVarP(&opts.SamplePoints, "points", "n", 0, "gradient samples per straight edge (origin-destination, default 30)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "uniform or ramp base color")
	cmd.Flags().StringVar(&opts.Palette, "palette", "", "palette: viridis, plasma, magma, inferno, tab10, or a theme palette")
	cmd.Flags().StringVar(&opts.SourceColor, "source-color", "", "gradient origin color (origin-destination)")
	cmd.Flags().StringVar(&opts.TargetColor, "target-color", "", "gradient destination color (origin-destination)")
	cmd.Flags().StringVar(&opts.LineStyle, "line-style", "", "line style: solid (default), dashed, dotted")
	cmd.Flags().Float64Var(&opts.LineWidth, "line-width", 0, "stroke width")
	cmd.Flags().Float64Var(&opts.Alpha, "alpha", 0, "stroke opacity in [0, 1]")
	cmd.Flags().Float64Var(&opts.WeightScale, "weight-scale", 0, "widen gradient strokes by weight")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "viewport width in pixels (default 800)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "viewport height in pixels (default 600)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color")
	cmd.Flags().StringVar(&theme, "theme", "", "TOML theme file with style defaults and custom palettes")
	cmd.Flags().BoolVar(&withLayout, "layout", false, "assign positions via Graphviz before rendering")
	cmd.Flags().StringVar(&engine, "engine", pipeline.DefaultEngine, "Graphviz engine for --layout: dot, neato, sfdp, circo")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached layouts and artifacts")

	return cmd
}

// runRender loads the document and executes the pipeline.
func (c *CLI) runRender(ctx context.Context, input, output string, noCache bool, opts pipeline.Options) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := network.UnmarshalDocument(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering edges...")
	spinner.Start()

	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, output, input)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes rendered outputs, deriving file names from the
// output or input path. Returns the written paths.
func writeArtifacts(artifacts map[string][]byte, output, input string) ([]string, error) {
	if len(artifacts) == 1 && output != "" {
		for _, data := range artifacts {
			if err := os.WriteFile(output, data, 0644); err != nil {
				return nil, err
			}
		}
		return []string{output}, nil
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(artifacts))
	for format, data := range artifacts {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// parseWeightValues parses the --weight-values flag.
func parseWeightValues(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}
