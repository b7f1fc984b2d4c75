package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/edgeviz/edgeviz/pkg/pipeline"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// Theme is a user style file in TOML. The [style] table carries default
// render options; [palettes.<name>] tables register custom palettes.
//
//	[style]
//	strategy = "weighted"
//	palette = "dusk"
//	alpha = 0.8
//
//	[palettes.dusk]
//	colors = ["#2b1b3d", "#6b4e8e", "#c98ca7", "#ffd9b8"]
type Theme struct {
	Style    ThemeStyle              `toml:"style"`
	Palettes map[string]ThemePalette `toml:"palettes"`
}

// ThemeStyle mirrors the style surface of pipeline.Options.
type ThemeStyle struct {
	Strategy     string  `toml:"strategy"`
	Palette      string  `toml:"palette"`
	Color        string  `toml:"color"`
	SourceColor  string  `toml:"source_color"`
	TargetColor  string  `toml:"target_color"`
	LineStyle    string  `toml:"line_style"`
	LineWidth    float64 `toml:"line_width"`
	Alpha        float64 `toml:"alpha"`
	WeightScale  float64 `toml:"weight_scale"`
	Background   string  `toml:"background"`
	Bins         int     `toml:"bins"`
	SamplePoints int     `toml:"sample_points"`
}

// ThemePalette defines a custom palette.
type ThemePalette struct {
	Colors      []string `toml:"colors"`
	Categorical bool     `toml:"categorical"`
}

// loadTheme reads a theme file and registers its palettes.
func loadTheme(path string) (*Theme, error) {
	var t Theme
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	for name, p := range t.Palettes {
		if err := palette.Register(name, p.Colors, p.Categorical); err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
	}
	return &t, nil
}

// apply fills unset pipeline options from the theme. Command-line flags
// win over theme values.
func (t *Theme) apply(opts *pipeline.Options) {
	s := t.Style
	if opts.Strategy == "" {
		opts.Strategy = s.Strategy
	}
	if opts.Palette == "" {
		opts.Palette = s.Palette
	}
	if opts.Color == "" {
		opts.Color = s.Color
	}
	if opts.SourceColor == "" {
		opts.SourceColor = s.SourceColor
	}
	if opts.TargetColor == "" {
		opts.TargetColor = s.TargetColor
	}
	if opts.LineStyle == "" {
		opts.LineStyle = s.LineStyle
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = s.LineWidth
	}
	if opts.Alpha == 0 {
		opts.Alpha = s.Alpha
	}
	if opts.WeightScale == 0 {
		opts.WeightScale = s.WeightScale
	}
	if opts.Background == "" {
		opts.Background = s.Background
	}
	if opts.Bins == 0 {
		opts.Bins = s.Bins
	}
	if opts.SamplePoints == 0 {
		opts.SamplePoints = s.SamplePoints
	}
}
