// Package palette provides the color machinery for edge rendering: hex and
// named color parsing, dark-to-light sequential ramps, and fixed named
// palettes sampled to any number of colors.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/edgeviz/edgeviz/pkg/errors"
)

// DefaultEdgeColor is the uniform edge color used when none is given.
const DefaultEdgeColor = "#abacab"

// namedColors maps common color names to RGBA values.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xd6, 0x27, 0x28, 0xff},
	"green":   {0x2c, 0xa0, 0x2c, 0xff},
	"blue":    {0x1f, 0x77, 0xb4, 0xff},
	"orange":  {0xff, 0x7f, 0x0e, 0xff},
	"purple":  {0x94, 0x67, 0xbd, 0xff},
	"cyan":    {0x17, 0xbe, 0xcf, 0xff},
	"magenta": {0xe3, 0x77, 0xc2, 0xff},
	"yellow":  {0xbc, 0xbd, 0x22, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"grey":    {0x7f, 0x7f, 0x7f, 0xff},
}

// Parse converts a color string to RGBA. Accepted forms are hex colors
// ("#abacab", "#fff") and the named colors known to this package.
func Parse(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if err := errors.ValidateHexColor(s); err != nil {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidInput, "unknown color: %q", s)
	}
	return parseHex(s), nil
}

// parseHex decodes a validated hex string ("#rgb" or "#rrggbb").
func parseHex(s string) color.RGBA {
	hex := s[1:]
	if len(hex) == 3 {
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex formats a color as "#rrggbb", discarding alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// blend linearly interpolates between two colors; t=0 yields a, t=1 yields b.
func blend(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t + 0.5)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// darkAnchor is the near-black end of sequential dark ramps.
var darkAnchor = color.RGBA{0x26, 0x26, 0x26, 0xff}

// Dark returns a k-color sequential ramp from a dark anchor to the base
// color. Index 0 is the darkest tier. k=1 yields just the base color.
func Dark(base color.RGBA, k int) []color.RGBA {
	out := make([]color.RGBA, k)
	if k == 1 {
		out[0] = base
		return out
	}
	for i := 0; i < k; i++ {
		t := float64(i) / float64(k-1)
		out[i] = blend(darkAnchor, base, t)
	}
	return out
}

// Anchor tables for the built-in named palettes. Sequential palettes are
// resampled by interpolation; tab10 is categorical and cycles.
var builtins = map[string][]color.RGBA{
	"viridis": hexes("#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	"plasma": hexes("#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	"magma": hexes("#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"),
	"inferno": hexes("#000004", "#160b39", "#420a68", "#6a176e", "#932667",
		"#bc3754", "#dd513a", "#f37819", "#fca50a", "#f6d746"),
	"tab10": hexes("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
}

// categorical palettes assign fixed colors cyclically instead of resampling.
var categorical = map[string]bool{"tab10": true}

func hexes(values ...string) []color.RGBA {
	out := make([]color.RGBA, len(values))
	for i, v := range values {
		out[i] = parseHex(v)
	}
	return out
}

// Register adds a named palette from hex color strings, e.g. from a user
// theme. Registering an existing name replaces it. Returns an error for
// an empty anchor list or malformed colors.
func Register(name string, hexColors []string, isCategorical bool) error {
	if len(hexColors) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette %q has no colors", name)
	}
	anchors := make([]color.RGBA, len(hexColors))
	for i, h := range hexColors {
		if err := errors.ValidateHexColor(h); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q", name)
		}
		anchors[i] = parseHex(h)
	}
	builtins[name] = anchors
	if isCategorical {
		categorical[name] = true
	} else {
		delete(categorical, name)
	}
	return nil
}

// Names returns the built-in palette names, unsorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

// Colors samples n colors from the named palette. Sequential palettes are
// resampled evenly across their anchor table; categorical palettes cycle
// through their fixed entries. Returns ErrCodeInvalidPalette for unknown
// names and an error for n < 1.
func Colors(name string, n int) ([]color.RGBA, error) {
	anchors, ok := builtins[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "unknown palette: %q", name)
	}
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "palette size must be positive, got %d", n)
	}
	if categorical[name] {
		out := make([]color.RGBA, n)
		for i := range out {
			out[i] = anchors[i%len(anchors)]
		}
		return out, nil
	}
	return Sample(anchors, n), nil
}

// Sample resamples an anchor list to n colors by piecewise-linear
// interpolation. n=1 yields the first anchor.
func Sample(anchors []color.RGBA, n int) []color.RGBA {
	out := make([]color.RGBA, n)
	if n == 1 {
		out[0] = anchors[0]
		return out
	}
	last := float64(len(anchors) - 1)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * last
		lo := int(pos)
		if lo >= len(anchors)-1 {
			out[i] = anchors[len(anchors)-1]
			continue
		}
		out[i] = blend(anchors[lo], anchors[lo+1], pos-float64(lo))
	}
	return out
}

// WithAlpha returns the color with its alpha channel scaled by a in [0, 1].
// The RGB channels are left untouched (straight alpha, not premultiplied).
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
