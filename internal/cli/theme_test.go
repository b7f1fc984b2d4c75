package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/pipeline"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestLoadThemeAppliesStyle(t *testing.T) {
	path := writeTheme(t, `
[style]
strategy = "weighted"
palette = "viridis"
alpha = 0.8
bins = 7
`)
	theme, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme() error = %v", err)
	}

	var opts pipeline.Options
	theme.apply(&opts)
	if opts.Strategy != "weighted" || opts.Palette != "viridis" {
		t.Errorf("applied strategy/palette = %q/%q", opts.Strategy, opts.Palette)
	}
	if opts.Alpha != 0.8 || opts.Bins != 7 {
		t.Errorf("applied alpha/bins = %v/%d", opts.Alpha, opts.Bins)
	}
}

func TestThemeFlagsWinOverTheme(t *testing.T) {
	path := writeTheme(t, `
[style]
strategy = "weighted"
color = "#111111"
`)
	theme, err := loadTheme(path)
	if err != nil {
		t.Fatalf("loadTheme() error = %v", err)
	}

	opts := pipeline.Options{Strategy: "plain"}
	theme.apply(&opts)
	if opts.Strategy != "plain" {
		t.Errorf("flag value overwritten: %q", opts.Strategy)
	}
	if opts.Color != "#111111" {
		t.Errorf("unset option not filled: %q", opts.Color)
	}
}

func TestLoadThemeRegistersPalettes(t *testing.T) {
	path := writeTheme(t, `
[palettes.dusk]
colors = ["#2b1b3d", "#ffd9b8"]
`)
	if _, err := loadTheme(path); err != nil {
		t.Fatalf("loadTheme() error = %v", err)
	}
	colors, err := palette.Colors("dusk", 4)
	if err != nil {
		t.Fatalf("registered palette unusable: %v", err)
	}
	if len(colors) != 4 {
		t.Errorf("sampled %d colors, want 4", len(colors))
	}
}

func TestLoadThemeRejectsBadPalette(t *testing.T) {
	path := writeTheme(t, `
[palettes.bad]
colors = ["notacolor"]
`)
	if _, err := loadTheme(path); err == nil {
		t.Error("expected error for malformed palette color")
	}
}
