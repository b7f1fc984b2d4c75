package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "net.json", "net"},
		{"strip format ext", "out.svg", "net.json", "out"},
		{"keep other ext", "out.data", "net.json", "out.data"},
		{"plain output", "out", "net.json", "out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("svg,png"); len(got) != 2 || got[1] != "png" {
		t.Errorf("parseFormats(svg,png) = %v", got)
	}
}

func TestParseWeightValues(t *testing.T) {
	got, err := parseWeightValues("1, 2.5,4")
	if err != nil {
		t.Fatalf("parseWeightValues() error = %v", err)
	}
	want := []float64{1, 2.5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseWeightValues("1,x"); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestWriteArtifactsSingleOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom.svg")

	paths, err := writeArtifacts(map[string][]byte{"svg": []byte("<svg/>")}, out, "net.json")
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Errorf("paths = %v, want [%s]", paths, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "net.json")

	paths, err := writeArtifacts(map[string][]byte{
		"svg": []byte("<svg/>"),
		"png": []byte("png-bytes"),
	}, "", input)
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing artifact %s: %v", p, err)
		}
	}
}
