// Package pkg provides the core libraries for edgeviz network visualization.
//
// # Overview
//
// Edgeviz draws the edges of spatial networks — graphs whose nodes carry
// x/y positions — using pluggable rendering strategies. The pkg directory
// is organized into:
//
//   - [network] - The network model: positions, edges, weights, communities,
//     JSON serialization, and Graphviz layout.
//   - [geom] - Points, polylines, and path resampling.
//   - [render] - Edge strategies, canvas backends, gradient curves,
//     palettes, and the interactive preview.
//   - [pipeline] - Orchestration (load → layout → render) with caching,
//     shared by the CLI and the HTTP service.
//   - [cache] - Layout and artifact caches (file, Redis, null).
//   - [errors] - Error codes and validation helpers.
//   - [observability] - Optional metric/tracing hooks.
//
// # Quick Start
//
// Render a network's edges to SVG with the weighted strategy:
//
//	doc, _ := network.ReadFile("net.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(ctx, doc, pipeline.Options{
//	    Strategy: "weighted",
//	    Formats:  []string{"svg"},
//	})
//	os.WriteFile("net.svg", result.Artifacts["svg"], 0644)
//
// Or drive a strategy directly:
//
//	n, _ := network.ToNetwork(doc)
//	w := edges.NewWeighted(n, edges.WeightsFromProperty("weight"), 5)
//	if err := w.PrepareData(); err != nil { ... }
//	handles, err := w.Render(svgCanvas, edges.WithPalette("viridis"))
//
// [network]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/network
// [geom]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/geom
// [render]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/cache
// [errors]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/observability
package pkg
