// Package render provides edge visualization for spatial networks.
//
// # Overview
//
// The subpackages split the rendering concern:
//
//   - [edges] - The four edge strategies: plain, weighted, community
//     gradients, and origin-destination gradients. Strategies follow a
//     two-phase contract: PrepareData derives state, Render draws it.
//   - [canvas] - Drawing surfaces. SVG and PNG backends accept uniform line
//     batches (DrawLines) and gradient batches (DrawGradient) through one
//     interface.
//   - [curves] - Colored curve collections: per-curve color interpolation
//     for gradient strategies.
//   - [palette] - Built-in and user-registered color palettes, hex
//     parsing, and dark-to-light ramps.
//   - [preview] - Interactive HTML preview via Apache ECharts.
//
// [edges]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render/edges
// [canvas]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render/canvas
// [curves]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render/curves
// [palette]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render/palette
// [preview]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render/preview
package render
