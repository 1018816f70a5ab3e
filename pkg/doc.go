// Package pkg provides the core libraries for Gridarb layout arbitration.
//
// # Overview
//
// Gridarb arbitrates grid-based dashboard layouts: panels live on a column
// grid, and the engine decides where everything settles when panels are
// moved, dropped, compacted, or clipped. The pkg directory is organized
// into three main areas:
//
//  1. [grid] - The arrangement engine (collision, compaction, bounds, moves)
//  2. [layoutio] - Layout serialization (JSON documents, TOML manifests)
//  3. [httpapi] - The stateless HTTP arbitration service
//
// # Architecture
//
// The typical data flow through Gridarb:
//
//	Layout file / HTTP request
//	         ↓
//	    [layoutio] package (decode + validate)
//	         ↓
//	    [grid] package (move, compact, clip)
//	         ↓
//	    [grid/drop] package (drag-drop placement)
//	         ↓
//	    JSON output / ASCII preview
//
// # Quick Start
//
// Move a panel and settle the layout:
//
//	import "github.com/openlayout/gridarb/pkg/grid"
//
//	l := grid.Layout{
//	    {ID: "chart", X: 0, Y: 0, W: 6, H: 4},
//	    {ID: "table", X: 0, Y: 4, W: 6, H: 4},
//	}
//	l = grid.MoveElement(l, "table", grid.At(0, 0), true, false)
//	l = grid.Compact(l, true)
//
// # Main Packages
//
// [grid] - The arrangement engine. Items are half-open rectangles on a
// column grid; operations are pure and return arbitrated copies. Includes
// collision testing, vertical compaction, bounds correction, and the
// cascading move resolver.
//
// [grid/drop] - Drag-drop placement: classifies a pointer position over the
// layout into a placement decision (swap with the target, or split it and
// take half) and applies that decision.
//
// [layoutio] - Layout documents as JSON and dashboard manifests as TOML,
// plus the wire types shared with the HTTP API.
//
// [store] - Named layout snapshots persisted in the user config directory.
//
// [render/ascii] - Terminal previews of a layout grid, used by the CLI's
// render command and the interactive TUI.
//
// [httpapi] - The stateless HTTP arbitration service: every request carries
// a full layout and every response returns the arbitrated result.
//
// [errors] - Structured errors with stable codes, shared by the CLI and
// the HTTP API for exit codes and status mapping.
//
// [observability] - Hook interfaces for instrumenting arbitration and API
// requests without coupling the engine to a metrics backend.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/grid/...     # Engine only
//	go test -run Example       # Examples only
//
// [grid]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/grid
// [grid/drop]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/grid/drop
// [layoutio]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/layoutio
// [store]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/store
// [render/ascii]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/render/ascii
// [httpapi]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/httpapi
// [errors]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/errors
// [observability]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/observability
package pkg
