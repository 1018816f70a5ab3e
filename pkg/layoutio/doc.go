// Package layoutio reads and writes grid layouts.
//
// Two formats are supported:
//
//   - JSON layout snapshots, the canonical interchange format used by the
//     CLI and the HTTP API. Round-trips losslessly: import → transform →
//     export → re-import produces identical results.
//   - TOML dashboard manifests, the hand-written configuration format that
//     declares a grid and its panels. Panels may omit their id, in which
//     case one is generated.
//
// Every reader validates the structural invariants (unique non-empty ids,
// finite non-negative geometry) before handing a layout to the caller, so
// layouts obtained from this package are safe to pass to the engine.
//
// # JSON Format
//
//	{
//	  "cols": 12,
//	  "verticalCompact": true,
//	  "items": [
//	    {"id": "cpu", "x": 0, "y": 0, "w": 6, "h": 4},
//	    {"id": "logo", "x": 10, "y": 0, "w": 2, "h": 2, "static": true}
//	  ]
//	}
//
// # Manifest Format
//
//	cols = 12
//	vertical_compact = true
//
//	[[panel]]
//	id = "cpu"
//	x = 0
//	y = 0
//	w = 6
//	h = 4
package layoutio
