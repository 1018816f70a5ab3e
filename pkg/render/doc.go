// Package render groups the layout preview renderers.
//
// # Overview
//
// Renderers turn an arbitrated layout into something a person can look at.
// Today that is the terminal:
//
//   - [ascii]: character-grid previews with optional lipgloss styling,
//     used by the CLI render command and the interactive TUI
//
// Renderers never mutate the layout they are given; they read geometry and
// paint. Anything that needs to change the arrangement belongs in the grid
// package.
//
// [ascii]: https://pkg.go.dev/github.com/openlayout/gridarb/pkg/render/ascii
package render
