// Package session is a reference host loop around the maze core: it owns the
// current grid, paces carving step by step, hands every step and the final path
// to a Renderer, and rebuilds the maze when the size changes.
//
// What:
//
//   - Generate carves the current grid from a random start cell, rendering each
//     step and sleeping StepDelay between steps.
//   - Solve finds the path from the top-left to the bottom-right corner.
//   - Navigate walks a path one cell per StepDelay, like an animated marker.
//   - Resize cancels any in-flight run and swaps in a fresh grid. The cancelled
//     run keeps its own (now discarded) grid until it notices, so two runs never
//     share a grid.
//   - Elapsed/FormatElapsed report the wall-clock time of the current maze as
//     HH:MM:SS.
//
// Every grid gets a RunID (uuid) that tags its log entries.
//
// Logging:
//
//	Lifecycle events are logged through a logrus.FieldLogger with run_id, size
//	and counters as fields. The algorithm packages themselves never log.
//
// Errors:
//
//   - ErrBusy:            Generate or Solve while a generation is running.
//   - ErrOptionViolation: invalid Option (e.g. negative StepDelay).
//   - grid.ErrInvalidSize, grid.ErrSizeTooLarge from New or Resize.
package session
