// Package session provides options, the renderer contract and sentinel errors
// for the maze host loop.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
)

// DefaultSize is the side length used when WithSize is not given.
const DefaultSize = 10

// Sentinel errors for session operations.
var (
	// ErrBusy is returned when an operation would overlap a running generation.
	ErrBusy = errors.New("session: generation in progress")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("session: invalid option supplied")
)

// Renderer consumes grid state after every generation step and the solution path.
// Calls come from the goroutine running Generate or Solve; the grid must only be
// read, and only until the call returns.
type Renderer interface {
	RenderStep(g *grid.Grid, s generate.Step)
	RenderPath(g *grid.Grid, p grid.Path)
}

// NopRenderer discards everything.
type NopRenderer struct{}

// RenderStep does nothing.
func (NopRenderer) RenderStep(*grid.Grid, generate.Step) {}

// RenderPath does nothing.
func (NopRenderer) RenderPath(*grid.Grid, grid.Path) {}

// TextRenderer draws the grid as ASCII to W. With EveryStep it redraws after each
// advance; otherwise only the solved maze is drawn.
type TextRenderer struct {
	W         io.Writer
	EveryStep bool
}

// RenderStep draws the grid after an advance when EveryStep is set.
func (t TextRenderer) RenderStep(g *grid.Grid, s generate.Step) {
	if !t.EveryStep || s.Kind != generate.Advance {
		return
	}
	_, _ = fmt.Fprintf(t.W, "%s %v -> %v\n%s", s.Kind, s.Current, s.Next, g.String())
}

// RenderPath draws the grid with p marked.
func (t TextRenderer) RenderPath(g *grid.Grid, p grid.Path) {
	_, _ = io.WriteString(t.W, g.Render(p))
}

// Option configures a Session via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds session parameters.
type Options struct {
	// Size is the initial side length.
	Size int

	// Seed seeds the session's random stream. 0 seeds from the clock.
	Seed int64

	// StepDelay is the pause between generation steps and between Navigate moves.
	StepDelay time.Duration

	// Logger receives lifecycle events.
	Logger logrus.FieldLogger

	// Renderer observes steps and paths.
	Renderer Renderer

	// Now is the clock used for Elapsed.
	Now func() time.Time

	err error
}

// DefaultOptions returns Options with DefaultSize, a clock seed, no delay,
// the logrus standard logger, a NopRenderer and time.Now.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		Seed:      0,
		StepDelay: 0,
		Logger:    logrus.StandardLogger(),
		Renderer:  NopRenderer{},
		Now:       time.Now,
	}
}

// WithSize sets the initial side length. It is validated by grid.New.
func WithSize(n int) Option {
	return func(o *Options) {
		o.Size = n
	}
}

// WithSeed fixes the random stream so that a session replays the same mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithStepDelay sets the pacing between steps.
//
//	d > 0:  sleep d between steps
//	d == 0: run flat out
//	d < 0:  invalid option → ErrOptionViolation
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: StepDelay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.StepDelay = d
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRenderer sets the renderer. A nil renderer is ignored.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithClock replaces time.Now for Elapsed. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// FormatElapsed renders d as zero-padded HH:MM:SS, truncating sub-second parts.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
