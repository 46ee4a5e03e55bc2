package session_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/session"
)

// recorder counts rendered steps and keeps rendered paths. first is closed on the
// first step when set.
type recorder struct {
	mu    sync.Mutex
	steps int
	paths []grid.Path
	first chan struct{}
	once  sync.Once
}

func (r *recorder) RenderStep(*grid.Grid, generate.Step) {
	r.mu.Lock()
	r.steps++
	r.mu.Unlock()
	if r.first != nil {
		r.once.Do(func() { close(r.first) })
	}
}

func (r *recorder) RenderPath(_ *grid.Grid, p grid.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, p)
}

func (r *recorder) stepCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.steps
}

// messages returns the logged messages in order.
func messages(h *test.Hook) []string {
	var out []string
	for _, e := range h.AllEntries() {
		out = append(out, e.Message)
	}
	return out
}

func TestNew_Options(t *testing.T) {
	logger, _ := test.NewNullLogger()

	s, err := session.New(session.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, session.DefaultSize, s.Size())
	assert.NotEqual(t, uuid.Nil, s.RunID())
	assert.Zero(t, s.Grid().VisitedCount())
	assert.Zero(t, s.Elapsed())

	_, err = session.New(session.WithSize(0))
	require.ErrorIs(t, err, grid.ErrInvalidSize)

	_, err = session.New(session.WithSize(grid.MaxSize + 1))
	require.ErrorIs(t, err, grid.ErrSizeTooLarge)

	_, err = session.New(session.WithStepDelay(-time.Millisecond))
	require.ErrorIs(t, err, session.ErrOptionViolation)
}

// TestLifecycle generates, solves and navigates one maze end to end.
func TestLifecycle(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := &recorder{}
	s, err := session.New(
		session.WithSize(8),
		session.WithSeed(11),
		session.WithLogger(logger),
		session.WithRenderer(rec),
	)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := s.Generate(ctx)
	require.NoError(t, err)
	require.True(t, res.Completed)
	require.False(t, res.Cancelled)
	assert.Equal(t, 2*64-1, res.Steps)
	assert.Equal(t, 64, res.Visited)
	assert.Equal(t, res.Steps, rec.stepCount())
	require.NoError(t, s.Grid().Verify())
	assert.False(t, s.Running())

	p, found, err := s.Solve(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, p.Validate(s.Grid()))
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, p.Start())
	assert.Equal(t, grid.Coord{Row: 7, Col: 7}, p.End())
	require.Len(t, rec.paths, 1)
	assert.Equal(t, p, rec.paths[0])

	var walked grid.Path
	n := s.Navigate(ctx, p, func(i int, c grid.Coord) {
		assert.Equal(t, len(walked), i)
		walked = append(walked, c)
	})
	assert.Equal(t, len(p), n)
	assert.Equal(t, p, walked)

	assert.Equal(t, []string{
		"maze generation started",
		"maze generation finished",
		"maze solved",
	}, messages(hook))
	for _, e := range hook.AllEntries() {
		assert.Equal(t, s.RunID().String(), e.Data["run_id"])
		assert.Equal(t, 8, e.Data["size"])
	}
	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, len(p), last.Data["length"])
}

// TestGenerate_Rebuilds checks that a second Generate starts from a fresh grid.
func TestGenerate_Rebuilds(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := session.New(session.WithSize(5), session.WithLogger(logger))
	require.NoError(t, err)

	_, err = s.Generate(context.Background())
	require.NoError(t, err)
	first := s.RunID()

	res, err := s.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 25, res.Visited)
	assert.NotEqual(t, first, s.RunID())
	require.NoError(t, s.Grid().Verify())
}

// TestSeedReproducible: equal seeds replay equal mazes, session after session.
func TestSeedReproducible(t *testing.T) {
	build := func() []string {
		logger, _ := test.NewNullLogger()
		s, err := session.New(session.WithSize(6), session.WithSeed(7), session.WithLogger(logger))
		require.NoError(t, err)
		var out []string
		for i := 0; i < 3; i++ {
			_, err := s.Generate(context.Background())
			require.NoError(t, err)
			out = append(out, s.Grid().String())
		}
		return out
	}
	a, b := build(), build()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1], "consecutive mazes of one session should differ")
}

// TestResize_CancelsRun resizes in the middle of a slow generation.
func TestResize_CancelsRun(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := &recorder{first: make(chan struct{})}
	s, err := session.New(
		session.WithSize(20),
		session.WithStepDelay(2*time.Millisecond),
		session.WithLogger(logger),
		session.WithRenderer(rec),
	)
	require.NoError(t, err)
	oldID := s.RunID()

	done := make(chan generate.Result, 1)
	go func() {
		res, err := s.Generate(context.Background())
		assert.NoError(t, err)
		done <- res
	}()

	<-rec.first
	require.NoError(t, s.Resize(4))
	assert.Equal(t, 4, s.Size())
	assert.NotEqual(t, oldID, s.RunID())
	assert.Zero(t, s.Grid().VisitedCount())
	assert.False(t, s.Running())

	select {
	case res := <-done:
		assert.True(t, res.Cancelled)
		assert.False(t, res.Completed)
	case <-time.After(5 * time.Second):
		t.Fatal("generation did not stop after Resize")
	}
	assert.Contains(t, messages(hook), "maze resized")
	assert.Contains(t, messages(hook), "maze generation cancelled")

	require.ErrorIs(t, s.Resize(-1), grid.ErrInvalidSize)
	assert.Equal(t, 4, s.Size())

	res, err := s.Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Completed)
	require.NoError(t, s.Grid().Verify())
}

// TestBusy_AndCancel rejects overlapping operations and stops the run on Cancel.
func TestBusy_AndCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rec := &recorder{first: make(chan struct{})}
	s, err := session.New(
		session.WithSize(30),
		session.WithStepDelay(2*time.Millisecond),
		session.WithLogger(logger),
		session.WithRenderer(rec),
	)
	require.NoError(t, err)

	done := make(chan generate.Result, 1)
	go func() {
		res, _ := s.Generate(context.Background())
		done <- res
	}()
	<-rec.first

	assert.True(t, s.Running())
	_, err = s.Generate(context.Background())
	require.ErrorIs(t, err, session.ErrBusy)
	_, _, err = s.Solve(context.Background())
	require.ErrorIs(t, err, session.ErrBusy)

	s.Cancel()
	res := <-done
	assert.True(t, res.Cancelled)
	require.NoError(t, s.Grid().CheckWalls())
	assert.Equal(t, res.Carved, s.Grid().OpenPassages())

	frozen := s.Elapsed()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, frozen, s.Elapsed())
}

// TestNavigate_Cancel stops the walk when ctx is cancelled from the callback.
func TestNavigate_Cancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := session.New(session.WithSize(6), session.WithSeed(3), session.WithLogger(logger))
	require.NoError(t, err)
	_, err = s.Generate(context.Background())
	require.NoError(t, err)
	p, found, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Greater(t, len(p), 3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n := s.Navigate(ctx, p, func(i int, _ grid.Coord) {
		if i == 2 {
			cancel()
		}
	})
	assert.Equal(t, 3, n)
}

// TestElapsed drives the clock by hand.
func TestElapsed(t *testing.T) {
	logger, _ := test.NewNullLogger()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s, err := session.New(session.WithSize(4), session.WithLogger(logger), session.WithClock(clock))
	require.NoError(t, err)

	_, err = s.Generate(context.Background())
	require.NoError(t, err)
	now = now.Add(65 * time.Second)
	assert.Equal(t, "00:01:05", session.FormatElapsed(s.Elapsed()))

	p, found, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	s.Navigate(context.Background(), p, nil)

	now = now.Add(time.Hour)
	assert.Equal(t, 65*time.Second, s.Elapsed(), "a completed walk freezes the clock")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-time.Second, "00:00:00"},
		{59*time.Second + 900*time.Millisecond, "00:00:59"},
		{61 * time.Minute, "01:01:00"},
		{3661 * time.Second, "01:01:01"},
		{100 * time.Hour, "100:00:00"},
	}
	for _, tc := range tests {
		if got := session.FormatElapsed(tc.in); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextRenderer(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Right))
	step := generate.Step{Kind: generate.Advance, Next: grid.Coord{Row: 0, Col: 1}, Dir: grid.Right}
	p := grid.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	var quiet bytes.Buffer
	r := session.TextRenderer{W: &quiet}
	r.RenderStep(g, step)
	assert.Zero(t, quiet.Len())
	r.RenderPath(g, p)
	assert.Equal(t, g.Render(p), quiet.String())

	var loud bytes.Buffer
	session.TextRenderer{W: &loud, EveryStep: true}.RenderStep(g, step)
	assert.True(t, strings.HasPrefix(loud.String(), "advance (0,0) -> (0,1)\n"), loud.String())
	assert.True(t, strings.HasSuffix(loud.String(), g.String()))
}
