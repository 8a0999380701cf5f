package timebar_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/drawing"
	"go.trai.ch/timebar/internal/adapters/graph"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/timebar/internal/core/ports/mocks"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.uber.org/mock/gomock"
)

func trendConfig(s domain.Series) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Trend.Data = s
	return cfg
}

func newTimeBar(t *testing.T, cfg domain.Config, opts ...timebar.Option) (*timebar.TimeBar, *graph.Graph) {
	t.Helper()

	g := graph.New(monthlyGraph(cfg.Series()), domain.RendererSVG)
	opts = append([]timebar.Option{timebar.WithSurfaceFactory(drawing.NewSurface)}, opts...)
	tb := timebar.New(cfg, g, opts...)
	require.NoError(t, tb.Init(context.Background()))
	return tb, g
}

func timeBarGroup(t *testing.T, tb *timebar.TimeBar) *drawing.Group {
	t.Helper()

	s, ok := tb.Surface().(interface{ Groups() []*drawing.Group })
	require.True(t, ok)
	for _, g := range s.Groups() {
		if g.Name() == timebar.GroupName {
			return g
		}
	}
	t.Fatalf("group %q not found", timebar.GroupName)
	return nil
}

func TestTimeBar_FirstRenderFiltersDefaultRange(t *testing.T) {
	t.Parallel()

	tb, g := newTimeBar(t, trendConfig(months(10)))

	var outcomes []timebar.Outcome
	tb.OnFilter(func(o timebar.Outcome) { outcomes = append(outcomes, o) })

	g.Render()

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.DateRange{Min: "2020-02", Max: "2020-10"}, outcomes[0].Dates)
	assert.Equal(t, 9, outcomes[0].Nodes)
	assert.Equal(t, 8, outcomes[0].Edges)

	saved := g.Save()
	require.Len(t, saved.Nodes, 9)
	assert.Equal(t, "2020-02", saved.Nodes[0].Date)
	assert.Equal(t, "2020-10", saved.Nodes[8].Date)
	assert.Equal(t, outcomes[0].Dates, tb.Labels())
}

func TestTimeBar_DrawsTrendSelector(t *testing.T) {
	t.Parallel()

	tb, _ := newTimeBar(t, trendConfig(months(10)))
	group := timeBarGroup(t, tb)

	for _, name := range []string{
		timebar.ShapeBackground, timebar.ShapeTrendLine, timebar.ShapeForeground,
		timebar.ShapeHandleMin, timebar.ShapeHandleMax, timebar.ShapeTextMin,
		timebar.ShapeTextMax, timebar.ShapePlayButton, timebar.ShapePlayIcon,
	} {
		_, ok := group.Shape(name)
		assert.True(t, ok, "missing shape %s", name)
	}

	line, _ := group.Shape(timebar.ShapeTrendLine)
	assert.Len(t, line.Points, 9*timebar.SmoothSteps+1)

	text, _ := group.Shape(timebar.ShapeTextMin)
	assert.Equal(t, domain.DefaultMinText, text.Text)
}

func TestTimeBar_TrendSmoothing(t *testing.T) {
	t.Parallel()

	t.Run("smooth curve stays inside the track", func(t *testing.T) {
		t.Parallel()

		series := domain.Series{
			{Date: "2020-01", Value: 0}, {Date: "2020-02", Value: 100},
			{Date: "2020-03", Value: 0}, {Date: "2020-04", Value: 100},
		}
		tb, _ := newTimeBar(t, trendConfig(series))
		line, ok := timeBarGroup(t, tb).Shape(timebar.ShapeTrendLine)
		require.True(t, ok)

		track := tb.Layout().Track
		require.Len(t, line.Points, 3*timebar.SmoothSteps+1)
		for i, p := range line.Points {
			assert.GreaterOrEqual(t, p.Y, track.Y-1e-9)
			assert.LessOrEqual(t, p.Y, track.Y+track.Height+1e-9)
			if i > 0 {
				assert.Greater(t, p.X, line.Points[i-1].X)
			}
		}
		// Records are kept as curve knots.
		assert.InDelta(t, track.Y, line.Points[timebar.SmoothSteps].Y, 1e-9)
	})

	t.Run("plain polyline without smoothing", func(t *testing.T) {
		t.Parallel()

		cfg := trendConfig(months(10))
		cfg.Trend.Smooth = false
		tb, _ := newTimeBar(t, cfg)
		line, ok := timeBarGroup(t, tb).Shape(timebar.ShapeTrendLine)
		require.True(t, ok)
		assert.Len(t, line.Points, 10)
	})

	t.Run("area follows the smoothed line", func(t *testing.T) {
		t.Parallel()

		cfg := trendConfig(months(4))
		cfg.Trend.IsArea = true
		tb, _ := newTimeBar(t, cfg)
		area, ok := timeBarGroup(t, tb).Shape(timebar.ShapeTrendArea)
		require.True(t, ok)
		assert.Len(t, area.Points, 3*timebar.SmoothSteps+1+2)
	})
}

func TestTimeBar_DragEmitsValueChange(t *testing.T) {
	t.Parallel()

	tb, g := newTimeBar(t, trendConfig(months(10)))

	var events []domain.ValueChangeEvent
	g.On(domain.EventValueChange, func(p any) {
		events = append(events, p.(domain.ValueChangeEvent))
	})

	l := tb.Layout()
	y := l.Track.Y + l.Track.Height/2

	require.True(t, tb.PointerDown(l.XAt(0.1), y))
	tb.PointerMove(l.XAt(0.3), y)
	tb.PointerUp()

	require.Len(t, events, 1)
	assert.Equal(t, domain.HandleMin, events[0].Target)
	assert.InDelta(t, 0.3, tb.Value().Start, 1e-9)

	// 0.3 of ten records starts at the fourth month.
	assert.Equal(t, domain.DateRange{Min: "2020-04", Max: "2020-10"}, tb.Labels())
	assert.Len(t, g.Save().Nodes, 7)
}

func TestTimeBar_CollapsedRangeCanWidenAgain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		collapse  func(tb *timebar.TimeBar, y float64)
		pressAt   float64
		moveTo    float64
		wantValue domain.NormalizedRange
	}{
		{
			name: "collapsed at start",
			collapse: func(tb *timebar.TimeBar, y float64) {
				l := tb.Layout()
				tb.PointerDown(l.XAt(0.1), y)
				tb.PointerMove(l.XAt(0), y)
				tb.PointerUp()
				tb.PointerDown(l.XAt(0.9), y)
				tb.PointerMove(l.XAt(0), y)
				tb.PointerUp()
			},
			pressAt:   0,
			moveTo:    0.8,
			wantValue: domain.NormalizedRange{Start: 0, End: 0.8},
		},
		{
			name: "collapsed at end",
			collapse: func(tb *timebar.TimeBar, y float64) {
				l := tb.Layout()
				tb.PointerDown(l.XAt(0.9), y)
				tb.PointerMove(l.XAt(1), y)
				tb.PointerUp()
				tb.PointerDown(l.XAt(0.1), y)
				tb.PointerMove(l.XAt(1), y)
				tb.PointerUp()
			},
			pressAt:   1,
			moveTo:    0.2,
			wantValue: domain.NormalizedRange{Start: 0.2, End: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb, _ := newTimeBar(t, trendConfig(months(10)))
			l := tb.Layout()
			y := l.Track.Y + l.Track.Height/2

			tt.collapse(tb, y)
			require.InDelta(t, 0, tb.Value().Width(), 1e-9)

			require.True(t, tb.PointerDown(l.XAt(tt.pressAt), y))
			tb.PointerMove(l.XAt(tt.moveTo), y)
			tb.PointerUp()

			assert.InDelta(t, tt.wantValue.Start, tb.Value().Start, 1e-9)
			assert.InDelta(t, tt.wantValue.End, tb.Value().End, 1e-9)
		})
	}
}

func TestTimeBar_OverlappingHandlesFollowDragDirection(t *testing.T) {
	t.Parallel()

	tb, _ := newTimeBar(t, trendConfig(months(10)))
	l := tb.Layout()
	y := l.Track.Y + l.Track.Height/2
	require.NoError(t, tb.SetRange(domain.NormalizedRange{Start: 0.5, End: 0.5}))

	require.True(t, tb.PointerDown(l.XAt(0.5), y))
	tb.PointerMove(l.XAt(0.2), y)
	tb.PointerUp()
	assert.InDelta(t, 0.2, tb.Value().Start, 1e-9)
	assert.InDelta(t, 0.5, tb.Value().End, 1e-9)

	require.NoError(t, tb.SetRange(domain.NormalizedRange{Start: 0.5, End: 0.5}))
	require.True(t, tb.PointerDown(l.XAt(0.5), y))
	tb.PointerMove(l.XAt(0.7), y)
	tb.PointerUp()
	assert.InDelta(t, 0.5, tb.Value().Start, 1e-9)
	assert.InDelta(t, 0.7, tb.Value().End, 1e-9)
}

func TestTimeBar_PointerMissesOutsideSelector(t *testing.T) {
	t.Parallel()

	tb, _ := newTimeBar(t, trendConfig(months(10)))
	assert.False(t, tb.PointerDown(1, 1))
}

func TestTimeBar_SliceSelectsTick(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.Type = domain.TypeSlice
	cfg.Slice.Data = months(10)
	tb, g := newTimeBar(t, cfg)

	l := tb.Layout()
	tick := l.Tick(3)
	require.True(t, tb.PointerDown(tick.X+tick.Width/2, tick.Y+1))
	tb.PointerUp()

	nodes := g.Save().Nodes
	require.Len(t, nodes, 1)
	assert.Equal(t, "2020-04", nodes[0].Date)
	assert.Equal(t, domain.DateRange{Min: domain.DefaultMinText, Max: domain.DefaultMaxText}, tb.Labels())
}

func TestTimeBar_PlayButtonWithoutSchedulerLogs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrNoScheduler)
	})

	tb, _ := newTimeBar(t, trendConfig(months(10)), timebar.WithLogger(logger))

	l := tb.Layout()
	assert.True(t, tb.PointerDown(l.PlayX, l.PlayY))
	assert.False(t, tb.Playing())
}

func TestTimeBar_PlayButtonTogglesPlayback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sched := mocks.NewMockTickScheduler(ctrl)

	var tick func()
	cancelled := false
	sched.EXPECT().Every(domain.DefaultFrameInterval, gomock.Any()).
		DoAndReturn(func(_ time.Duration, fn func()) func() {
			tick = fn
			return func() { cancelled = true }
		})

	tb, _ := newTimeBar(t, trendConfig(months(10)), timebar.WithScheduler(sched))
	group := timeBarGroup(t, tb)

	var states []domain.SelectionState
	tb.OnStateChange(func(s domain.SelectionState) { states = append(states, s) })

	l := tb.Layout()
	require.True(t, tb.PointerDown(l.PlayX, l.PlayY))
	require.True(t, tb.Playing())

	icon, _ := group.Shape(timebar.ShapePlayIcon)
	assert.True(t, icon.Hidden)
	pause, _ := group.Shape(timebar.ShapePauseIcon + "-0")
	assert.False(t, pause.Hidden)

	before := tb.Value()
	tick()
	assert.Greater(t, tb.Value().Start, before.Start)

	require.True(t, tb.PointerDown(l.PlayX, l.PlayY))
	assert.False(t, tb.Playing())
	assert.True(t, cancelled)
	assert.Equal(t, []domain.SelectionState{domain.StatePlaying, domain.StateIdle}, states)
}

func TestTimeBar_RangeCallbackReplacesFiltering(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := mocks.NewMockGraphDataSource(ctrl)

	var afterRender ports.Handler
	g.EXPECT().RendererKind().Return(domain.RendererCanvas)
	g.EXPECT().On(domain.EventAfterRender, gomock.Any()).Do(func(_ string, h ports.Handler) {
		afterRender = h
	})
	g.EXPECT().ChangeData(gomock.Any()).Times(0)
	g.EXPECT().Save().Times(0)

	var gotMin, gotMax string
	tb := timebar.New(trendConfig(months(10)), g,
		timebar.WithSurfaceFactory(drawing.NewSurface),
		timebar.WithRangeChange(func(_ ports.GraphDataSource, minDate, maxDate string) {
			gotMin, gotMax = minDate, maxDate
		}),
	)
	require.NoError(t, tb.Init(context.Background()))
	require.NotNil(t, afterRender)

	afterRender(nil)

	assert.Equal(t, "2020-02", gotMin)
	assert.Equal(t, "2020-10", gotMax)
	assert.Equal(t, domain.RendererCanvas, tb.Surface().Kind())
}

func TestTimeBar_EmptySeriesSkipsFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	g := mocks.NewMockGraphDataSource(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	var afterRender ports.Handler
	g.EXPECT().RendererKind().Return(domain.RendererSVG)
	g.EXPECT().On(domain.EventAfterRender, gomock.Any()).Do(func(_ string, h ports.Handler) {
		afterRender = h
	})
	g.EXPECT().ChangeData(gomock.Any()).Times(0)
	logger.EXPECT().Warn("time bar series is empty, skipping filter")

	tb := timebar.New(domain.DefaultConfig(), g,
		timebar.WithSurfaceFactory(drawing.NewSurface),
		timebar.WithLogger(logger),
	)
	require.NoError(t, tb.Init(context.Background()))
	afterRender(nil)
}

func TestTimeBar_SetRangeAndReplaceSeries(t *testing.T) {
	t.Parallel()

	tb, g := newTimeBar(t, trendConfig(months(10)))

	require.NoError(t, tb.SetRange(domain.NormalizedRange{Start: 0, End: 1}))
	assert.Len(t, g.Save().Nodes, 10)

	require.NoError(t, tb.ReplaceSeries(months(4)))
	assert.Equal(t, 4, tb.Series().Len())
	assert.Equal(t, domain.DateRange{Min: "2020-01", Max: "2020-04"}, tb.Labels())
	assert.Equal(t, 4, tb.Layout().Ticks)
}

func TestTimeBar_Lifecycle(t *testing.T) {
	t.Parallel()

	g := graph.New(domain.GraphSnapshot{}, domain.RendererSVG)
	tb := timebar.New(trendConfig(months(3)), g)

	require.ErrorIs(t, tb.Init(context.Background()), domain.ErrNoSurfaceFactory)
	require.ErrorIs(t, tb.SetRange(domain.NormalizedRange{}), domain.ErrNotInitialized)
	require.ErrorIs(t, tb.Render(&bytes.Buffer{}), domain.ErrNotInitialized)
	assert.Equal(t, domain.NormalizedRange{Start: 0.1, End: 0.9}, tb.Value())

	tb = timebar.New(trendConfig(months(3)), g, timebar.WithSurfaceFactory(drawing.NewSurface))
	require.NoError(t, tb.Init(context.Background()))
	require.ErrorIs(t, tb.Init(context.Background()), domain.ErrAlreadyInitialized)

	var buf bytes.Buffer
	require.NoError(t, tb.Render(&buf))
	assert.Contains(t, buf.String(), "<svg")

	group := timeBarGroup(t, tb)
	assert.Equal(t, 1, group.Listeners(domain.EventPlayPauseClick))

	tb.Destroy()
	tb.Destroy()
	assert.Zero(t, group.Listeners(domain.EventPlayPauseClick))
	require.ErrorIs(t, tb.Nudge(0.1), domain.ErrDestroyed)
	require.ErrorIs(t, tb.Init(context.Background()), domain.ErrDestroyed)
	assert.False(t, tb.PointerDown(0, 0))

	// The graph keeps its listener, but it no longer filters.
	g.Render()
	assert.Zero(t, g.Changes())
}
