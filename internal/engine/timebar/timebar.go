package timebar

import (
	"context"
	"io"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// GroupName is the name of the drawing group the time bar draws into.
const GroupName = "timebar-group"

// Option configures a TimeBar.
type Option func(*TimeBar)

// WithRangeChange replaces automatic filtering with fn.
func WithRangeChange(fn RangeChangeFunc) Option {
	return func(tb *TimeBar) { tb.filterer.RangeChange = fn }
}

// WithValueChange replaces automatic filtering with fn. A range callback takes precedence.
func WithValueChange(fn ValueChangeFunc) Option {
	return func(tb *TimeBar) { tb.filterer.ValueChange = fn }
}

// WithLogger sets the logger used for skipped passes and playback errors.
// A nil logger keeps the silent default.
func WithLogger(l ports.Logger) Option {
	return func(tb *TimeBar) {
		if l != nil {
			tb.logger = l
		}
	}
}

// WithTracer traces every filter pass.
func WithTracer(t ports.Tracer) Option {
	return func(tb *TimeBar) { tb.filterer.Tracer = t }
}

// WithScheduler sets the tick scheduler that drives playback.
func WithScheduler(s ports.TickScheduler) Option {
	return func(tb *TimeBar) { tb.scheduler = s }
}

// WithSurfaceFactory sets the factory resolving the drawing surface at Init.
func WithSurfaceFactory(f ports.SurfaceFactory) Option {
	return func(tb *TimeBar) { tb.newSurface = f }
}

// TimeBar wires the selection controller through the range mapper into the
// data filterer for one host graph. All methods must be called from the
// event loop that dispatches the graph's events.
type TimeBar struct {
	cfg    domain.Config
	graph  ports.GraphDataSource
	series domain.Series

	logger     ports.Logger
	scheduler  ports.TickScheduler
	newSurface ports.SurfaceFactory
	filterer   *DataFilterer

	ctx       context.Context
	selection *SelectionController
	surface   ports.DrawingSurface
	group     ports.Group
	view      *view
	labels    domain.DateRange

	filterListeners []func(Outcome)
	stateListeners  []func(domain.SelectionState)

	initialized bool
	destroyed   bool
}

// New creates a time bar over graph. Nothing is drawn or registered until Init.
func New(cfg domain.Config, graph ports.GraphDataSource, opts ...Option) *TimeBar {
	tb := &TimeBar{
		cfg:      cfg,
		graph:    graph,
		series:   cfg.Series(),
		logger:   nopLogger{},
		filterer: &DataFilterer{Cache: &Cache{}},
		labels:   domain.DateRange{Min: cfg.Slider.MinText, Max: cfg.Slider.MaxText},
	}
	for _, opt := range opts {
		opt(tb)
	}
	return tb
}

// Init resolves the drawing surface, draws the selector and registers the
// graph and group listeners. The afterrender listener runs the first filter
// pass with the configured default range.
func (tb *TimeBar) Init(ctx context.Context) error {
	switch {
	case tb.destroyed:
		return domain.ErrDestroyed
	case tb.initialized:
		return domain.ErrAlreadyInitialized
	case tb.newSurface == nil:
		return domain.ErrNoSurfaceFactory
	}

	tb.ctx = ctx
	kind := tb.graph.RendererKind()
	tb.surface = tb.newSurface(kind, tb.cfg.Width, tb.cfg.Height)
	tb.group = tb.surface.AddGroup(GroupName)

	tb.selection = NewSelectionController(tb.cfg.DefaultRange(), SelectionOptions{
		Granularity:   tb.cfg.Slider.Granularity,
		Ticks:         tb.series.Len(),
		Speed:         tb.cfg.Controller.Speed,
		Loop:          tb.cfg.Controller.Loop,
		FrameInterval: tb.cfg.Controller.FrameInterval,
		Scheduler:     tb.scheduler,
	})

	tb.view = &view{
		group:  tb.group,
		cfg:    &tb.cfg,
		layout: ComputeLayout(&tb.cfg, tb.series.Len()),
		series: tb.series,
	}
	tb.redraw()

	tb.graph.On(domain.EventAfterRender, func(any) {
		tb.filter(tb.cfg.DefaultRange())
	})

	tb.selection.OnValueChange(tb.handleValueChange)
	tb.selection.OnStateChange(func(s domain.SelectionState) {
		tb.view.drawController(s == domain.StatePlaying)
		for _, fn := range tb.stateListeners {
			fn(s)
		}
	})

	tb.group.On(domain.EventPlayPauseClick, func(any) {
		if err := tb.TogglePlay(); err != nil {
			tb.logger.Error(err)
		}
	})

	tb.initialized = true
	return nil
}

func (tb *TimeBar) handleValueChange(evt domain.ValueChangeEvent) {
	if tb.destroyed {
		return
	}
	tb.view.drawSelection(evt.Value)
	tb.view.drawLabels(evt.Value, tb.labels)
	tb.filter(evt.Value)

	if emitter, ok := tb.graph.(ports.EventEmitter); ok {
		emitter.Emit(domain.EventValueChange, evt)
	}
}

// filter runs one pass over r. An empty series skips the pass.
func (tb *TimeBar) filter(r domain.NormalizedRange) {
	if tb.destroyed {
		return
	}

	_, dates, ok := Resolve(tb.series, r)
	if !ok {
		tb.logger.Warn("time bar series is empty, skipping filter")
		return
	}

	if tb.cfg.Type != domain.TypeSlice {
		tb.labels = dates
		tb.view.drawLabels(tb.selection.Value(), dates)
	}

	out := tb.filterer.Apply(tb.ctx, tb.graph, dates)
	for _, fn := range tb.filterListeners {
		fn(out)
	}
}

func (tb *TimeBar) redraw() {
	tb.view.drawStatic()
	value := tb.selection.Value()
	tb.view.drawSelection(value)
	tb.view.drawLabels(value, tb.labels)
	tb.view.drawController(tb.selection.Playing())
}

// OnFilter registers fn to receive the outcome of every filter pass.
func (tb *TimeBar) OnFilter(fn func(Outcome)) {
	tb.filterListeners = append(tb.filterListeners, fn)
}

// OnStateChange registers fn to receive every selection state transition.
func (tb *TimeBar) OnStateChange(fn func(domain.SelectionState)) {
	tb.stateListeners = append(tb.stateListeners, fn)
}

func (tb *TimeBar) ready() error {
	switch {
	case tb.destroyed:
		return domain.ErrDestroyed
	case !tb.initialized:
		return domain.ErrNotInitialized
	default:
		return nil
	}
}

// PointerDown starts a gesture at surface coordinates (x, y). The play button
// is hit first, then the handles, the foreground window and the slice ticks.
// When both handles are under the pointer the drag direction picks one.
// It reports whether anything was hit.
func (tb *TimeBar) PointerDown(x, y float64) bool {
	if tb.ready() != nil {
		return false
	}

	l := tb.view.layout
	if l.OnPlayButton(x, y) {
		tb.group.Emit(domain.EventPlayPauseClick, nil)
		return true
	}

	pos := l.PosAt(x)
	if tb.cfg.Type == domain.TypeSlice {
		if l.Track.Contains(x, y) {
			tb.selection.BeginDrag(domain.HandleSpan, pos)
			return true
		}
		return false
	}

	value := tb.selection.Value()
	onMin := l.Handle(value.Start).Contains(x, y)
	onMax := l.Handle(value.End).Contains(x, y)
	switch {
	case onMin && onMax:
		tb.selection.BeginHandlesDrag(pos)
	case onMin:
		tb.selection.BeginDrag(domain.HandleMin, pos)
	case onMax:
		tb.selection.BeginDrag(domain.HandleMax, pos)
	case l.Window(value).Contains(x, y):
		tb.selection.BeginDrag(domain.HandleWindow, pos)
	default:
		return false
	}
	return true
}

// PointerMove drags the active handle to surface x coordinate x.
func (tb *TimeBar) PointerMove(x, _ float64) {
	if tb.ready() != nil {
		return
	}
	tb.selection.DragTo(tb.view.layout.PosAt(x))
}

// PointerUp ends the active gesture.
func (tb *TimeBar) PointerUp() {
	if tb.ready() != nil {
		return
	}
	tb.selection.EndDrag()
}

// SetRange replaces the selection programmatically.
func (tb *TimeBar) SetRange(r domain.NormalizedRange) error {
	if err := tb.ready(); err != nil {
		return err
	}
	tb.selection.SetValue(r)
	return nil
}

// Nudge shifts the selection window by delta.
func (tb *TimeBar) Nudge(delta float64) error {
	if err := tb.ready(); err != nil {
		return err
	}
	tb.selection.Nudge(delta)
	return nil
}

// Play starts playback.
func (tb *TimeBar) Play() error {
	if err := tb.ready(); err != nil {
		return err
	}
	return tb.selection.Play()
}

// Pause stops playback.
func (tb *TimeBar) Pause() {
	if tb.ready() != nil {
		return
	}
	tb.selection.Pause()
}

// TogglePlay pauses a running playback or starts a stopped one.
func (tb *TimeBar) TogglePlay() error {
	if err := tb.ready(); err != nil {
		return err
	}
	if tb.selection.Playing() {
		tb.selection.Pause()
		return nil
	}
	return tb.Play()
}

// Playing reports whether playback is running.
func (tb *TimeBar) Playing() bool {
	return tb.selection != nil && tb.selection.Playing()
}

// Value returns the current selection, or the configured default before Init.
func (tb *TimeBar) Value() domain.NormalizedRange {
	if tb.selection == nil {
		return tb.cfg.DefaultRange()
	}
	return tb.selection.Value()
}

// Labels returns the date labels shown under the handles.
func (tb *TimeBar) Labels() domain.DateRange {
	return tb.labels
}

// Layout returns the geometry of the time bar.
func (tb *TimeBar) Layout() Layout {
	if tb.view == nil {
		return ComputeLayout(&tb.cfg, tb.series.Len())
	}
	return tb.view.layout
}

// Surface returns the drawing surface resolved at Init.
func (tb *TimeBar) Surface() ports.DrawingSurface {
	return tb.surface
}

// Render encodes the drawing surface to w.
func (tb *TimeBar) Render(w io.Writer) error {
	if err := tb.ready(); err != nil {
		return err
	}
	return tb.surface.Render(w)
}

// Type returns the configured selector variant.
func (tb *TimeBar) Type() domain.BarType {
	return tb.cfg.Type
}

// Series returns the series the time bar maps over.
func (tb *TimeBar) Series() domain.Series {
	return tb.series
}

// ReplaceSeries swaps the series wholesale, redraws the selector and runs a
// filter pass with the current selection.
func (tb *TimeBar) ReplaceSeries(s domain.Series) error {
	if err := tb.ready(); err != nil {
		return err
	}
	if tb.cfg.Type == domain.TypeSlice {
		tb.cfg.Slice.Data = s
	} else {
		tb.cfg.Trend.Data = s
	}
	tb.series = s
	tb.selection.SetTicks(s.Len())
	tb.view.series = s
	tb.view.layout = ComputeLayout(&tb.cfg, s.Len())
	tb.redraw()
	tb.filter(tb.selection.Value())
	return nil
}

// Destroy stops playback and detaches the listeners registered on the
// time bar group. Calling it again is a no-op.
func (tb *TimeBar) Destroy() {
	if tb.destroyed {
		return
	}
	if tb.selection != nil {
		tb.selection.Pause()
	}
	if tb.group != nil {
		tb.group.Off(domain.EventPlayPauseClick)
	}
	tb.destroyed = true
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}
