package timebar

import (
	"math"
	"time"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// SelectionOptions configures a SelectionController.
type SelectionOptions struct {
	// Granularity selects whether drags emit on every step or on release.
	Granularity domain.Granularity
	// Ticks is the number of records under the selector. It sizes the span
	// snapping and the playback step.
	Ticks int
	// Speed is the playback speed in [1,9].
	Speed float64
	// Loop restarts playback from the beginning once the end is reached.
	Loop bool
	// FrameInterval is the playback tick period.
	FrameInterval time.Duration
	// Scheduler runs playback ticks. Play fails without one.
	Scheduler ports.TickScheduler
}

// SelectionController owns the live normalized range and turns drags,
// programmatic updates and playback ticks into value change events.
type SelectionController struct {
	opts  SelectionOptions
	value domain.NormalizedRange
	state domain.SelectionState

	handle      domain.Handle
	anchorPos   float64
	anchorValue domain.NormalizedRange
	// undecided is set while a drag over both handles has not moved yet.
	undecided bool

	cancelTicks func()

	valueListeners []func(domain.ValueChangeEvent)
	stateListeners []func(domain.SelectionState)
}

// NewSelectionController creates an idle controller holding the clamped initial range.
func NewSelectionController(initial domain.NormalizedRange, opts SelectionOptions) *SelectionController {
	if !opts.Granularity.Valid() {
		opts.Granularity = domain.GranularityContinuous
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = domain.DefaultFrameInterval
	}
	return &SelectionController{
		opts:   opts,
		value:  initial.Clamp(),
		state:  domain.StateIdle,
		handle: domain.HandleNone,
	}
}

// Value returns the current range.
func (c *SelectionController) Value() domain.NormalizedRange {
	return c.value
}

// State returns the current state.
func (c *SelectionController) State() domain.SelectionState {
	return c.state
}

// Playing reports whether playback is running.
func (c *SelectionController) Playing() bool {
	return c.state == domain.StatePlaying
}

// SetTicks updates the number of records under the selector.
func (c *SelectionController) SetTicks(n int) {
	c.opts.Ticks = n
}

// OnValueChange registers fn to receive every emitted value change.
func (c *SelectionController) OnValueChange(fn func(domain.ValueChangeEvent)) {
	c.valueListeners = append(c.valueListeners, fn)
}

// OnStateChange registers fn to receive every state transition.
func (c *SelectionController) OnStateChange(fn func(domain.SelectionState)) {
	c.stateListeners = append(c.stateListeners, fn)
}

// BeginDrag starts a gesture on handle h at the normalized track position pos.
// A drag begun while playing pauses playback first. A span drag selects the
// tick under pos immediately.
func (c *SelectionController) BeginDrag(h domain.Handle, pos float64) {
	if c.state == domain.StatePlaying {
		c.Pause()
	}
	if c.state == domain.StateDragging {
		c.EndDrag()
	}

	c.handle = h
	c.undecided = false
	c.anchorPos = pos
	c.anchorValue = c.value
	c.setState(domain.StateDragging)

	if h == domain.HandleSpan {
		c.DragTo(pos)
	}
}

// BeginHandlesDrag starts a gesture on handles that overlap at pos. The
// first movement picks the handle: min when going left, max when going right.
func (c *SelectionController) BeginHandlesDrag(pos float64) {
	c.BeginDrag(domain.HandleMin, pos)
	c.undecided = true
}

// DragTo moves the active handle to the normalized track position pos.
func (c *SelectionController) DragTo(pos float64) {
	if c.state != domain.StateDragging {
		return
	}
	if c.undecided {
		switch {
		case pos < c.anchorPos:
			c.handle = domain.HandleMin
		case pos > c.anchorPos:
			c.handle = domain.HandleMax
		default:
			return
		}
		c.undecided = false
	}

	delta := pos - c.anchorPos
	from := c.anchorValue
	next := from

	switch c.handle {
	case domain.HandleMin:
		next.Start = math.Min(math.Max(from.Start+delta, 0), from.End)
	case domain.HandleMax:
		next.End = math.Max(math.Min(from.End+delta, 1), from.Start)
	case domain.HandleWindow:
		next = translate(from, delta)
	case domain.HandleSpan:
		n := c.ticks()
		a, b := tickAt(c.anchorPos, n), tickAt(pos, n)
		if a > b {
			a, b = b, a
		}
		next = domain.NormalizedRange{Start: float64(a) / float64(n), End: float64(b) / float64(n)}
	default:
		return
	}

	c.update(next, c.handle)
}

// EndDrag finishes the active gesture. With release granularity the single
// value change of the whole gesture is emitted here.
func (c *SelectionController) EndDrag() {
	if c.state != domain.StateDragging {
		return
	}

	h := c.handle
	c.handle = domain.HandleNone
	c.undecided = false
	c.setState(domain.StateIdle)

	if c.opts.Granularity == domain.GranularityRelease && c.value != c.anchorValue {
		c.emit(domain.ValueChangeEvent{OriginValue: c.anchorValue, Value: c.value, Target: h})
	}
}

// SetValue replaces the range programmatically.
func (c *SelectionController) SetValue(r domain.NormalizedRange) {
	c.update(r, domain.HandleNone)
}

// Nudge shifts the whole window by delta while keeping its width.
func (c *SelectionController) Nudge(delta float64) {
	c.update(translate(c.value, delta), domain.HandleWindow)
}

// Play starts advancing the window on every scheduler tick. Playing from the
// end of the track rewinds to the beginning first.
func (c *SelectionController) Play() error {
	if c.state == domain.StatePlaying {
		return nil
	}
	if c.opts.Scheduler == nil {
		return domain.ErrNoScheduler
	}
	c.EndDrag()

	if c.value.End >= 1 {
		c.update(domain.NormalizedRange{Start: 0, End: c.value.Width()}, domain.HandleController)
	}

	c.cancelTicks = c.opts.Scheduler.Every(c.opts.FrameInterval, c.Tick)
	c.setState(domain.StatePlaying)
	return nil
}

// Pause stops playback at the current tick boundary.
func (c *SelectionController) Pause() {
	if c.state != domain.StatePlaying {
		return
	}
	if c.cancelTicks != nil {
		c.cancelTicks()
		c.cancelTicks = nil
	}
	c.setState(domain.StateIdle)
}

// Toggle pauses a running playback or starts a stopped one.
func (c *SelectionController) Toggle() error {
	if c.state == domain.StatePlaying {
		c.Pause()
		return nil
	}
	return c.Play()
}

// Step returns the normalized distance the window moves per tick:
// one record width every (10 - speed) seconds.
func (c *SelectionController) Step() float64 {
	speed := math.Min(math.Max(c.opts.Speed, domain.MinSpeed), domain.MaxSpeed)
	fps := float64(time.Second) / float64(c.opts.FrameInterval)
	return 1 / (float64(c.ticks()) * (10 - speed) * fps)
}

// Tick advances playback by one step. The window parks at the end and
// playback pauses, unless loop is set, in which case the next tick after
// reaching the end restarts from the beginning.
func (c *SelectionController) Tick() {
	if c.state != domain.StatePlaying {
		return
	}

	width := c.value.Width()
	if c.value.End >= 1 {
		if c.opts.Loop {
			c.update(domain.NormalizedRange{Start: 0, End: width}, domain.HandleController)
			return
		}
		c.Pause()
		return
	}

	next := translate(c.value, c.Step())
	c.update(next, domain.HandleController)

	if next.End >= 1 && !c.opts.Loop {
		c.Pause()
	}
}

func (c *SelectionController) update(next domain.NormalizedRange, target domain.Handle) {
	next = next.Clamp()
	if next == c.value {
		return
	}

	prev := c.value
	c.value = next

	if c.state == domain.StateDragging && c.opts.Granularity == domain.GranularityRelease {
		return
	}
	c.emit(domain.ValueChangeEvent{OriginValue: prev, Value: next, Target: target})
}

func (c *SelectionController) emit(evt domain.ValueChangeEvent) {
	for _, fn := range c.valueListeners {
		fn(evt)
	}
}

func (c *SelectionController) setState(s domain.SelectionState) {
	if c.state == s {
		return
	}
	c.state = s
	for _, fn := range c.stateListeners {
		fn(s)
	}
}

func (c *SelectionController) ticks() int {
	if c.opts.Ticks < 1 {
		return 1
	}
	return c.opts.Ticks
}

// translate moves r by delta, keeping its width and stopping at either end.
func translate(r domain.NormalizedRange, delta float64) domain.NormalizedRange {
	width := r.Width()
	start := math.Max(r.Start+delta, 0)
	if start >= 1-width {
		return domain.NormalizedRange{Start: 1 - width, End: 1}
	}
	return domain.NormalizedRange{Start: start, End: start + width}
}

// tickAt returns the index of the tick under the normalized position pos.
func tickAt(pos float64, n int) int {
	i := int(math.Floor(pos * float64(n)))
	return max(0, min(i, n-1))
}
