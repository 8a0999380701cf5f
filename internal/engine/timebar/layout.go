package timebar

import (
	"math"

	"go.trai.ch/timebar/internal/core/domain"
)

const (
	// TrendHeight is the track height of the trend variant.
	TrendHeight = 26
	// SimpleHeight is the track height of the simple variant.
	SimpleHeight = 8
	// SliceHeight is the track height of the slice variant.
	SliceHeight = 20

	simpleOffset     = 15
	handleWidth      = 8
	playButtonRadius = 6
	controllerGap    = 8
)

// Rect is an axis aligned box in surface coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Layout is the geometry of a time bar on its drawing surface.
type Layout struct {
	// Track is the band the range is selected over.
	Track Rect
	// HandleHeight is the height of the slider handles.
	HandleHeight float64
	// PlayX, PlayY and PlayR place the play/pause button.
	PlayX, PlayY, PlayR float64
	// Ticks is the number of slice ticks across the track.
	Ticks int
}

// ComputeLayout places the selector variant of cfg for a series of n records.
// The track spans the container width minus the padding on both sides; the
// simple variant sits lower to leave room for its labels.
func ComputeLayout(cfg *domain.Config, n int) Layout {
	realWidth := cfg.Width - 2*cfg.Padding
	x := cfg.X + cfg.Padding
	y := cfg.Y + cfg.Padding

	var height float64
	switch cfg.Type {
	case domain.TypeSimple:
		height = SimpleHeight
		y += simpleOffset
	case domain.TypeSlice:
		height = SliceHeight
	default:
		height = TrendHeight
	}

	handleHeight := height
	if cfg.Type.UsesSlider() && cfg.Slider.Height > 0 {
		handleHeight = cfg.Slider.Height
	}

	return Layout{
		Track:        Rect{X: x, Y: y, Width: realWidth, Height: height},
		HandleHeight: handleHeight,
		PlayX:        x + realWidth/2,
		PlayY:        y + height + controllerGap,
		PlayR:        playButtonRadius,
		Ticks:        n,
	}
}

// PosAt converts a surface x coordinate into a normalized track position.
func (l Layout) PosAt(x float64) float64 {
	if l.Track.Width <= 0 {
		return 0
	}
	return math.Min(math.Max((x-l.Track.X)/l.Track.Width, 0), 1)
}

// XAt converts a normalized track position into a surface x coordinate.
func (l Layout) XAt(pos float64) float64 {
	return l.Track.X + pos*l.Track.Width
}

// Handle returns the box of the handle sitting at the normalized position pos.
func (l Layout) Handle(pos float64) Rect {
	return Rect{
		X:      l.XAt(pos) - handleWidth/2,
		Y:      l.Track.Y + (l.Track.Height-l.HandleHeight)/2,
		Width:  handleWidth,
		Height: l.HandleHeight,
	}
}

// Window returns the foreground box between the two bounds of r.
func (l Layout) Window(r domain.NormalizedRange) Rect {
	return Rect{
		X:      l.XAt(r.Start),
		Y:      l.Track.Y,
		Width:  r.Width() * l.Track.Width,
		Height: l.Track.Height,
	}
}

// Tick returns the box of slice tick i.
func (l Layout) Tick(i int) Rect {
	n := max(l.Ticks, 1)
	w := l.Track.Width / float64(n)
	return Rect{X: l.Track.X + float64(i)*w, Y: l.Track.Y, Width: w, Height: l.Track.Height}
}

// OnPlayButton reports whether (x, y) hits the play/pause button.
func (l Layout) OnPlayButton(x, y float64) bool {
	dx, dy := x-l.PlayX, y-l.PlayY
	return dx*dx+dy*dy <= l.PlayR*l.PlayR
}

// Bottom returns the lowest y coordinate the time bar draws at.
func (l Layout) Bottom() float64 {
	return l.PlayY + l.PlayR
}
