package timebar

import (
	"fmt"
	"slices"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"gonum.org/v1/gonum/interp"
)

// SmoothSteps is the number of segments a smoothed trend draws between two records.
const SmoothSteps = 8

// Shape names drawn into the time bar group.
const (
	ShapeBackground = "background"
	ShapeTrendLine  = "trend-line"
	ShapeTrendArea  = "trend-area"
	ShapeForeground = "foreground"
	ShapeHandleMin  = "handle-min"
	ShapeHandleMax  = "handle-max"
	ShapeTextMin    = "text-min"
	ShapeTextMax    = "text-max"
	ShapePlayButton = "play-button"
	ShapePlayIcon   = "play-icon"
	ShapePauseIcon  = "pause-icon"
)

var (
	backgroundStyle = domain.ShapeStyle{Fill: "#e2e2e2", Opacity: 1}
	foregroundStyle = domain.ShapeStyle{Fill: "#5b8ff9", Opacity: 0.25}
	handlerStyle    = domain.ShapeStyle{Fill: "#ffffff", Stroke: "#1890ff", LineWidth: 1, Opacity: 1}
	lineStyle       = domain.ShapeStyle{Stroke: "#c5c5c5", LineWidth: 1, Opacity: 1}
	areaStyle       = domain.ShapeStyle{Fill: "#caced4", Opacity: 0.5}
	intervalStyle   = domain.ShapeStyle{Fill: "#5b8ff9", Opacity: 0.4}
	textStyle       = domain.ShapeStyle{Fill: "#000000", Opacity: 0.45, FontSize: 12}
	tickStyle       = domain.ShapeStyle{Fill: "#e2e2e2", Stroke: "#ffffff", LineWidth: 1, Opacity: 1}
	selectedStyle   = domain.ShapeStyle{Fill: "#5b8ff9", Stroke: "#ffffff", LineWidth: 1, Opacity: 1}
	buttonStyle     = domain.ShapeStyle{Fill: "#ffffff", Stroke: "#8c8c8c", LineWidth: 1, Opacity: 1}
	iconStyle       = domain.ShapeStyle{Fill: "#8c8c8c", Opacity: 1}
)

// view draws the selector variant into a group. Shapes are addressed by name
// so every redraw replaces them in place.
type view struct {
	group  ports.Group
	cfg    *domain.Config
	layout Layout
	series domain.Series
}

func tickShape(i int) string {
	return fmt.Sprintf("tick-%d", i)
}

func intervalShape(i int) string {
	return fmt.Sprintf("interval-%d", i)
}

// drawStatic draws the parts that only change with the series.
func (v *view) drawStatic() {
	track := v.layout.Track

	if v.cfg.Type == domain.TypeSlice {
		for i := range v.layout.Ticks {
			r := v.layout.Tick(i)
			v.group.SetShape(domain.Shape{
				Name: tickShape(i), Kind: domain.ShapeRect,
				X: r.X, Y: r.Y, Width: r.Width, Height: r.Height,
				Style: tickStyle,
			})
		}
		v.drawController(false)
		return
	}

	bg := v.cfg.Slider.BackgroundStyle
	if v.cfg.Type == domain.TypeTrend {
		bg = v.cfg.Trend.BackgroundStyle.Merge(bg)
	}
	v.group.SetShape(domain.Shape{
		Name: ShapeBackground, Kind: domain.ShapeRect,
		X: track.X, Y: track.Y, Width: track.Width, Height: track.Height,
		Style: bg.Merge(backgroundStyle),
	})

	if v.cfg.Type == domain.TypeTrend {
		v.drawTrend()
	}
	v.drawController(false)
}

// drawTrend plots the series values as a polyline over the track, with an
// optional area underneath and interval bars behind it. A smooth trend is
// resampled along a monotone cubic through the records.
func (v *view) drawTrend() {
	track := v.layout.Track
	values := v.series.Values()

	if iv := v.cfg.Trend.Interval; iv != nil && len(iv.Data) > 0 {
		lo, hi := bounds(iv.Data)
		w := track.Width / float64(len(iv.Data))
		for i, d := range iv.Data {
			h := scale(d, lo, hi) * track.Height
			v.group.SetShape(domain.Shape{
				Name: intervalShape(i), Kind: domain.ShapeRect,
				X: track.X + float64(i)*w, Y: track.Y + track.Height - h, Width: w, Height: h,
				Style: iv.Style.Merge(intervalStyle),
			})
		}
	}

	if len(values) == 0 {
		return
	}

	lo, hi := bounds(values)
	points := make([]domain.Point, len(values))
	for i, val := range values {
		x := track.X + track.Width/2
		if len(values) > 1 {
			x = track.X + float64(i)/float64(len(values)-1)*track.Width
		}
		points[i] = domain.Point{X: x, Y: track.Y + track.Height - scale(val, lo, hi)*track.Height}
	}
	if v.cfg.Trend.Smooth {
		points = smoothPoints(points)
	}

	if v.cfg.Trend.IsArea {
		area := slices.Clone(points)
		area = append(area,
			domain.Point{X: points[len(points)-1].X, Y: track.Y + track.Height},
			domain.Point{X: points[0].X, Y: track.Y + track.Height},
		)
		v.group.SetShape(domain.Shape{
			Name: ShapeTrendArea, Kind: domain.ShapePolygon, Points: area,
			Style: v.cfg.Trend.AreaStyle.Merge(areaStyle),
		})
	}

	v.group.SetShape(domain.Shape{
		Name: ShapeTrendLine, Kind: domain.ShapePolyline, Points: points,
		Style: v.cfg.Trend.LineStyle.Merge(lineStyle),
	})
}

// drawSelection redraws the parts that follow the current range.
func (v *view) drawSelection(r domain.NormalizedRange) {
	if v.cfg.Type == domain.TypeSlice {
		idx, ok := MapToIndices(r, v.layout.Ticks)
		for i := range v.layout.Ticks {
			shape, _ := v.group.Shape(tickShape(i))
			shape.Style = tickStyle
			if ok && i >= idx.Min && i <= idx.Max {
				shape.Style = selectedStyle
			}
			v.group.SetShape(shape)
		}
		return
	}

	w := v.layout.Window(r)
	v.group.SetShape(domain.Shape{
		Name: ShapeForeground, Kind: domain.ShapeRect,
		X: w.X, Y: w.Y, Width: w.Width, Height: w.Height,
		Style: v.cfg.Slider.ForegroundStyle.Merge(foregroundStyle),
	})

	handles := []struct {
		name string
		pos  float64
	}{{ShapeHandleMin, r.Start}, {ShapeHandleMax, r.End}}
	for _, hd := range handles {
		h := v.layout.Handle(hd.pos)
		v.group.SetShape(domain.Shape{
			Name: hd.name, Kind: domain.ShapeRect,
			X: h.X, Y: h.Y, Width: h.Width, Height: h.Height,
			Style: v.cfg.Slider.HandlerStyle.Merge(handlerStyle),
		})
	}
}

// drawLabels places the date labels under the handles.
func (v *view) drawLabels(r domain.NormalizedRange, labels domain.DateRange) {
	if v.cfg.Type == domain.TypeSlice {
		return
	}
	style := v.cfg.Slider.TextStyle.Merge(textStyle)
	y := v.layout.PlayY
	v.group.SetShape(domain.Shape{
		Name: ShapeTextMin, Kind: domain.ShapeText,
		X: v.layout.XAt(r.Start), Y: y, Text: labels.Min, Style: style,
	})
	v.group.SetShape(domain.Shape{
		Name: ShapeTextMax, Kind: domain.ShapeText,
		X: v.layout.XAt(r.End), Y: y, Text: labels.Max, Style: style,
	})
}

// drawController draws the play button: a triangle when stopped, two bars
// when playing.
func (v *view) drawController(playing bool) {
	l := v.layout
	v.group.SetShape(domain.Shape{
		Name: ShapePlayButton, Kind: domain.ShapeCircle,
		X: l.PlayX, Y: l.PlayY, R: l.PlayR, Style: buttonStyle,
	})

	s := l.PlayR / 2
	v.group.SetShape(domain.Shape{
		Name: ShapePlayIcon, Kind: domain.ShapePolygon, Hidden: playing,
		Points: []domain.Point{
			{X: l.PlayX - s*0.6, Y: l.PlayY - s},
			{X: l.PlayX + s, Y: l.PlayY},
			{X: l.PlayX - s*0.6, Y: l.PlayY + s},
		},
		Style: iconStyle,
	})
	for i, x := range []float64{l.PlayX - s, l.PlayX + s/3} {
		v.group.SetShape(domain.Shape{
			Name: fmt.Sprintf("%s-%d", ShapePauseIcon, i), Kind: domain.ShapeRect, Hidden: !playing,
			X: x, Y: l.PlayY - s, Width: s * 2 / 3, Height: 2 * s,
			Style: iconStyle,
		})
	}
}

// smoothPoints resamples points along a Fritsch-Butland monotone cubic, which
// keeps the curve between neighbouring records so it never leaves the track.
// Fewer than three points are returned unchanged.
func smoothPoints(points []domain.Point) []domain.Point {
	if len(points) < 3 {
		return points
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	var curve interp.FritschButland
	if err := curve.Fit(xs, ys); err != nil {
		return points
	}

	out := make([]domain.Point, 0, (len(points)-1)*SmoothSteps+1)
	for i := range len(points) - 1 {
		out = append(out, points[i])
		for step := 1; step < SmoothSteps; step++ {
			x := xs[i] + (xs[i+1]-xs[i])*float64(step)/SmoothSteps
			out = append(out, domain.Point{X: x, Y: curve.Predict(x)})
		}
	}
	return append(out, points[len(points)-1])
}

func bounds(values []float64) (lo, hi float64) {
	return slices.Min(values), slices.Max(values)
}

// scale maps v into [0,1] over [lo, hi]; a flat series sits at the middle.
func scale(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
