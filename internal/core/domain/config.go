package domain

import "time"

// BarType selects the selector variant drawn by the time bar.
type BarType string

const (
	// TypeTrend is a range slider drawn over a trend line.
	TypeTrend BarType = "trend"
	// TypeSimple is a thin range slider without a trend line.
	TypeSimple BarType = "simple"
	// TypeSlice is a tick based selector.
	TypeSlice BarType = "slice"
)

// Valid reports whether t is one of the known bar types.
func (t BarType) Valid() bool {
	switch t {
	case TypeTrend, TypeSimple, TypeSlice:
		return true
	default:
		return false
	}
}

// UsesSlider reports whether the variant is the two-handle slider.
func (t BarType) UsesSlider() bool {
	return t == TypeTrend || t == TypeSimple
}

// RendererKind names the drawing backend a host graph renders with.
type RendererKind string

const (
	// RendererCanvas renders to a raster canvas.
	RendererCanvas RendererKind = "canvas"
	// RendererSVG renders to SVG markup.
	RendererSVG RendererKind = "svg"
)

// Valid reports whether k is one of the known renderer kinds.
func (k RendererKind) Valid() bool {
	return k == RendererCanvas || k == RendererSVG
}

// Granularity controls when a drag emits value changes.
type Granularity string

const (
	// GranularityContinuous emits on every drag step that changes the value.
	GranularityContinuous Granularity = "continuous"
	// GranularityRelease emits once when the drag ends.
	GranularityRelease Granularity = "release"
)

// Valid reports whether g is one of the known granularities.
func (g Granularity) Valid() bool {
	return g == GranularityContinuous || g == GranularityRelease
}

const (
	// DefaultPadding is the inner padding around the selector.
	DefaultPadding = 10
	// DefaultWidth is the width of the time bar container.
	DefaultWidth = 400
	// DefaultHeight is the height of the time bar container.
	DefaultHeight = 50
	// DefaultStart is the initial normalized start of the selection.
	DefaultStart = 0.1
	// DefaultEnd is the initial normalized end of the selection.
	DefaultEnd = 0.9
	// DefaultSpeed is the play controller speed.
	DefaultSpeed = 2
	// MinSpeed and MaxSpeed bound the play controller speed.
	MinSpeed = 1
	MaxSpeed = 9
	// DefaultClassName is the class name of the time bar container.
	DefaultClassName = "g6-component-timebar"
	// DefaultMinText and DefaultMaxText label the handles before the first filter.
	DefaultMinText = "min"
	DefaultMaxText = "max"
	// DefaultFrameInterval is the playback tick period.
	DefaultFrameInterval = time.Second / 60
)

// ShapeStyle holds presentation attributes for a drawn shape.
type ShapeStyle struct {
	Fill        string
	Stroke      string
	LineWidth   float64
	Opacity     float64
	FontSize    float64
	FillOpacity float64
}

// Merge returns s with every zero field replaced by the matching field of fallback.
func (s ShapeStyle) Merge(fallback ShapeStyle) ShapeStyle {
	if s.Fill == "" {
		s.Fill = fallback.Fill
	}
	if s.Stroke == "" {
		s.Stroke = fallback.Stroke
	}
	if s.LineWidth == 0 {
		s.LineWidth = fallback.LineWidth
	}
	if s.Opacity == 0 {
		s.Opacity = fallback.Opacity
	}
	if s.FontSize == 0 {
		s.FontSize = fallback.FontSize
	}
	if s.FillOpacity == 0 {
		s.FillOpacity = fallback.FillOpacity
	}
	return s
}

// Interval is a bar series drawn underneath the trend line.
type Interval struct {
	Data  []float64
	Style ShapeStyle
}

// TrendConfig configures the trend variant and supplies its series.
type TrendConfig struct {
	Data            Series
	Smooth          bool
	IsArea          bool
	Interval        *Interval
	BackgroundStyle ShapeStyle
	LineStyle       ShapeStyle
	AreaStyle       ShapeStyle
}

// SliderConfig configures the two-handle slider used by trend and simple.
type SliderConfig struct {
	Start           float64
	End             float64
	MinText         string
	MaxText         string
	Height          float64
	Granularity     Granularity
	HandlerStyle    ShapeStyle
	BackgroundStyle ShapeStyle
	ForegroundStyle ShapeStyle
	TextStyle       ShapeStyle
}

// SliceConfig configures the tick based selector and supplies its own series.
type SliceConfig struct {
	Start float64
	End   float64
	Data  Series
}

// ControllerConfig configures play/pause/loop playback.
type ControllerConfig struct {
	Speed         float64
	Loop          bool
	FrameInterval time.Duration
}

// Config is the full time bar configuration.
type Config struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Padding   float64
	Type      BarType
	Container string
	ClassName string
	Renderer  RendererKind

	Trend      TrendConfig
	Slider     SliderConfig
	Slice      SliceConfig
	Controller ControllerConfig
}

// DefaultConfig returns the configuration every loaded file is layered on.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Padding:   DefaultPadding,
		Type:      TypeTrend,
		ClassName: DefaultClassName,
		Renderer:  RendererCanvas,
		Trend: TrendConfig{
			Smooth: true,
		},
		Slider: SliderConfig{
			Start:       DefaultStart,
			End:         DefaultEnd,
			MinText:     DefaultMinText,
			MaxText:     DefaultMaxText,
			Granularity: GranularityContinuous,
		},
		Slice: SliceConfig{
			Start: DefaultStart,
			End:   DefaultEnd,
		},
		Controller: ControllerConfig{
			Speed:         DefaultSpeed,
			FrameInterval: DefaultFrameInterval,
		},
	}
}

// Series returns the dated records backing the configured type:
// the trend data for trend and simple, the slice data for slice.
func (c *Config) Series() Series {
	if c.Type == TypeSlice {
		return c.Slice.Data
	}
	return c.Trend.Data
}

// DefaultRange returns the initial selection of the configured type.
func (c *Config) DefaultRange() NormalizedRange {
	if c.Type == TypeSlice {
		return NormalizedRange{Start: c.Slice.Start, End: c.Slice.End}
	}
	return NormalizedRange{Start: c.Slider.Start, End: c.Slider.End}
}
