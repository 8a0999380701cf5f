package config

// File is the structure of timebar.yaml. Pointer fields distinguish an
// omitted key from a zero value so omitted keys keep their defaults.
type File struct {
	X         *float64 `yaml:"x"`
	Y         *float64 `yaml:"y"`
	Width     *float64 `yaml:"width"`
	Height    *float64 `yaml:"height"`
	Padding   *float64 `yaml:"padding"`
	Type      string   `yaml:"type"`
	Container string   `yaml:"container"`
	ClassName string   `yaml:"className"`
	Renderer  string   `yaml:"renderer"`

	Trend      *TrendDTO      `yaml:"trend"`
	Slider     *SliderDTO     `yaml:"slider"`
	Slice      *SliceDTO      `yaml:"slice"`
	Controller *ControllerDTO `yaml:"controller"`
}

// RecordDTO is one dated sample.
type RecordDTO struct {
	Date  string  `yaml:"date"`
	Value float64 `yaml:"value"`
}

// StyleDTO holds shape presentation attributes.
type StyleDTO struct {
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	LineWidth   float64 `yaml:"lineWidth"`
	Opacity     float64 `yaml:"opacity"`
	FontSize    float64 `yaml:"fontSize"`
	FillOpacity float64 `yaml:"fillOpacity"`
}

// IntervalDTO is the bar series drawn under the trend line.
type IntervalDTO struct {
	Data  []float64 `yaml:"data"`
	Style StyleDTO  `yaml:"style"`
}

// TrendDTO configures the trend variant.
type TrendDTO struct {
	Data            []RecordDTO  `yaml:"data"`
	Smooth          *bool        `yaml:"smooth"`
	IsArea          *bool        `yaml:"isArea"`
	Interval        *IntervalDTO `yaml:"interval"`
	BackgroundStyle StyleDTO     `yaml:"backgroundStyle"`
	LineStyle       StyleDTO     `yaml:"lineStyle"`
	AreaStyle       StyleDTO     `yaml:"areaStyle"`
}

// SliderDTO configures the two-handle slider.
type SliderDTO struct {
	Start           *float64 `yaml:"start"`
	End             *float64 `yaml:"end"`
	MinText         string   `yaml:"minText"`
	MaxText         string   `yaml:"maxText"`
	Height          float64  `yaml:"height"`
	Granularity     string   `yaml:"granularity"`
	HandlerStyle    StyleDTO `yaml:"handlerStyle"`
	BackgroundStyle StyleDTO `yaml:"backgroundStyle"`
	ForegroundStyle StyleDTO `yaml:"foregroundStyle"`
	TextStyle       StyleDTO `yaml:"textStyle"`
}

// SliceDTO configures the tick based selector.
type SliceDTO struct {
	Start *float64    `yaml:"start"`
	End   *float64    `yaml:"end"`
	Data  []RecordDTO `yaml:"data"`
}

// ControllerDTO configures playback.
type ControllerDTO struct {
	Speed         *float64 `yaml:"speed"`
	Loop          *bool    `yaml:"loop"`
	FrameInterval string   `yaml:"frameInterval"`
}
