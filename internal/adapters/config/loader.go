// Package config provides the timebar.yaml configuration loader.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the configuration at path and layers it over domain.DefaultConfig.
// An empty path or a directory is searched upwards for domain.ConfigFileName.
func (l *Loader) Load(path string) (*domain.Config, error) {
	configPath, err := l.resolve(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if cfg.Series().Len() == 0 {
		l.Logger.Warn(fmt.Sprintf("%s has no %s data, filter passes will be skipped", configPath, seriesKey(cfg.Type)))
	}

	return cfg, nil
}

func (l *Loader) resolve(path string) (string, error) {
	if path == "" {
		cwd, err := l.FS.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
		}
		return l.findConfiguration(cwd)
	}

	info, err := l.FS.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return l.findConfiguration(path)
	}
	return path, nil
}

// findConfiguration walks from dir towards the filesystem root and returns
// the first timebar.yaml it finds.
func (l *Loader) findConfiguration(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", dir)
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func seriesKey(t domain.BarType) string {
	if t == domain.TypeSlice {
		return "slice"
	}
	return "trend"
}

func toDomain(f *File) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	setFloat(&cfg.X, f.X)
	setFloat(&cfg.Y, f.Y)
	setFloat(&cfg.Width, f.Width)
	setFloat(&cfg.Height, f.Height)
	setFloat(&cfg.Padding, f.Padding)
	setString(&cfg.Container, f.Container)
	setString(&cfg.ClassName, f.ClassName)

	if f.Type != "" {
		cfg.Type = domain.BarType(f.Type)
	}
	if !cfg.Type.Valid() {
		return nil, zerr.With(domain.ErrInvalidBarType, "type", f.Type)
	}

	if f.Renderer != "" {
		cfg.Renderer = domain.RendererKind(f.Renderer)
	}
	if !cfg.Renderer.Valid() {
		return nil, zerr.With(domain.ErrInvalidRendererKind, "renderer", f.Renderer)
	}

	if cfg.Width <= 2*cfg.Padding {
		return nil, zerr.With(zerr.With(domain.ErrInvalidSize, "width", cfg.Width), "padding", cfg.Padding)
	}

	if t := f.Trend; t != nil {
		cfg.Trend.Data = toSeries(t.Data)
		setBool(&cfg.Trend.Smooth, t.Smooth)
		setBool(&cfg.Trend.IsArea, t.IsArea)
		if t.Interval != nil {
			cfg.Trend.Interval = &domain.Interval{Data: t.Interval.Data, Style: toStyle(t.Interval.Style)}
		}
		cfg.Trend.BackgroundStyle = toStyle(t.BackgroundStyle)
		cfg.Trend.LineStyle = toStyle(t.LineStyle)
		cfg.Trend.AreaStyle = toStyle(t.AreaStyle)
	}

	if s := f.Slider; s != nil {
		setFloat(&cfg.Slider.Start, s.Start)
		setFloat(&cfg.Slider.End, s.End)
		setString(&cfg.Slider.MinText, s.MinText)
		setString(&cfg.Slider.MaxText, s.MaxText)
		cfg.Slider.Height = s.Height
		if s.Granularity != "" {
			cfg.Slider.Granularity = domain.Granularity(s.Granularity)
		}
		cfg.Slider.HandlerStyle = toStyle(s.HandlerStyle)
		cfg.Slider.BackgroundStyle = toStyle(s.BackgroundStyle)
		cfg.Slider.ForegroundStyle = toStyle(s.ForegroundStyle)
		cfg.Slider.TextStyle = toStyle(s.TextStyle)
	}
	if !cfg.Slider.Granularity.Valid() {
		return nil, zerr.With(domain.ErrInvalidGranularity, "granularity", string(cfg.Slider.Granularity))
	}
	if err := validateRange("slider", cfg.Slider.Start, cfg.Slider.End); err != nil {
		return nil, err
	}

	if s := f.Slice; s != nil {
		setFloat(&cfg.Slice.Start, s.Start)
		setFloat(&cfg.Slice.End, s.End)
		cfg.Slice.Data = toSeries(s.Data)
	}
	if err := validateRange("slice", cfg.Slice.Start, cfg.Slice.End); err != nil {
		return nil, err
	}

	if c := f.Controller; c != nil {
		setFloat(&cfg.Controller.Speed, c.Speed)
		setBool(&cfg.Controller.Loop, c.Loop)
		if c.FrameInterval != "" {
			d, err := time.ParseDuration(c.FrameInterval)
			if err != nil || d <= 0 {
				return nil, zerr.With(domain.ErrConfigParseFailed, "frameInterval", c.FrameInterval)
			}
			cfg.Controller.FrameInterval = d
		}
	}
	if cfg.Controller.Speed < domain.MinSpeed || cfg.Controller.Speed > domain.MaxSpeed {
		return nil, zerr.With(domain.ErrInvalidSpeed, "speed", cfg.Controller.Speed)
	}

	return &cfg, nil
}

func validateRange(block string, start, end float64) error {
	r := domain.NormalizedRange{Start: start, End: end}
	if !r.Valid() {
		return zerr.With(zerr.With(zerr.With(domain.ErrInvalidRange, "block", block), "start", start), "end", end)
	}
	return nil
}

func toSeries(records []RecordDTO) domain.Series {
	if len(records) == 0 {
		return nil
	}
	s := make(domain.Series, len(records))
	for i, r := range records {
		s[i] = domain.Record{Date: r.Date, Value: r.Value}
	}
	return s
}

func toStyle(s StyleDTO) domain.ShapeStyle {
	return domain.ShapeStyle{
		Fill:        s.Fill,
		Stroke:      s.Stroke,
		LineWidth:   s.LineWidth,
		Opacity:     s.Opacity,
		FontSize:    s.FontSize,
		FillOpacity: s.FillOpacity,
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
