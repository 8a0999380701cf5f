// Package drawing implements the SVG and raster drawing surfaces.
package drawing

import (
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/zerr"
)

// surface holds the groups shared by both backends.
type surface struct {
	kind   domain.RendererKind
	width  float64
	height float64
	groups []*Group
}

// Kind reports which renderer backs the surface.
func (s *surface) Kind() domain.RendererKind {
	return s.kind
}

// Size returns the surface width and height.
func (s *surface) Size() (width, height float64) {
	return s.width, s.height
}

// AddGroup creates a named group drawn after every existing group.
func (s *surface) AddGroup(name string) ports.Group {
	g := newGroup(name)
	s.groups = append(s.groups, g)
	return g
}

// Groups returns the groups in draw order.
func (s *surface) Groups() []*Group {
	return s.groups
}

// NewSurface returns the SVG surface for domain.RendererSVG and the raster
// surface for every other kind.
func NewSurface(kind domain.RendererKind, width, height float64) ports.DrawingSurface {
	if kind == domain.RendererSVG {
		return NewSVGSurface(width, height)
	}
	return NewRasterSurface(width, height)
}

// KindForPath returns the renderer kind that encodes to the extension of path.
func KindForPath(path string) (domain.RendererKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return domain.RendererSVG, nil
	case ".png":
		return domain.RendererCanvas, nil
	default:
		return "", zerr.With(domain.ErrUnsupportedRenderFormat, "path", path)
	}
}

// parseColor converts "#rgb" or "#rrggbb" and an opacity in [0,1] into a color.
// Unparseable colors are transparent.
func parseColor(hex string, opacity float64) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}
	}
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(opacity * 255),
	}
}
