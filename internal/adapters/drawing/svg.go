package drawing

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/zerr"
)

// SVGSurface renders groups as SVG markup.
type SVGSurface struct {
	surface
}

// NewSVGSurface creates an SVG surface of the given size.
func NewSVGSurface(width, height float64) *SVGSurface {
	return &SVGSurface{surface{kind: domain.RendererSVG, width: width, height: height}}
}

// Render writes the SVG document to w. Each group becomes a <g> element
// with the group name as id; hidden shapes are skipped.
func (s *SVGSurface) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(px(s.width), px(s.height))

	for _, g := range s.groups {
		canvas.Gid(g.Name())
		for _, shape := range g.Shapes() {
			if !shape.Hidden {
				drawSVGShape(canvas, shape)
			}
		}
		canvas.Gend()
	}

	canvas.End()
	if err := bw.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "renderer", string(domain.RendererSVG))
	}
	return nil
}

func drawSVGShape(canvas *svg.SVG, shape domain.Shape) {
	st := shape.Style
	if (shape.Kind == domain.ShapePolyline || shape.Kind == domain.ShapePolygon) && len(shape.Points) == 0 {
		return
	}

	switch shape.Kind {
	case domain.ShapeRect:
		canvas.Rect(px(shape.X), px(shape.Y), px(shape.Width), px(shape.Height), fillStyle(st))
	case domain.ShapeCircle:
		canvas.Circle(px(shape.X), px(shape.Y), px(shape.R), fillStyle(st))
	case domain.ShapeLine:
		canvas.Line(px(shape.X), px(shape.Y), px(shape.X2), px(shape.Y2), strokeStyle(st))
	case domain.ShapePolyline:
		xs, ys := points(shape.Points)
		canvas.Polyline(xs, ys, strokeStyle(st))
	case domain.ShapePolygon:
		xs, ys := points(shape.Points)
		canvas.Polygon(xs, ys, fillStyle(st))
	case domain.ShapeText:
		size := st.FontSize
		if size == 0 {
			size = 12
		}
		canvas.Text(px(shape.X), px(shape.Y), shape.Text, fmt.Sprintf(
			"fill:%s;fill-opacity:%s;font-size:%spx;font-family:sans-serif;text-anchor:middle;dominant-baseline:middle",
			colorOr(st.Fill, "#000000"), num(opacity(st.Opacity)), num(size),
		))
	}
}

func fillStyle(st domain.ShapeStyle) string {
	parts := []string{
		"fill:" + colorOr(st.Fill, "none"),
		"fill-opacity:" + num(opacity(st.Opacity)),
	}
	if st.Stroke != "" {
		parts = append(parts, "stroke:"+st.Stroke, "stroke-width:"+num(lineWidth(st.LineWidth)))
	}
	return strings.Join(parts, ";")
}

func strokeStyle(st domain.ShapeStyle) string {
	return strings.Join([]string{
		"fill:none",
		"stroke:" + colorOr(st.Stroke, "#000000"),
		"stroke-width:" + num(lineWidth(st.LineWidth)),
		"stroke-opacity:" + num(opacity(st.Opacity)),
	}, ";")
}

func points(pts []domain.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return xs, ys
}

func px(v float64) int {
	return int(math.Round(v))
}

func num(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

func opacity(o float64) float64 {
	if o <= 0 || o > 1 {
		return 1
	}
	return o
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
