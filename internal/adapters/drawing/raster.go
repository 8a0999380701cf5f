package drawing

import (
	"image"
	"io"

	"git.sr.ht/~sbinet/gg"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/image/font/basicfont"
)

// RasterSurface renders groups into an RGBA image encoded as PNG.
type RasterSurface struct {
	surface
}

// NewRasterSurface creates a raster surface of the given size.
func NewRasterSurface(width, height float64) *RasterSurface {
	return &RasterSurface{surface{kind: domain.RendererCanvas, width: width, height: height}}
}

// Image draws every visible shape and returns the resulting image.
func (s *RasterSurface) Image() image.Image {
	dc := gg.NewContext(px(s.width), px(s.height))
	dc.SetFontFace(basicfont.Face7x13)

	for _, g := range s.groups {
		for _, shape := range g.Shapes() {
			if !shape.Hidden {
				drawRasterShape(dc, shape)
			}
		}
	}
	return dc.Image()
}

// Render encodes the image to w as PNG.
func (s *RasterSurface) Render(w io.Writer) error {
	dc := gg.NewContextForImage(s.Image())
	if err := dc.EncodePNG(w); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "renderer", string(domain.RendererCanvas))
	}
	return nil
}

func drawRasterShape(dc *gg.Context, shape domain.Shape) {
	st := shape.Style
	switch shape.Kind {
	case domain.ShapeRect:
		dc.DrawRectangle(shape.X, shape.Y, shape.Width, shape.Height)
		fillAndStroke(dc, st)
	case domain.ShapeCircle:
		dc.DrawCircle(shape.X, shape.Y, shape.R)
		fillAndStroke(dc, st)
	case domain.ShapeLine:
		dc.DrawLine(shape.X, shape.Y, shape.X2, shape.Y2)
		stroke(dc, st)
	case domain.ShapePolyline, domain.ShapePolygon:
		if len(shape.Points) == 0 {
			return
		}
		dc.NewSubPath()
		dc.MoveTo(shape.Points[0].X, shape.Points[0].Y)
		for _, p := range shape.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if shape.Kind == domain.ShapePolygon {
			dc.ClosePath()
			fillAndStroke(dc, st)
			return
		}
		stroke(dc, st)
	case domain.ShapeText:
		dc.SetColor(parseColor(colorOr(st.Fill, "#000000"), st.Opacity))
		dc.DrawStringAnchored(shape.Text, shape.X, shape.Y, 0.5, 0.5)
	}
}

func fillAndStroke(dc *gg.Context, st domain.ShapeStyle) {
	if st.Fill != "" {
		dc.SetColor(parseColor(st.Fill, st.Opacity))
		if st.Stroke != "" {
			dc.FillPreserve()
		} else {
			dc.Fill()
			return
		}
	}
	stroke(dc, st)
}

func stroke(dc *gg.Context, st domain.ShapeStyle) {
	if st.Stroke == "" {
		dc.ClearPath()
		return
	}
	dc.SetColor(parseColor(st.Stroke, st.Opacity))
	dc.SetLineWidth(lineWidth(st.LineWidth))
	dc.Stroke()
}
