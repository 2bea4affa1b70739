package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/wmdecor/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an offscreen RGBA surface implementing Drawer.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

func NewCanvas(width, height int, face font.Face) *Canvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height)), face: face}
}

// Image exposes the backing pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetFace swaps the face used by the text primitives.
func (c *Canvas) SetFace(face font.Face) {
	if face != nil {
		c.face = face
	}
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(col color.Color) {
	Fill(c.img, col)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	metrics := c.face.Metrics()
	width := font.MeasureString(c.face, text).Ceil()
	return TextMetrics{
		Width:      width,
		Height:     metrics.Ascent.Ceil() + metrics.Descent.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	m := c.MeasureText(text, style)
	switch style.Align {
	case TextAlignCenter:
		x -= m.Width / 2
	case TextAlignRight:
		x -= m.Width
	}
	fg := style.Color
	if fg == nil {
		fg = Black
	}
	drawer := &font.Drawer{Dst: c.img, Src: image.NewUniform(fg), Face: c.face}
	drawer.Dot = fixed.P(x, y+m.Ascent)
	drawer.DrawString(text)
	return m
}

func (c *Canvas) ImageSize(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) DrawImage(img image.Image, x, y int, opts ImageOpts) {
	if img == nil {
		return
	}
	op := draw.Src
	if opts.Over {
		op = draw.Over
	}
	b := img.Bounds()
	draw.Draw(c.img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), img, b.Min, op)
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	if img == nil || rect.Empty() {
		return
	}
	dst := c.img.SubImage(rect).(*image.RGBA)
	src := img.Bounds()
	if src.Dx() == 1 && src.Dy() == 1 {
		// A solid swatch covers the rect whatever the mode.
		c.FillRect(rect, img.At(src.Min.X, src.Min.Y))
		return
	}
	switch mode {
	case ScaleModeStretch:
		xdraw.NearestNeighbor.Scale(dst, rect, img, src, xdraw.Src, nil)
	case ScaleModeFit, ScaleModeFill:
		sx := float64(rect.Dx()) / float64(src.Dx())
		sy := float64(rect.Dy()) / float64(src.Dy())
		scale := sx
		if (mode == ScaleModeFit) == (sy < sx) {
			scale = sy
		}
		w := int(float64(src.Dx())*scale + 0.5)
		h := int(float64(src.Dy())*scale + 0.5)
		xdraw.NearestNeighbor.Scale(dst, layout.Center(rect, w, h), img, src, xdraw.Src, nil)
	case ScaleModeTile:
		for y := rect.Min.Y; y < rect.Max.Y; y += src.Dy() {
			for x := rect.Min.X; x < rect.Max.X; x += src.Dx() {
				draw.Draw(dst, image.Rect(x, y, x+src.Dx(), y+src.Dy()), img, src.Min, draw.Src)
			}
		}
	case ScaleModeCenter:
		draw.Draw(dst, layout.Center(rect, src.Dx(), src.Dy()), img, src.Min, draw.Src)
	}
}
