package decor

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/rook-computer/wmdecor/internal/render"
	"github.com/rook-computer/wmdecor/internal/render/layout"
)

// Button identifies a window-control button.
type Button int

const (
	Close Button = iota
	Maximize
	Minimize

	numButtons
)

// Buttons lists every button in title bar order, rightmost first.
var Buttons = []Button{Close, Maximize, Minimize}

func (b Button) String() string {
	switch b {
	case Close:
		return "close"
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Pair is the normal and hovered appearance of one button. Both images are
// ButtonSize x ButtonSize.
type Pair struct {
	Normal draw.Image
	Hover  draw.Image
}

func (b *Builder) BuildClose() (Pair, error)    { return b.BuildButton(Close) }
func (b *Builder) BuildMaximize() (Pair, error) { return b.BuildButton(Maximize) }
func (b *Builder) BuildMinimize() (Pair, error) { return b.BuildButton(Minimize) }

// BuildButton allocates both images of btn. The normal image is the title
// colour with a hover-gray disc and the button's glyph; the hover image is a
// copy of it with a sunken bevel.
func (b *Builder) BuildButton(btn Button) (Pair, error) {
	if btn < 0 || btn >= numButtons {
		return Pair{}, fmt.Errorf("%w: %v", ErrUnknownButton, btn)
	}
	if err := b.check(); err != nil {
		return Pair{}, err
	}
	n := b.ButtonSize()
	if n <= 0 {
		return Pair{}, fmt.Errorf("%s button: %w (got %d)", btn, ErrButtonSize, n)
	}
	r := image.Rect(0, 0, n, n)

	normal, err := b.Display.AllocImage(r, render.CMAP8, b.Config.WindowTitleColor)
	if err != nil {
		return Pair{}, fmt.Errorf("%s button: %w", btn, err)
	}
	hover, err := b.Display.AllocImage(r, render.CMAP8, render.HoverGray)
	if err != nil {
		_ = b.Display.FreeImage(normal)
		return Pair{}, fmt.Errorf("%s hover button: %w", btn, err)
	}

	centre := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	render.FillEllipse(normal, centre, r.Dx()/2-1, r.Dx()/2-1, render.HoverGray)
	drawGlyph(btn, normal, r, b.Config.BorderWidth)

	render.Copy(hover, normal)
	render.Border3D(hover, r, 1, render.Black, render.White)
	return Pair{Normal: normal, Hover: hover}, nil
}

func drawGlyph(btn Button, img draw.Image, r image.Rectangle, border int) {
	g := layout.Inset(r, border)
	switch btn {
	case Close:
		render.Line(img, g.Min, g.Max, 0, render.Black)
		render.Line(img, image.Pt(g.Max.X, g.Min.Y), image.Pt(g.Min.X, g.Max.Y), 0, render.Black)
	case Maximize:
		centre := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
		rad := r.Dx()/2 - 4
		render.Ellipse(img, centre, rad, rad, 0, render.Black)
	case Minimize:
		render.Line(img, image.Pt(g.Min.X, g.Max.Y), g.Max, 0, render.Black)
	}
}
