// Package menu keeps the colours used to draw pop-up menus and renders a
// simple menu for previews.
package menu

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Palette is the set of menu colours.
type Palette struct {
	Back    color.Color
	High    color.Color
	Border  color.Color
	Text    color.Color
	SelText color.Color
}

// Styler holds the current palette. It is safe for concurrent use.
type Styler struct {
	mu         sync.RWMutex
	palette    Palette
	generation int
}

func NewStyler() *Styler {
	return &Styler{palette: Palette{
		Back:    color.White,
		High:    color.Black,
		Border:  color.Black,
		Text:    color.Black,
		SelText: color.White,
	}}
}

// SetMenuColors replaces the palette.
func (s *Styler) SetMenuColors(back, high, border, text, selText color.Color) {
	s.mu.Lock()
	s.palette = Palette{Back: back, High: high, Border: border, Text: text, SelText: selText}
	s.generation++
	s.mu.Unlock()
}

func (s *Styler) Palette() Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette
}

// Generation counts SetMenuColors calls.
func (s *Styler) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

const (
	borderWidth = 2
	itemPadding = 2
)

// Size returns the rectangle size a menu of items needs with face.
func Size(items []string, face font.Face) image.Point {
	w := 0
	for _, it := range items {
		if adv := font.MeasureString(face, it).Ceil(); adv > w {
			w = adv
		}
	}
	lh := face.Metrics().Height.Ceil() + 2*itemPadding
	return image.Pt(w+2*(borderWidth+itemPadding), len(items)*lh+2*borderWidth)
}

// Draw renders items into r on dst, highlighting selected (-1 for none).
// Items are centred on their rows.
func Draw(dst draw.Image, r image.Rectangle, p Palette, face font.Face, items []string, selected int) {
	draw.Draw(dst, r, image.NewUniform(p.Border), image.Point{}, draw.Src)
	inner := r.Inset(borderWidth)
	draw.Draw(dst, inner, image.NewUniform(p.Back), image.Point{}, draw.Src)

	m := face.Metrics()
	lh := m.Height.Ceil() + 2*itemPadding
	for i, it := range items {
		row := image.Rect(inner.Min.X, inner.Min.Y+i*lh, inner.Max.X, inner.Min.Y+(i+1)*lh).Intersect(inner)
		if row.Empty() {
			break
		}
		fg := p.Text
		if i == selected {
			draw.Draw(dst, row, image.NewUniform(p.High), image.Point{}, draw.Src)
			fg = p.SelText
		}
		w := font.MeasureString(face, it).Ceil()
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
		d.Dot = fixed.P(row.Min.X+(row.Dx()-w)/2, row.Min.Y+itemPadding+m.Ascent.Ceil())
		d.DrawString(it)
	}
}
