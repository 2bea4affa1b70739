// Package cursor holds the compiled-in 16x16 monochrome pointer sprites.
package cursor

import (
	"image"
	"image/color"
)

// Size is the edge length of a Cursor sprite in pixels.
const Size = 16

// Cursor is a 16x16 monochrome sprite. Offset is the negated hotspot: the
// sprite is drawn at pointer+Offset. Rows are 2 bytes, most significant bit
// first. Set pixels are black, Clr pixels are white, the rest is transparent.
type Cursor struct {
	Offset image.Point
	Clr    [2 * 16]uint8
	Set    [2 * 16]uint8
}

// Cursor2 is a 32x32 high-DPI cursor.
type Cursor2 struct {
	Offset image.Point
	Clr    [4 * 32]uint8
	Set    [4 * 32]uint8
}

// Hotspot returns the pixel within the sprite that tracks the pointer.
func (c *Cursor) Hotspot() image.Point {
	return image.Pt(-c.Offset.X, -c.Offset.Y)
}

// Mask returns the union of both planes, i.e. every pixel the cursor covers.
func (c *Cursor) Mask() [2 * 16]uint8 {
	var m [2 * 16]uint8
	for i := range m {
		m[i] = c.Clr[i] | c.Set[i]
	}
	return m
}

func bitAt(plane []uint8, stride, x, y int) bool {
	b := plane[y*stride+x/8]
	return b&(0x80>>uint(x%8)) != 0
}

// Image renders the cursor into a 16x16 image with a transparent background.
func (c *Cursor) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch {
			case bitAt(c.Set[:], 2, x, y):
				img.SetNRGBA(x, y, color.NRGBA{A: 0xFF})
			case bitAt(c.Clr[:], 2, x, y):
				img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	return img
}

var expand = [16]uint8{
	0x00, 0x03, 0x0c, 0x0f,
	0x30, 0x33, 0x3c, 0x3f,
	0xc0, 0xc3, 0xcc, 0xcf,
	0xf0, 0xf3, 0xfc, 0xff,
}

// ScaleTo writes a pixel-doubled version of c into c2.
func (c *Cursor) ScaleTo(c2 *Cursor2) {
	*c2 = Cursor2{Offset: c.Offset.Mul(2)}
	for y := 0; y < 16; y++ {
		for i := 0; i < 2; i++ {
			clr, set := c.Clr[2*y+i], c.Set[2*y+i]
			hiClr, loClr := expand[clr>>4], expand[clr&15]
			hiSet, loSet := expand[set>>4], expand[set&15]
			for _, row := range []int{8 * y, 8*y + 4} {
				c2.Clr[row+2*i] = hiClr
				c2.Clr[row+2*i+1] = loClr
				c2.Set[row+2*i] = hiSet
				c2.Set[row+2*i+1] = loSet
			}
		}
	}
}

// Image renders the high-DPI cursor the same way Cursor.Image does.
func (c *Cursor2) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2*Size, 2*Size))
	for y := 0; y < 2*Size; y++ {
		for x := 0; x < 2*Size; x++ {
			switch {
			case bitAt(c.Set[:], 4, x, y):
				img.SetNRGBA(x, y, color.NRGBA{A: 0xFF})
			case bitAt(c.Clr[:], 4, x, y):
				img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	return img
}

// Corners maps the 3x3 resize grid, row-major, to its cursor. The centre
// slot is nil.
var Corners = [9]*Cursor{
	&TopLeft, &Top, &TopRight,
	&Left, nil, &Right,
	&BottomLeft, &Bottom, &BottomRight,
}

// Corner returns the resize cursor for grid column col and row row, each in
// 0..2. It returns nil for the centre and for out of range positions.
func Corner(col, row int) *Cursor {
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return nil
	}
	return Corners[row*3+col]
}

var byName = map[string]*Cursor{
	"cross":        &Cross,
	"box":          &Box,
	"sight":        &Sight,
	"whitearrow":   &WhiteArrow,
	"default":      &Default,
	"query":        &Query,
	"top-left":     &TopLeft,
	"top":          &Top,
	"top-right":    &TopRight,
	"right":        &Right,
	"bottom-right": &BottomRight,
	"bottom":       &Bottom,
	"bottom-left":  &BottomLeft,
	"left":         &Left,
}

// ByName looks up a cursor by its configuration name.
func ByName(name string) (*Cursor, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns every known cursor name in display order.
func Names() []string {
	return []string{
		"default", "whitearrow", "cross", "box", "sight", "query",
		"top-left", "top", "top-right", "right",
		"bottom-right", "bottom", "bottom-left", "left",
	}
}
