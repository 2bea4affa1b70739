package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, Black)
			} else {
				img.Set(x, y, White)
			}
		}
	}
	return img
}

func TestCanvas_SizeAndFill(t *testing.T) {
	c := NewCanvas(40, 30, nil)
	w, h := c.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)

	c.Fill(WarnRed)
	assert.Equal(t, WarnRed, at(c.Image(), 39, 29))

	c.FillRect(image.Rect(5, 5, 10, 10), HoverGray)
	assert.Equal(t, HoverGray, at(c.Image(), 5, 5))
	assert.Equal(t, WarnRed, at(c.Image(), 10, 10))
}

func TestCanvas_DrawTextAlignments(t *testing.T) {
	c := NewCanvas(100, 20, basicfont.Face7x13)
	c.Fill(White)

	m := c.DrawText("ab", 50, 0, TextStyle{Color: Black, Align: TextAlignRight})
	assert.Equal(t, 14, m.Width)
	assert.Equal(t, 13, m.LineHeight)

	inked := func(x0, x1 int) bool {
		for y := 0; y < 20; y++ {
			for x := x0; x < x1; x++ {
				if at(c.Image(), x, y) != White {
					return true
				}
			}
		}
		return false
	}
	assert.True(t, inked(36, 50), "right-aligned text ends at x")
	assert.False(t, inked(50, 100))
}

func TestCanvas_DrawImageOver(t *testing.T) {
	c := NewCanvas(4, 4, nil)
	c.Fill(White)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{A: 0xFF})

	c.DrawImage(src, 1, 1, ImageOpts{Over: true})
	assert.Equal(t, Black, at(c.Image(), 1, 1))
	assert.Equal(t, White, at(c.Image(), 2, 1), "transparent pixel keeps destination")

	c.DrawImage(src, 1, 2, ImageOpts{})
	assert.Equal(t, color.RGBA{}, at(c.Image(), 2, 2), "Src replaces with transparent")
}

func TestCanvas_DrawImageInRect_SolidSwatch(t *testing.T) {
	c := NewCanvas(20, 20, nil)
	swatch := image.NewRGBA(image.Rect(0, 0, 1, 1))
	swatch.Set(0, 0, WarnRed)
	c.DrawImageInRect(swatch, image.Rect(0, 0, 20, 20), ScaleModeTile)
	assert.Equal(t, WarnRed, at(c.Image(), 19, 19))
}

func TestCanvas_DrawImageInRect_Tile(t *testing.T) {
	c := NewCanvas(8, 8, nil)
	c.DrawImageInRect(checker(2, 2), image.Rect(0, 0, 8, 8), ScaleModeTile)
	assert.Equal(t, Black, at(c.Image(), 6, 6))
	assert.Equal(t, White, at(c.Image(), 7, 6))
}

func TestCanvas_DrawImageInRect_StretchAndFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, Black)
	src.Set(1, 0, WarnRed)

	c := NewCanvas(8, 8, nil)
	c.Fill(White)
	c.DrawImageInRect(src, image.Rect(0, 0, 8, 8), ScaleModeStretch)
	assert.Equal(t, Black, at(c.Image(), 0, 7))
	assert.Equal(t, WarnRed, at(c.Image(), 7, 0))

	c.Fill(White)
	c.DrawImageInRect(src, image.Rect(0, 0, 8, 8), ScaleModeFit)
	assert.Equal(t, White, at(c.Image(), 0, 0), "letterboxed above")
	assert.Equal(t, Black, at(c.Image(), 0, 4))
	assert.Equal(t, WarnRed, at(c.Image(), 7, 4))

	c.Fill(White)
	c.DrawImageInRect(src, image.Rect(0, 0, 8, 8), ScaleModeFill)
	assert.Equal(t, Black, at(c.Image(), 0, 0))
	assert.Equal(t, WarnRed, at(c.Image(), 7, 7))
}

func TestCanvas_DrawImageInRect_CenterClips(t *testing.T) {
	c := NewCanvas(6, 6, nil)
	c.Fill(White)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Fill(src, Black)
	c.DrawImageInRect(src, image.Rect(0, 0, 6, 6), ScaleModeCenter)
	assert.Equal(t, Black, at(c.Image(), 2, 2))
	assert.Equal(t, Black, at(c.Image(), 3, 3))
	assert.Equal(t, White, at(c.Image(), 1, 1))
}
