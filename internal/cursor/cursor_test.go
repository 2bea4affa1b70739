package cursor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorners_AllButCentreAreSet(t *testing.T) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := Corner(col, row)
			if col == 1 && row == 1 {
				assert.Nil(t, c, "centre slot must be empty")
				continue
			}
			require.NotNil(t, c, "col=%d row=%d", col, row)
			assert.Len(t, c.Clr, 32)
			assert.Len(t, c.Set, 32)
			assert.NotEqual(t, [32]uint8{}, c.Mask(), "col=%d row=%d has an empty mask", col, row)
		}
	}
}

func TestCorner_OutOfRange(t *testing.T) {
	assert.Nil(t, Corner(-1, 0))
	assert.Nil(t, Corner(3, 0))
	assert.Nil(t, Corner(0, 3))
}

func TestCorners_OppositeCornersShareShape(t *testing.T) {
	assert.Equal(t, TopLeft.Set, BottomRight.Set)
	assert.Equal(t, TopRight.Set, BottomLeft.Set)
	assert.Equal(t, Top.Set, Bottom.Set)
	assert.Equal(t, Left.Set, Right.Set)
}

func TestHotspot_NegatesOffset(t *testing.T) {
	assert.Equal(t, image.Pt(7, 7), Cross.Hotspot())
	assert.Equal(t, image.Pt(2, 0), Default.Hotspot())
	assert.Equal(t, image.Pt(9, 6), TopRight.Hotspot())
}

func TestWhiteArrow_SwapsDefaultPlanes(t *testing.T) {
	assert.Equal(t, Default.Set, WhiteArrow.Clr)
	assert.Equal(t, Default.Clr, WhiteArrow.Set)
}

func TestImage_PlanesToColours(t *testing.T) {
	img := Cross.Image()
	require.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())

	// Row 0 of Cross: Clr 0x00 0x00, Set 0x01 0x80 -> pixels 7 and 8 are black.
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.NRGBAAt(7, 0))
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.NRGBAAt(8, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))

	// Row 1: Clr 0x01 0x80 (pixels 7,8), Set 0x02 0x40 (pixels 6,9).
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, img.NRGBAAt(7, 1))
	assert.Equal(t, color.NRGBA{A: 0xFF}, img.NRGBAAt(6, 1))
}

func TestScaleTo_DoublesPixels(t *testing.T) {
	var c2 Cursor2
	Box.ScaleTo(&c2)
	assert.Equal(t, Box.Offset.Mul(2), c2.Offset)

	small := Box.Image()
	big := c2.Image()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			want := small.NRGBAAt(x, y)
			for _, p := range []image.Point{{2 * x, 2 * y}, {2*x + 1, 2 * y}, {2 * x, 2*y + 1}, {2*x + 1, 2*y + 1}} {
				require.Equal(t, want, big.NRGBAAt(p.X, p.Y), "pixel %v of (%d,%d)", p, x, y)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, c, name)
	}
	_, ok := ByName("nope")
	assert.False(t, ok)
}
