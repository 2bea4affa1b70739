package decor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/menu"
	"github.com/rook-computer/wmdecor/internal/render"
)

// fixedFace reports a chosen line height so sizes are easy to predict.
type fixedFace struct {
	font.Face
	height int
}

func (f fixedFace) Metrics() font.Metrics {
	m := f.Face.Metrics()
	m.Height = fixed.I(f.height)
	return m
}

func face11() font.Face { return fixedFace{Face: basicfont.Face7x13, height: 11} }

func newTestBuilder(d render.Display) *Builder {
	return NewBuilder(d, face11(), config.DefaultConfig())
}

// in converts c to what img can store, so colour-mapped pixels compare
// against their palette entry.
func in(img image.Image, c color.Color) color.Color {
	return img.ColorModel().Convert(c)
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.Color, msg string) {
	t.Helper()
	w := in(img, want)
	got := img.At(x, y)
	wr, wg, wb, wa := w.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga}, "%s at (%d,%d)", msg, x, y)
}

func TestBuilder_Sizes(t *testing.T) {
	b := newTestBuilder(render.NewMemDisplay())
	assert.Equal(t, 15, b.TitleBarHeight())
	assert.Equal(t, 11, b.ButtonSize())

	b.Config.BorderWidth = 0
	assert.Equal(t, 11, b.TitleBarHeight())
	assert.Equal(t, 11, b.ButtonSize())
}

func TestBuildButton_ZeroSizeFails(t *testing.T) {
	d := render.NewMemDisplay()
	b := NewBuilder(d, fixedFace{Face: basicfont.Face7x13, height: 0}, config.DefaultConfig())

	_, err := b.BuildClose()
	assert.ErrorIs(t, err, ErrButtonSize)
	assert.Equal(t, 0, d.Live())
}

func TestBuildButton_Unknown(t *testing.T) {
	_, err := newTestBuilder(render.NewMemDisplay()).BuildButton(Button(7))
	assert.ErrorIs(t, err, ErrUnknownButton)
	assert.Equal(t, "button(7)", Button(7).String())
}

func TestBuildButton_IncompleteBuilder(t *testing.T) {
	_, err := (&Builder{}).BuildButton(Close)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestBuildClose_Pixels(t *testing.T) {
	b := newTestBuilder(render.NewMemDisplay())
	pair, err := b.BuildClose()
	require.NoError(t, err)

	n, h := pair.Normal, pair.Hover
	assert.Equal(t, image.Rect(0, 0, 11, 11), n.Bounds())
	assert.Equal(t, image.Rect(0, 0, 11, 11), h.Bounds())

	title := b.Config.WindowTitleColor
	assertPixel(t, n, 0, 0, title, "corner outside the disc")
	assertPixel(t, n, 5, 1, render.HoverGray, "disc")
	for _, p := range []image.Point{{2, 2}, {5, 5}, {9, 9}, {9, 2}, {2, 9}} {
		assertPixel(t, n, p.X, p.Y, render.Black, "cross")
	}

	assertPixel(t, h, 0, 0, render.Black, "top-left bevel")
	assertPixel(t, h, 5, 0, render.Black, "top bevel")
	assertPixel(t, h, 5, 10, render.White, "bottom bevel")
	assertPixel(t, h, 10, 10, render.White, "bottom-right bevel")
	for y := 1; y < 10; y++ {
		for x := 1; x < 10; x++ {
			assert.Equal(t, n.At(x, y), h.At(x, y), "hover interior at (%d,%d)", x, y)
		}
	}
}

func TestBuildMaximize_Pixels(t *testing.T) {
	b := newTestBuilder(render.NewMemDisplay())
	pair, err := b.BuildMaximize()
	require.NoError(t, err)

	for _, p := range []image.Point{{5, 5}, {4, 5}, {6, 5}, {5, 4}, {5, 6}} {
		assertPixel(t, pair.Normal, p.X, p.Y, render.Black, "ring")
	}
	assertPixel(t, pair.Normal, 4, 4, render.HoverGray, "outside the ring")
	assertPixel(t, pair.Normal, 2, 2, render.HoverGray, "no cross")
}

func TestBuildMinimize_Pixels(t *testing.T) {
	b := newTestBuilder(render.NewMemDisplay())
	pair, err := b.BuildMinimize()
	require.NoError(t, err)

	for x := 2; x <= 9; x++ {
		assertPixel(t, pair.Normal, x, 9, render.Black, "bar")
	}
	assertPixel(t, pair.Normal, 5, 5, render.HoverGray, "disc centre")
	assertPixel(t, pair.Hover, 5, 9, render.Black, "bar on hover")
}

func TestBuild_NoBackgroundUsesColour(t *testing.T) {
	d := render.NewMemDisplay()
	b := newTestBuilder(d)
	styler := menu.NewStyler()
	b.Menu = styler

	set, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 7, d.Live())
	assert.Equal(t, 15, set.TitleHeight)
	assert.Equal(t, 11, set.ButtonSize)
	assert.Equal(t, BackgroundNotConfigured, set.BackgroundResult.Status)
	assert.Equal(t, image.Rect(0, 0, 1, 1), set.Background.Bounds())
	assertPixel(t, set.Background, 0, 0, b.Config.BackgroundColor, "background")

	for _, btn := range Buttons {
		assert.NotNil(t, set.Button(btn).Normal, btn.String())
		assert.NotNil(t, set.Button(btn).Hover, btn.String())
	}
	assert.Equal(t, Pair{}, set.Button(Button(-1)))

	assert.Equal(t, 1, styler.Generation())
	assert.Equal(t, b.Config.Menu.High, styler.Palette().High)

	require.NoError(t, set.Release())
	assert.Equal(t, 0, d.Live())
	assert.NoError(t, set.Release())
}

func TestBuild_FailureFreesPartialSet(t *testing.T) {
	d := render.NewMemDisplay()
	d.MaxPixels = 3 * 11 * 11
	b := newTestBuilder(d)
	styler := menu.NewStyler()
	b.Menu = styler

	set, err := b.Build()
	assert.Nil(t, set)
	assert.ErrorIs(t, err, render.ErrImageTooLarge)
	assert.Equal(t, 0, d.Live())
	assert.Equal(t, 0, styler.Generation())
}

func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadBackground_PNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}), image.Point{}, draw.Src)
	src.SetNRGBA(1, 1, color.NRGBA{}) // transparent

	d := render.NewMemDisplay()
	b := newTestBuilder(d)
	b.Config.BackgroundImage = writePNG(t, t.TempDir(), src)

	res := b.LoadBackground()
	require.True(t, res.Loaded(), res.String())
	assert.Equal(t, image.Rect(0, 0, 4, 3), res.Image.Bounds())
	assertPixel(t, res.Image, 0, 0, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, "opaque pixel")
	assertPixel(t, res.Image, 1, 1, b.Config.BackgroundColor, "transparent pixel shows background colour")
	assert.Equal(t, 1, d.Live())
}

func TestLoadBackground_Plan9Image(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("%11s %11d %11d %11d %11d ", "r8g8b8", 0, 0, 1, 1))
	buf.Write([]byte{0x00, 0x00, 0xFF})

	b := newTestBuilder(render.NewMemDisplay())
	b.Config.BackgroundImage = "/themes/red.bit"
	b.Open = func(path string) (io.ReadCloser, error) {
		assert.Equal(t, "/themes/red.bit", path)
		return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
	}

	res := b.LoadBackground()
	require.True(t, res.Loaded(), res.String())
	assertPixel(t, res.Image, 0, 0, color.RGBA{R: 0xFF, A: 0xFF}, "decoded pixel")
}

func TestLoadBackground_Failures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image at all"), 0o644))
	big := writePNG(t, dir, image.NewNRGBA(image.Rect(0, 0, 8, 8)))

	cases := []struct {
		name      string
		path      string
		maxPixels int
		want      BackgroundStatus
	}{
		{"missing", filepath.Join(dir, "nope.png"), 0, BackgroundUnreadable},
		{"garbage", garbage, 0, BackgroundUndecodable},
		{"too large", big, 10, BackgroundAllocFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := render.NewMemDisplay()
			d.MaxPixels = tc.maxPixels
			b := newTestBuilder(d)
			b.Config.BackgroundImage = tc.path

			res := b.LoadBackground()
			assert.Equal(t, tc.want, res.Status)
			assert.False(t, res.Loaded())
			assert.Error(t, res.Err)
			assert.Nil(t, res.Image)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, 0, d.Live())
		})
	}
}

func TestBuild_BrokenBackgroundFallsBack(t *testing.T) {
	d := render.NewMemDisplay()
	b := newTestBuilder(d)
	b.Config.BackgroundImage = "/does/not/exist.png"
	b.Open = func(string) (io.ReadCloser, error) { return nil, errors.New("boom") }

	set, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, BackgroundUnreadable, set.BackgroundResult.Status)
	assert.Equal(t, image.Rect(0, 0, 1, 1), set.Background.Bounds())
	assert.Contains(t, set.BackgroundResult.String(), "boom")
	require.NoError(t, set.Release())
}

func TestBuild_HostilePlan9BackgroundFallsBack(t *testing.T) {
	var wrapped bytes.Buffer
	wrapped.WriteString(fmt.Sprintf("%11s %11d %11d %11d %11d ", "k8", 0, 0, int64(1)<<33, int64(1)<<33))

	var hugeBlock bytes.Buffer
	hugeBlock.WriteString("compressed\n")
	hugeBlock.WriteString(fmt.Sprintf("%11s %11d %11d %11d %11d ", "k8", 0, 0, 1, 1))
	hugeBlock.WriteString(fmt.Sprintf("%11d %11d ", 1, int64(99999999999)))

	for name, data := range map[string][]byte{
		"overflowing rectangle": wrapped.Bytes(),
		"oversized block":       hugeBlock.Bytes(),
	} {
		t.Run(name, func(t *testing.T) {
			d := render.NewMemDisplay()
			b := newTestBuilder(d)
			b.Config.BackgroundImage = "/themes/hostile.bit"
			b.Open = func(string) (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(data)), nil
			}

			set, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, BackgroundUndecodable, set.BackgroundResult.Status)
			assert.Equal(t, image.Rect(0, 0, 1, 1), set.Background.Bounds())
			assertPixel(t, set.Background, 0, 0, b.Config.BackgroundColor, "fallback colour")
			require.NoError(t, set.Release())
			assert.Equal(t, 0, d.Live())
		})
	}
}

func TestAllocSwatches(t *testing.T) {
	d := render.NewMemDisplay()
	sw, err := AllocSwatches(d)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Live())
	assertPixel(t, sw.Black, 0, 0, render.Black, "black")
	assertPixel(t, sw.White, 0, 0, render.White, "white")
	assertPixel(t, sw.Red, 0, 0, render.WarnRed, "red")
	_, isCMap := sw.Black.(*image.Paletted)
	assert.True(t, isCMap)

	require.NoError(t, sw.Release())
	assert.Equal(t, 0, d.Live())
	assert.NoError(t, sw.Release())
}

func TestAllocSwatches_FailureReleases(t *testing.T) {
	d := render.NewMemDisplay()
	d.MaxPixels = 2
	_, err := AllocSwatches(d)
	assert.ErrorIs(t, err, render.ErrImageTooLarge)
	assert.Equal(t, 0, d.Live())
}
