package decor

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/menu"
	"github.com/rook-computer/wmdecor/internal/render"
)

func newTestManager(d *render.MemDisplay) (*Manager, *int) {
	loads := 0
	m := NewManager(d, menu.NewStyler(), nil)
	m.LoadFace = func(f config.Font) font.Face {
		loads++
		return face11()
	}
	return m, &loads
}

// setLive is the number of images one generation owns.
const setLive = 7

func TestManager_InitializeDefaults(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	assert.Nil(t, m.Current())

	require.NoError(t, m.Initialize(nil))
	set := m.Current()
	require.NotNil(t, set)
	assert.Equal(t, 15, set.TitleHeight)
	assert.Equal(t, config.DefaultConfig(), m.Config())
	assert.Equal(t, 3+setLive, d.Live())

	sw := m.Swatches()
	require.NotNil(t, sw)
	assertPixel(t, sw.Red, 0, 0, render.WarnRed, "red swatch")

	assert.ErrorIs(t, m.Initialize(nil), ErrAlreadyInitialized)
	assert.Equal(t, 3+setLive, d.Live())
}

func TestManager_InitializeRejectsInvalidConfig(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	cfg := config.DefaultConfig()
	cfg.BorderWidth = -1

	assert.Error(t, m.Initialize(cfg))
	assert.Nil(t, m.Current())
	assert.Equal(t, 0, d.Live())
}

func TestManager_InitializeFailureFreesSwatches(t *testing.T) {
	d := render.NewMemDisplay()
	d.MaxPixels = 3 + 11*11
	m, _ := newTestManager(d)

	assert.ErrorIs(t, m.Initialize(nil), render.ErrImageTooLarge)
	assert.Nil(t, m.Current())
	assert.Equal(t, 0, d.Live())
	assert.ErrorIs(t, m.Reinitialize(nil), ErrNotInitialized)
}

func TestManager_ReinitializeBeforeInitialize(t *testing.T) {
	m, _ := newTestManager(render.NewMemDisplay())
	assert.ErrorIs(t, m.Reinitialize(nil), ErrNotInitialized)
}

func TestManager_ReinitializeSwapsAndFreesOldSet(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	require.NoError(t, m.Initialize(nil))
	old := m.Current()
	oldClose := old.Button(Close).Normal

	cfg := config.DefaultConfig()
	cfg.WindowTitleColor = 0x112233FF
	require.NoError(t, m.Reinitialize(cfg))

	set := m.Current()
	assert.NotSame(t, old, set)
	assert.Equal(t, 3+setLive, d.Live())
	assert.ErrorIs(t, d.FreeImage(oldClose), render.ErrNotAllocated)
	assertPixel(t, set.Button(Close).Normal, 0, 0, cfg.WindowTitleColor, "new title colour")
	assert.Equal(t, config.Color(0x112233FF), m.Config().WindowTitleColor)
}

func TestManager_ReinitializeNilKeepsConfig(t *testing.T) {
	d := render.NewMemDisplay()
	m, loads := newTestManager(d)
	cfg := config.DefaultConfig()
	cfg.BorderWidth = 4
	require.NoError(t, m.Initialize(cfg))
	var before []image.Rectangle
	for _, img := range m.Current().Images() {
		before = append(before, img.Bounds())
	}

	require.NoError(t, m.Reinitialize(nil))
	var after []image.Rectangle
	for _, img := range m.Current().Images() {
		after = append(after, img.Bounds())
	}
	assert.Equal(t, before, after, "rebuild keeps every image's dimensions")
	assert.Equal(t, 19, m.Current().TitleHeight)
	assert.Equal(t, 11, m.Current().ButtonSize)
	assert.Equal(t, 1, *loads, "face is reused while the font is unchanged")
}

func TestManager_FontChangeReloadsFace(t *testing.T) {
	m, loads := newTestManager(render.NewMemDisplay())
	require.NoError(t, m.Initialize(nil))

	cfg := config.DefaultConfig()
	cfg.Font.Size = 14
	require.NoError(t, m.Reinitialize(cfg))
	assert.Equal(t, 2, *loads)
	assert.NotNil(t, m.Face())
}

func TestManager_ReinitializeFailureKeepsCurrent(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	require.NoError(t, m.Initialize(nil))
	old := m.Current()
	d.MaxPixels = d.LivePixels()

	cfg := config.DefaultConfig()
	cfg.WindowTitleColor = 0x112233FF
	err := m.Reinitialize(cfg)
	assert.ErrorIs(t, err, render.ErrImageTooLarge)
	assert.Same(t, old, m.Current())
	assert.Equal(t, 3+setLive, d.Live())
	assert.Equal(t, config.DefaultConfig().WindowTitleColor, m.Config().WindowTitleColor)
}

func TestManager_FailedFontChangeKeepsFace(t *testing.T) {
	d := render.NewMemDisplay()
	m := NewManager(d, nil, nil)
	m.LoadFace = func(f config.Font) font.Face {
		return fixedFace{Face: face11(), height: int(f.Size)}
	}
	cfg := config.DefaultConfig()
	cfg.Font.Size = 11
	require.NoError(t, m.Initialize(cfg))
	d.MaxPixels = d.LivePixels()

	bigger := cfg.Clone()
	bigger.Font.Size = 20
	assert.ErrorIs(t, m.Reinitialize(bigger), render.ErrImageTooLarge)
	assert.Equal(t, fixed.I(11), m.Face().Metrics().Height, "face still matches the current set")
	assert.Equal(t, m.Current().ButtonSize, m.Face().Metrics().Height.Round())
	assert.Equal(t, 11.0, m.Config().Font.Size)
}

func TestManager_OnSwapSeesBothSets(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)

	type swap struct{ next, prev *Set }
	var swaps []swap
	liveDuringSwap := -1
	m.OnSwap(func(next, prev *Set) {
		swaps = append(swaps, swap{next, prev})
		liveDuringSwap = d.Live()
	})

	require.NoError(t, m.Initialize(nil))
	require.Len(t, swaps, 1)
	assert.Nil(t, swaps[0].prev)
	assert.Same(t, m.Current(), swaps[0].next)

	first := m.Current()
	require.NoError(t, m.Reinitialize(nil))
	require.Len(t, swaps, 2)
	assert.Same(t, first, swaps[1].prev)
	assert.Equal(t, 3+2*setLive, liveDuringSwap, "previous set is released after observers run")

	require.NoError(t, m.Close())
	require.Len(t, swaps, 3)
	assert.Nil(t, swaps[2].next)
}

func TestManager_MenuColoursFollowConfig(t *testing.T) {
	styler := menu.NewStyler()
	m := NewManager(render.NewMemDisplay(), styler, nil)
	m.LoadFace = func(config.Font) font.Face { return face11() }

	cfg := config.DefaultConfig()
	cfg.Menu.Back = 0x010203FF
	require.NoError(t, m.Initialize(cfg))
	assert.Equal(t, config.Color(0x010203FF), styler.Palette().Back)
	assert.Equal(t, 1, styler.Generation())
}

func TestManager_CloseReleasesEverything(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	require.NoError(t, m.Initialize(nil))

	require.NoError(t, m.Close())
	assert.Equal(t, 0, d.Live())
	assert.Nil(t, m.Current())
	assert.NoError(t, m.Close())

	require.NoError(t, m.Initialize(nil))
	assert.Equal(t, 3+setLive, d.Live())
}

func TestManager_ConcurrentReaders(t *testing.T) {
	d := render.NewMemDisplay()
	m, _ := newTestManager(d)
	require.NoError(t, m.Initialize(nil))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				set := m.Current()
				if set == nil || set.Button(Close).Normal == nil || set.Background == nil {
					t.Error("reader saw an incomplete set")
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Reinitialize(nil))
	}
	close(stop)
	wg.Wait()
	assert.Equal(t, 3+setLive, d.Live())
}
