package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"sync"
)

// Chan is the pixel layout of an allocated image.
type Chan int

const (
	CMAP8 Chan = iota
	RGB24
	RGBA32
)

func (c Chan) String() string {
	switch c {
	case CMAP8:
		return "m8"
	case RGB24:
		return "r8g8b8"
	case RGBA32:
		return "r8g8b8a8"
	default:
		return fmt.Sprintf("chan(%d)", int(c))
	}
}

var (
	ErrEmptyRect     = errors.New("empty image rectangle")
	ErrImageTooLarge = errors.New("image exceeds display budget")
	ErrUnknownChan   = errors.New("unknown pixel channel")
	ErrNotAllocated  = errors.New("image was not allocated by this display")
)

// Display allocates and frees the images that decoration code draws into.
type Display interface {
	AllocImage(r image.Rectangle, ch Chan, fill color.Color) (draw.Image, error)
	FreeImage(img draw.Image) error
}

// MemDisplay is an in-memory Display. MaxPixels bounds the total number of
// live pixels; zero means unlimited.
type MemDisplay struct {
	MaxPixels int

	mu     sync.Mutex
	live   map[draw.Image]int
	pixels int
}

func NewMemDisplay() *MemDisplay {
	return &MemDisplay{live: make(map[draw.Image]int)}
}

func (d *MemDisplay) AllocImage(r image.Rectangle, ch Chan, fill color.Color) (draw.Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("alloc %v: %w", r, ErrEmptyRect)
	}
	n := r.Dx() * r.Dy()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.MaxPixels > 0 && d.pixels+n > d.MaxPixels {
		return nil, fmt.Errorf("alloc %v (%d live pixels, budget %d): %w", r, d.pixels, d.MaxPixels, ErrImageTooLarge)
	}

	var img draw.Image
	switch ch {
	case CMAP8:
		img = image.NewPaletted(r, palette.Plan9)
	case RGB24, RGBA32:
		img = image.NewRGBA(r)
	default:
		return nil, fmt.Errorf("alloc %v: %w: %v", r, ErrUnknownChan, ch)
	}
	if fill != nil {
		if ch == RGB24 {
			fill = opaque(fill)
		}
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	if d.live == nil {
		d.live = make(map[draw.Image]int)
	}
	d.live[img] = n
	d.pixels += n
	return img, nil
}

func (d *MemDisplay) FreeImage(img draw.Image) error {
	if img == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.live[img]
	if !ok {
		return ErrNotAllocated
	}
	delete(d.live, img)
	d.pixels -= n
	return nil
}

// Live returns the number of allocated, not yet freed images.
func (d *MemDisplay) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// LivePixels returns the pixel count of all live images.
func (d *MemDisplay) LivePixels() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pixels
}

// opaque drops the alpha channel, as an r8g8b8 image has nowhere to keep it.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xFF
	return n
}
