// Package decor builds the images a window manager needs to decorate
// windows: three title bar buttons with normal and hover states, the desktop
// background, and the solid colour swatches used for borders and warnings.
package decor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"sync"

	"golang.org/x/image/font"

	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/render"
)

// titleProbe is measured for the title bar height; it reaches both above the
// cap height and to the descent.
const titleProbe = "Á"

var (
	ErrButtonSize         = errors.New("decor: button size must be positive")
	ErrUnknownButton      = errors.New("decor: unknown button")
	ErrIncomplete         = errors.New("decor: builder needs a display, face and config")
	ErrAlreadyInitialized = errors.New("decor: already initialized")
	ErrNotInitialized     = errors.New("decor: not initialized")
)

// Logger is the component logger used across the module.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// MenuStyler receives the menu palette after each successful build.
type MenuStyler interface {
	SetMenuColors(back, high, border, text, selText color.Color)
}

// Builder turns a Config into images on a Display.
type Builder struct {
	Display render.Display
	Face    font.Face
	Config  *config.Config
	Menu    MenuStyler
	Logger  Logger
	// Open reads the background image; nil means os.Open.
	Open func(path string) (io.ReadCloser, error)
}

func NewBuilder(display render.Display, face font.Face, cfg *config.Config) *Builder {
	return &Builder{Display: display, Face: face, Config: cfg, Logger: noopLogger{}}
}

func (b *Builder) check() error {
	if b.Display == nil || b.Face == nil || b.Config == nil {
		return ErrIncomplete
	}
	return nil
}

func (b *Builder) log() Logger {
	if b.Logger == nil {
		return noopLogger{}
	}
	return b.Logger
}

func (b *Builder) open(path string) (io.ReadCloser, error) {
	if b.Open != nil {
		return b.Open(path)
	}
	return os.Open(path)
}

// TitleBarHeight is the border on both sides plus the height of one line of
// text in the current face.
func (b *Builder) TitleBarHeight() int {
	return 2*b.Config.BorderWidth + render.StringSize(b.Face, titleProbe).Y
}

// ButtonSize is the side of a square button: the title bar without its
// borders.
func (b *Builder) ButtonSize() int {
	return b.TitleBarHeight() - 2*b.Config.BorderWidth
}

// Set is one complete, immutable generation of decoration images.
type Set struct {
	Buttons          [numButtons]Pair
	Background       draw.Image
	BackgroundResult BackgroundResult
	TitleHeight      int
	ButtonSize       int
	// BackgroundMode and Cursor are copied from the config the set was
	// built from.
	BackgroundMode config.BackgroundMode
	Cursor         string

	display  render.Display
	release  sync.Once
	released error
}

func (s *Set) Button(b Button) Pair {
	if b < 0 || b >= numButtons {
		return Pair{}
	}
	return s.Buttons[b]
}

// Images returns every image the set owns, background first.
func (s *Set) Images() []draw.Image {
	out := make([]draw.Image, 0, 1+2*len(s.Buttons))
	if s.Background != nil {
		out = append(out, s.Background)
	}
	for _, p := range s.Buttons {
		if p.Normal != nil {
			out = append(out, p.Normal)
		}
		if p.Hover != nil {
			out = append(out, p.Hover)
		}
	}
	return out
}

// Release frees every image in the set. Later calls return the first result.
func (s *Set) Release() error {
	if s == nil {
		return nil
	}
	s.release.Do(func() {
		var errs []error
		for _, img := range s.Images() {
			if err := s.display.FreeImage(img); err != nil {
				errs = append(errs, err)
			}
		}
		s.released = errors.Join(errs...)
	})
	return s.released
}

// Build produces a full Set. Any images allocated before a failure are freed
// and the error is returned; a missing or broken background image is not a
// failure and falls back to a solid BackgroundColor pixel.
func (b *Builder) Build() (*Set, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	s := &Set{
		display:        b.Display,
		TitleHeight:    b.TitleBarHeight(),
		ButtonSize:     b.ButtonSize(),
		BackgroundMode: b.Config.BackgroundMode,
		Cursor:         b.Config.Cursor,
	}
	if err := b.build(s); err != nil {
		if rerr := s.Release(); rerr != nil {
			b.log().Errorf("decor", "release partial set: %v", rerr)
		}
		return nil, err
	}
	b.log().Infof("decor", "built set: title %dpx, buttons %dpx, background %s",
		s.TitleHeight, s.ButtonSize, s.BackgroundResult)
	return s, nil
}

func (b *Builder) build(s *Set) error {
	for _, btn := range Buttons {
		pair, err := b.BuildButton(btn)
		if err != nil {
			return err
		}
		s.Buttons[btn] = pair
	}

	res := b.LoadBackground()
	s.BackgroundResult = res
	if res.Loaded() {
		s.Background = res.Image
	} else {
		if res.Status != BackgroundNotConfigured {
			b.log().Errorf("decor", "background %s; using %s", res, b.Config.BackgroundColor)
		}
		bg, err := b.Display.AllocImage(image.Rect(0, 0, 1, 1), render.RGB24, b.Config.BackgroundColor)
		if err != nil {
			return fmt.Errorf("background colour: %w", err)
		}
		s.Background = bg
	}

	if b.Menu != nil {
		m := b.Config.Menu
		b.Menu.SetMenuColors(m.Back, m.High, m.Border, m.Text, m.SelText)
	}
	return nil
}

// Swatches are the solid colours shared by every generation.
type Swatches struct {
	Black draw.Image
	White draw.Image
	Red   draw.Image

	display render.Display
}

// AllocSwatches allocates 1x1 black and white colour-mapped images and an
// opaque red one.
func AllocSwatches(d render.Display) (*Swatches, error) {
	s := &Swatches{display: d}
	specs := []struct {
		dst  *draw.Image
		ch   render.Chan
		fill color.Color
	}{
		{&s.Black, render.CMAP8, render.Black},
		{&s.White, render.CMAP8, render.White},
		{&s.Red, render.RGB24, render.WarnRed},
	}
	for _, sp := range specs {
		img, err := d.AllocImage(image.Rect(0, 0, 1, 1), sp.ch, sp.fill)
		if err != nil {
			_ = s.Release()
			return nil, fmt.Errorf("swatch: %w", err)
		}
		*sp.dst = img
	}
	return s, nil
}

func (s *Swatches) Release() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, img := range []*draw.Image{&s.Black, &s.White, &s.Red} {
		if *img == nil {
			continue
		}
		if err := s.display.FreeImage(*img); err != nil {
			errs = append(errs, err)
		}
		*img = nil
	}
	return errors.Join(errs...)
}
