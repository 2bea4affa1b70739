package render

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"sync"

	"github.com/rook-computer/wmdecor/internal/state"
	"golang.org/x/image/font"
)

// PNGRenderer writes each redraw of the current screen to a PNG file. It is
// the headless counterpart of FBRenderer.
type PNGRenderer struct {
	Path   string
	Width  int
	Height int
	Face   font.Face
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	mu      sync.Mutex
	canvas  *Canvas
	current Screen
	frames  int
}

func NewPNGRenderer(path string, width, height int, face font.Face) *PNGRenderer {
	return &PNGRenderer{Path: path, Width: width, Height: height, Face: face}
}

func (r *PNGRenderer) Start(ctx context.Context) error {
	if r.Path == "" {
		return fmt.Errorf("png renderer: no output path")
	}
	w, h := r.Width, r.Height
	if w <= 0 {
		w = CanvasWidth
	}
	if h <= 0 {
		h = CanvasHeight
	}
	r.mu.Lock()
	r.canvas = NewCanvas(w, h, r.Face)
	r.mu.Unlock()
	return nil
}

func (r *PNGRenderer) Stop() error { return nil }

func (r *PNGRenderer) SetScreen(screen Screen) {
	r.mu.Lock()
	r.current = screen
	r.mu.Unlock()
}

// RunLoop renders once; reloads trigger RedrawWithState directly.
func (r *PNGRenderer) RunLoop(ctx context.Context, store *state.Store) {
	r.RedrawWithState(store.Snapshot())
	<-ctx.Done()
}

func (r *PNGRenderer) RedrawWithState(snap state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.canvas == nil || r.current == nil {
		return
	}
	r.current.Draw(r.canvas, snap)
	if err := r.write(); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("png", "write %s failed: %v", r.Path, err)
		}
		return
	}
	r.frames++
	if r.Logger != nil {
		r.Logger.Infof("png", "wrote %s (frame %d, generation %d)", r.Path, r.frames, snap.Generation)
	}
}

// Frames returns how many frames were written.
func (r *PNGRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *PNGRenderer) write() error {
	tmp := r.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.canvas.Image()); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, r.Path)
}
