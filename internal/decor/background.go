package decor

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rook-computer/wmdecor/internal/p9image"
	"github.com/rook-computer/wmdecor/internal/render"
)

// BackgroundStatus is the outcome of loading the configured background.
type BackgroundStatus int

const (
	BackgroundLoaded BackgroundStatus = iota
	BackgroundNotConfigured
	BackgroundUnreadable
	BackgroundUndecodable
	BackgroundAllocFailed
)

func (s BackgroundStatus) String() string {
	switch s {
	case BackgroundLoaded:
		return "loaded"
	case BackgroundNotConfigured:
		return "not configured"
	case BackgroundUnreadable:
		return "unreadable"
	case BackgroundUndecodable:
		return "undecodable"
	case BackgroundAllocFailed:
		return "alloc failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// BackgroundResult says whether a background image was loaded and, if not,
// why. Image is set only when Status is BackgroundLoaded.
type BackgroundResult struct {
	Status BackgroundStatus
	Path   string
	Err    error
	Image  draw.Image
}

func (r BackgroundResult) Loaded() bool { return r.Status == BackgroundLoaded && r.Image != nil }

func (r BackgroundResult) String() string {
	switch {
	case r.Status == BackgroundNotConfigured:
		return r.Status.String()
	case r.Err != nil:
		return fmt.Sprintf("%s %s: %v", r.Status, r.Path, r.Err)
	default:
		return fmt.Sprintf("%s %s", r.Status, r.Path)
	}
}

// LoadBackground reads and decodes the configured background image into an
// opaque r8g8b8 image. Transparent pixels show BackgroundColor. It never
// returns an error; failures are reported in the result.
func (b *Builder) LoadBackground() BackgroundResult {
	if err := b.check(); err != nil {
		return BackgroundResult{Status: BackgroundAllocFailed, Err: err}
	}
	if !b.Config.HasBackgroundImage() {
		return BackgroundResult{Status: BackgroundNotConfigured}
	}
	path := b.Config.BackgroundImage

	f, err := b.open(path)
	if err != nil {
		return BackgroundResult{Status: BackgroundUnreadable, Path: path, Err: err}
	}
	defer f.Close()

	src, format, err := decodeImage(f)
	if err != nil {
		return BackgroundResult{Status: BackgroundUndecodable, Path: path, Err: err}
	}

	img, err := b.Display.AllocImage(src.Bounds(), render.RGB24, b.Config.BackgroundColor)
	if err != nil {
		return BackgroundResult{Status: BackgroundAllocFailed, Path: path, Err: err}
	}
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Over)
	b.log().Infof("decor", "background %s: %s %v", path, format, src.Bounds())
	return BackgroundResult{Status: BackgroundLoaded, Path: path, Image: img}
}

// decodeImage accepts Plan 9 image files as well as every format registered
// with the image package.
func decodeImage(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(64)
	if p9image.Sniff(head) {
		img, err := p9image.Decode(br)
		return img, "plan9", err
	}
	return image.Decode(br)
}
