// Package export writes decoration images and cursors to PNG files, for
// inspection or for window managers that load their assets from disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rook-computer/wmdecor/internal/cursor"
	"github.com/rook-computer/wmdecor/internal/decor"
)

// File names a written image and the path it went to.
type File struct {
	Name string
	Path string
}

// WriteSet writes every image of set into dir as <button>.png,
// <button>-hover.png and background.png.
func WriteSet(dir string, set *decor.Set) ([]File, error) {
	if set == nil {
		return nil, fmt.Errorf("export: no set")
	}
	var out []File
	for _, btn := range decor.Buttons {
		pair := set.Button(btn)
		for _, v := range []struct {
			name string
			img  image.Image
		}{
			{btn.String(), pair.Normal},
			{btn.String() + "-hover", pair.Hover},
		} {
			f, err := writePNG(dir, v.name, v.img)
			if err != nil {
				return out, err
			}
			out = append(out, f)
		}
	}
	f, err := writePNG(dir, "background", set.Background)
	if err != nil {
		return out, err
	}
	return append(out, f), nil
}

// WriteCursors writes every named cursor into dir as cursor-<name>.png. With
// double set the 32x32 variants are written instead.
func WriteCursors(dir string, double bool) ([]File, error) {
	var out []File
	for _, name := range cursor.Names() {
		c, _ := cursor.ByName(name)
		var img image.Image = c.Image()
		if double {
			var c2 cursor.Cursor2
			c.ScaleTo(&c2)
			img = c2.Image()
		}
		f, err := writePNG(dir, "cursor-"+name, img)
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}
	return out, nil
}

func writePNG(dir, name string, img image.Image) (File, error) {
	if img == nil {
		return File{}, fmt.Errorf("export %s: no image", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return File{}, err
	}
	path := filepath.Join(dir, name+".png")
	tmp, err := os.CreateTemp(dir, "."+name+"-*.png")
	if err != nil {
		return File{}, err
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return File{}, fmt.Errorf("export %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return File{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return File{}, err
	}
	return File{Name: name, Path: path}, nil
}
