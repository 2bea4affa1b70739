package render

import (
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSpec selects a face. An empty Path means the embedded Go Regular font.
type FontSpec struct {
	Path string
	Size float64
	DPI  float64
}

type fontLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// LoadFace returns a face for spec. It never fails: a file that cannot be
// read or parsed falls back to the embedded font, and that to basicfont.
func LoadFace(spec FontSpec, logger fontLogger) font.Face {
	if spec.Size <= 0 {
		spec.Size = 10
	}
	if spec.DPI <= 0 {
		spec.DPI = 96
	}

	if spec.Path != "" {
		data, err := os.ReadFile(spec.Path)
		if err != nil {
			if logger != nil {
				logger.Errorf("font", "read %s failed, using embedded font: %v", spec.Path, err)
			}
		} else if face := parseFace(data, spec, logger); face != nil {
			if logger != nil {
				logger.Infof("font", "loaded %s at %vpt", spec.Path, spec.Size)
			}
			return face
		}
	}

	if face := parseFace(goregular.TTF, spec, logger); face != nil {
		return face
	}
	if logger != nil {
		logger.Errorf("font", "embedded font unusable, using basicfont")
	}
	return basicfont.Face7x13
}

func parseFace(data []byte, spec FontSpec, logger fontLogger) font.Face {
	fnt, err := opentype.Parse(data)
	if err == nil {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: spec.Size, DPI: spec.DPI, Hinting: font.HintingFull})
		if ferr == nil {
			return face
		}
		err = ferr
	}
	if logger != nil {
		logger.Errorf("font", "opentype load failed, trying truetype: %v", err)
	}

	tt, terr := truetype.Parse(data)
	if terr != nil {
		if logger != nil {
			logger.Errorf("font", "truetype parse failed: %v", terr)
		}
		return nil
	}
	return truetype.NewFace(tt, &truetype.Options{Size: spec.Size, DPI: spec.DPI, Hinting: font.HintingFull})
}

// StringSize returns the advance width of s and the line height of face.
func StringSize(face font.Face, s string) image.Point {
	return image.Point{
		X: font.MeasureString(face, s).Ceil(),
		Y: face.Metrics().Height.Ceil(),
	}
}
