package render

import "image/color"

// Fixed decoration colours.
var (
	Black     = color.RGBA{A: 0xFF}
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	HoverGray = color.RGBA{R: 0xD8, G: 0xD8, B: 0xD8, A: 0xFF} // 0xD8D8D8FF
	WarnRed   = color.RGBA{R: 0xDD, A: 0xFF}                   // 0xDD0000FF

	// Logical canvas size for previews; scaled to the output device.
	CanvasWidth  = 1280
	CanvasHeight = 800
)
