package cursor

import "image"

// Cross is the crosshair used when sweeping out a new window.
var Cross = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x7F, 0xFE,
		0x7F, 0xFE, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x01, 0x80, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
		0x02, 0x40, 0x02, 0x40, 0x7E, 0x7E, 0x80, 0x01,
		0x80, 0x01, 0x7E, 0x7E, 0x02, 0x40, 0x02, 0x40,
		0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x01, 0x80,
	},
}

// Box is the four-way arrow shown while moving a window.
var Box = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x01, 0x80, 0x03, 0xC0, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x21, 0x84, 0x7E, 0x7E,
		0x7E, 0x7E, 0x21, 0x84, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x03, 0xC0, 0x01, 0x80, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x01, 0x80, 0x02, 0x40, 0x04, 0x20, 0x06, 0x60,
		0x02, 0x40, 0x32, 0x4C, 0x5E, 0x7A, 0x80, 0x01,
		0x80, 0x01, 0x5E, 0x7A, 0x32, 0x4C, 0x02, 0x40,
		0x06, 0x60, 0x04, 0x20, 0x02, 0x40, 0x01, 0x80,
	},
}

// Sight is the gun sight used to pick a window.
var Sight = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x78, 0x1E, 0x40, 0x02, 0x40, 0x02,
		0x41, 0x82, 0x01, 0x80, 0x01, 0x80, 0x0F, 0xF0,
		0x0F, 0xF0, 0x01, 0x80, 0x01, 0x80, 0x41, 0x82,
		0x40, 0x02, 0x40, 0x02, 0x78, 0x1E, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x78, 0x1E, 0x84, 0x21, 0xB8, 0x1D, 0xA1, 0x85,
		0xA2, 0x45, 0x42, 0x42, 0x0E, 0x70, 0x10, 0x08,
		0x10, 0x08, 0x0E, 0x70, 0x42, 0x42, 0xA2, 0x45,
		0xA1, 0x85, 0xB8, 0x1D, 0x84, 0x21, 0x78, 0x1E,
	},
}

// WhiteArrow is the default arrow with its planes swapped.
var WhiteArrow = Cursor{
	Offset: image.Point{X: -2, Y: 0},
	Clr: [2 * 16]uint8{
		0x20, 0x00, 0x30, 0x00, 0x28, 0x00, 0x24, 0x00,
		0x22, 0x00, 0x21, 0x00, 0x20, 0x80, 0x20, 0x40,
		0x20, 0x20, 0x20, 0x10, 0x21, 0xF8, 0x22, 0x00,
		0x24, 0x00, 0x28, 0x00, 0x30, 0x00, 0x20, 0x00,
	},
	Set: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x18, 0x00,
		0x1C, 0x00, 0x1E, 0x00, 0x1F, 0x00, 0x1F, 0x80,
		0x1F, 0xC0, 0x1F, 0xE0, 0x1E, 0x00, 0x1C, 0x00,
		0x18, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}

// Default is the standard pointer arrow.
var Default = Cursor{
	Offset: image.Point{X: -2, Y: 0},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x18, 0x00,
		0x1C, 0x00, 0x1E, 0x00, 0x1F, 0x00, 0x1F, 0x80,
		0x1F, 0xC0, 0x1F, 0xE0, 0x1E, 0x00, 0x1C, 0x00,
		0x18, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x20, 0x00, 0x30, 0x00, 0x28, 0x00, 0x24, 0x00,
		0x22, 0x00, 0x21, 0x00, 0x20, 0x80, 0x20, 0x40,
		0x20, 0x20, 0x20, 0x10, 0x21, 0xF8, 0x22, 0x00,
		0x24, 0x00, 0x28, 0x00, 0x30, 0x00, 0x20, 0x00,
	},
}

// Query is the question mark shown while waiting for a choice.
var Query = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x0F, 0xF0, 0x1F, 0xF8, 0x3F, 0xFC, 0x7F, 0xFE,
		0x7C, 0x7E, 0x78, 0x7E, 0x00, 0xFC, 0x01, 0xF8,
		0x03, 0xF0, 0x07, 0xE0, 0x07, 0xC0, 0x07, 0xC0,
		0x07, 0xC0, 0x07, 0xC0, 0x07, 0xC0, 0x07, 0xC0,
	},
	Set: [2 * 16]uint8{
		0x00, 0x00, 0x0F, 0xF0, 0x1F, 0xF8, 0x3C, 0x3C,
		0x38, 0x1C, 0x00, 0x3C, 0x00, 0x78, 0x00, 0xF0,
		0x01, 0xE0, 0x03, 0xC0, 0x03, 0x80, 0x03, 0x80,
		0x00, 0x00, 0x03, 0x80, 0x03, 0x80, 0x00, 0x00,
	},
}

// Resize cursors, one per edge or corner of a window.

var TopLeft = Cursor{
	Offset: image.Point{X: -6, Y: -6},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x78, 0x00, 0x60, 0x00, 0x50, 0x00,
		0x48, 0x00, 0x04, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x40, 0x00, 0x20, 0x00, 0x12,
		0x00, 0x0A, 0x00, 0x06, 0x00, 0x1E, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0xFC, 0x00, 0x84, 0x00, 0x9C, 0x00, 0xAC, 0x00,
		0xB6, 0x00, 0xFB, 0x00, 0x0D, 0x00, 0x07, 0x00,
		0x00, 0xE0, 0x00, 0xB0, 0x00, 0xDF, 0x00, 0x6D,
		0x00, 0x35, 0x00, 0x39, 0x00, 0x21, 0x00, 0x3F,
	},
}

var Top = Cursor{
	Offset: image.Point{X: -7, Y: -8},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x01, 0x80, 0x03, 0xC0, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x03, 0xC0, 0x01, 0x80, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x01, 0x80, 0x02, 0x40, 0x04, 0x20, 0x06, 0x60,
		0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x01, 0x80,
		0x01, 0x80, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
		0x06, 0x60, 0x04, 0x20, 0x02, 0x40, 0x01, 0x80,
	},
}

var TopRight = Cursor{
	Offset: image.Point{X: -9, Y: -6},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x1E, 0x00, 0x06, 0x00, 0x0A,
		0x00, 0x12, 0x00, 0x20, 0x00, 0x40, 0x00, 0x00,
		0x00, 0x00, 0x02, 0x00, 0x04, 0x00, 0x48, 0x00,
		0x50, 0x00, 0x60, 0x00, 0x78, 0x00, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x00, 0x3F, 0x00, 0x21, 0x00, 0x39, 0x00, 0x35,
		0x00, 0x6D, 0x00, 0xDF, 0x00, 0xB0, 0x00, 0xE0,
		0x07, 0x00, 0x0D, 0x00, 0xFB, 0x00, 0xB6, 0x00,
		0xAC, 0x00, 0x9C, 0x00, 0x84, 0x00, 0xFC, 0x00,
	},
}

var Right = Cursor{
	Offset: image.Point{X: -8, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x20, 0x04, 0x7E, 0x7E,
		0x7E, 0x7E, 0x20, 0x04, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x30, 0x0C, 0x5E, 0x7A, 0x81, 0x81,
		0x81, 0x81, 0x5E, 0x7A, 0x30, 0x0C, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}

var BottomRight = Cursor{
	Offset: image.Point{X: -9, Y: -9},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x78, 0x00, 0x60, 0x00, 0x50, 0x00,
		0x48, 0x00, 0x04, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x40, 0x00, 0x20, 0x00, 0x12,
		0x00, 0x0A, 0x00, 0x06, 0x00, 0x1E, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0xFC, 0x00, 0x84, 0x00, 0x9C, 0x00, 0xAC, 0x00,
		0xB6, 0x00, 0xFB, 0x00, 0x0D, 0x00, 0x07, 0x00,
		0x00, 0xE0, 0x00, 0xB0, 0x00, 0xDF, 0x00, 0x6D,
		0x00, 0x35, 0x00, 0x39, 0x00, 0x21, 0x00, 0x3F,
	},
}

var Bottom = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x01, 0x80, 0x03, 0xC0, 0x01, 0x80,
		0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x80, 0x03, 0xC0, 0x01, 0x80, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x01, 0x80, 0x02, 0x40, 0x04, 0x20, 0x06, 0x60,
		0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x01, 0x80,
		0x01, 0x80, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
		0x06, 0x60, 0x04, 0x20, 0x02, 0x40, 0x01, 0x80,
	},
}

var BottomLeft = Cursor{
	Offset: image.Point{X: -6, Y: -9},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x1E, 0x00, 0x06, 0x00, 0x0A,
		0x00, 0x12, 0x00, 0x20, 0x00, 0x40, 0x00, 0x00,
		0x00, 0x00, 0x02, 0x00, 0x04, 0x00, 0x48, 0x00,
		0x50, 0x00, 0x60, 0x00, 0x78, 0x00, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x00, 0x3F, 0x00, 0x21, 0x00, 0x39, 0x00, 0x35,
		0x00, 0x6D, 0x00, 0xDF, 0x00, 0xB0, 0x00, 0xE0,
		0x07, 0x00, 0x0D, 0x00, 0xFB, 0x00, 0xB6, 0x00,
		0xAC, 0x00, 0x9C, 0x00, 0x84, 0x00, 0xFC, 0x00,
	},
}

var Left = Cursor{
	Offset: image.Point{X: -7, Y: -7},
	Clr: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x20, 0x04, 0x7E, 0x7E,
		0x7E, 0x7E, 0x20, 0x04, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	Set: [2 * 16]uint8{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x30, 0x0C, 0x5E, 0x7A, 0x81, 0x81,
		0x81, 0x81, 0x5E, 0x7A, 0x30, 0x0C, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}
