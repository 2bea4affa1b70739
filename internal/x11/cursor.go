package x11

import (
	"fmt"
	"math/bits"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/rook-computer/wmdecor/internal/cursor"
)

const cursorSide = 16

// packBitmap lays out 16x16 rows stored as two MSB-first bytes per row in
// the server's bitmap format: rows padded to padBits, bits in each byte
// reversed when the server wants the least significant bit first.
func packBitmap(rows [2 * cursorSide]uint8, lsbFirst bool, padBits int) []byte {
	if padBits < 8 {
		padBits = 8
	}
	stride := (cursorSide + padBits - 1) / padBits * padBits / 8
	out := make([]byte, stride*cursorSide)
	for y := 0; y < cursorSide; y++ {
		for i := 0; i < 2; i++ {
			b := rows[2*y+i]
			if lsbFirst {
				b = bits.Reverse8(b)
			}
			out[y*stride+i] = b
		}
	}
	return out
}

// cursorBitmaps returns the source and mask planes of c. Set pixels draw in
// the foreground colour, clear pixels in the background colour, and pixels
// in neither plane are transparent.
func cursorBitmaps(c *cursor.Cursor) (source, mask [2 * cursorSide]uint8) {
	source = c.Set
	mask = c.Mask()
	return source, mask
}

func (c *Connection) bitmap(rows [2 * cursorSide]uint8) (xproto.Pixmap, error) {
	conn := c.XUtil.Conn()
	setup := c.XUtil.Setup()

	pix, err := xproto.NewPixmapId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(conn, 1, pix, xproto.Drawable(c.Root), cursorSide, cursorSide).Check(); err != nil {
		return 0, err
	}
	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		xproto.FreePixmap(conn, pix)
		return 0, err
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(pix), 0, nil).Check(); err != nil {
		xproto.FreePixmap(conn, pix)
		return 0, err
	}
	defer xproto.FreeGC(conn, gc)

	data := packBitmap(rows, setup.BitmapFormatBitOrder == xproto.ImageOrderLSBFirst, int(setup.BitmapFormatScanlinePad))
	err = xproto.PutImageChecked(conn, xproto.ImageFormatXYPixmap, xproto.Drawable(pix), gc,
		cursorSide, cursorSide, 0, 0, 0, 1, data).Check()
	if err != nil {
		xproto.FreePixmap(conn, pix)
		return 0, err
	}
	return pix, nil
}

// CreateCursor uploads c as a black and white X cursor with c's hotspot.
func (c *Connection) CreateCursor(cur *cursor.Cursor) (xproto.Cursor, error) {
	conn := c.XUtil.Conn()
	srcRows, maskRows := cursorBitmaps(cur)

	source, err := c.bitmap(srcRows)
	if err != nil {
		return 0, fmt.Errorf("cursor source: %w", err)
	}
	defer xproto.FreePixmap(conn, source)
	mask, err := c.bitmap(maskRows)
	if err != nil {
		return 0, fmt.Errorf("cursor mask: %w", err)
	}
	defer xproto.FreePixmap(conn, mask)

	cid, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}
	hot := cur.Hotspot()
	err = xproto.CreateCursorChecked(conn, cid, source, mask,
		0, 0, 0, // foreground: black
		0xFFFF, 0xFFFF, 0xFFFF, // background: white
		uint16(clampHot(hot.X)), uint16(clampHot(hot.Y))).Check()
	if err != nil {
		return 0, fmt.Errorf("create cursor: %w", err)
	}
	return cid, nil
}

func clampHot(v int) int {
	if v < 0 {
		return 0
	}
	if v >= cursorSide {
		return cursorSide - 1
	}
	return v
}

// DefineRootCursor sets the named cursor on the root window. The previous
// cursor, if any, should be passed back to FreeCursor by the caller.
func (c *Connection) DefineRootCursor(name string) (xproto.Cursor, error) {
	cur, ok := cursor.ByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown cursor %q", name)
	}
	cid, err := c.CreateCursor(cur)
	if err != nil {
		return 0, err
	}
	err = xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), c.Root, xproto.CwCursor, []uint32{uint32(cid)}).Check()
	if err != nil {
		xproto.FreeCursor(c.XUtil.Conn(), cid)
		return 0, fmt.Errorf("define root cursor: %w", err)
	}
	return cid, nil
}

func (c *Connection) FreeCursor(cid xproto.Cursor) {
	if cid != 0 {
		xproto.FreeCursor(c.XUtil.Conn(), cid)
	}
}
