package x11

import (
	"fmt"
	"image"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/rook-computer/wmdecor/internal/decor"
	"github.com/rook-computer/wmdecor/internal/render"
)

// Published holds the server-side pixmaps for one decor.Set.
type Published struct {
	Buttons    [3][2]*xgraphics.Image // [button][normal, hover]
	Background *xgraphics.Image
}

// Pixmap returns the server pixmap for button b, hovered or not.
func (p *Published) Pixmap(b decor.Button, hover bool) xproto.Pixmap {
	i := 0
	if hover {
		i = 1
	}
	if int(b) < 0 || int(b) >= len(p.Buttons) || p.Buttons[b][i] == nil {
		return 0
	}
	return p.Buttons[b][i].Pixmap
}

// BackgroundPixmap returns the root background pixmap, or 0.
func (p *Published) BackgroundPixmap() xproto.Pixmap {
	if p == nil || p.Background == nil {
		return 0
	}
	return p.Background.Pixmap
}

// Destroy frees every pixmap.
func (p *Published) Destroy() {
	if p == nil {
		return
	}
	for i := range p.Buttons {
		for j, img := range p.Buttons[i] {
			if img != nil {
				img.Destroy()
				p.Buttons[i][j] = nil
			}
		}
	}
	if p.Background != nil {
		p.Background.Destroy()
		p.Background = nil
	}
}

func (c *Connection) upload(img image.Image) (*xgraphics.Image, error) {
	ximg := xgraphics.NewConvert(c.XUtil, img)
	if err := ximg.CreatePixmap(); err != nil {
		return nil, err
	}
	ximg.XDraw()
	return ximg, nil
}

// Publish uploads the button images of set and its background, composed to
// the screen size with the set's background mode.
func (c *Connection) Publish(set *decor.Set) (*Published, error) {
	p := &Published{}
	for _, btn := range decor.Buttons {
		pair := set.Button(btn)
		for i, img := range []image.Image{pair.Normal, pair.Hover} {
			ximg, err := c.upload(img)
			if err != nil {
				p.Destroy()
				return nil, fmt.Errorf("upload %s button: %w", btn, err)
			}
			p.Buttons[btn][i] = ximg
		}
	}

	bg, err := c.upload(c.composeBackground(set))
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("upload background: %w", err)
	}
	p.Background = bg
	return p, nil
}

// composeBackground renders the background over the whole screen, except in
// tile mode where the server tiles the source image itself.
func (c *Connection) composeBackground(set *decor.Set) image.Image {
	mode, ok := render.ParseScaleMode(string(set.BackgroundMode))
	if !ok || mode == render.ScaleModeTile {
		return set.Background
	}
	w, h := c.ScreenSize()
	canvas := render.NewCanvas(w, h, nil)
	canvas.Fill(render.Black)
	canvas.DrawImageInRect(set.Background, canvas.Image().Bounds(), mode)
	return canvas.Image()
}

// SetRootBackground makes pix the root window background and advertises it
// to compositors and pseudo-transparent clients.
func (c *Connection) SetRootBackground(pix xproto.Pixmap) error {
	conn := c.XUtil.Conn()
	err := xproto.ChangeWindowAttributesChecked(conn, c.Root, xproto.CwBackPixmap, []uint32{uint32(pix)}).Check()
	if err != nil {
		return fmt.Errorf("set root background: %w", err)
	}
	xproto.ClearArea(conn, false, c.Root, 0, 0, 0, 0)
	for _, atom := range []string{"_XROOTPMAP_ID", "ESETROOT_PMAP_ID"} {
		if err := xprop.ChangeProp32(c.XUtil, c.Root, atom, "PIXMAP", uint(pix)); err != nil {
			return fmt.Errorf("set %s: %w", atom, err)
		}
	}
	return nil
}

// ClearRootBackground drops the root background pixmap and the properties
// naming it, so nothing refers to the pixmap once it is freed.
func (c *Connection) ClearRootBackground() error {
	conn := c.XUtil.Conn()
	err := xproto.ChangeWindowAttributesChecked(conn, c.Root, xproto.CwBackPixmap, []uint32{xproto.BackPixmapNone}).Check()
	if err != nil {
		return fmt.Errorf("clear root background: %w", err)
	}
	for _, name := range []string{"_XROOTPMAP_ID", "ESETROOT_PMAP_ID"} {
		atom, err := xprop.Atm(c.XUtil, name)
		if err != nil {
			return fmt.Errorf("intern %s: %w", name, err)
		}
		if err := xproto.DeletePropertyChecked(conn, c.Root, atom).Check(); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
	}
	xproto.ClearArea(conn, false, c.Root, 0, 0, 0, 0)
	return nil
}

// Server is the part of a Connection the Publisher drives.
type Server interface {
	Publish(set *decor.Set) (*Published, error)
	SetRootBackground(pix xproto.Pixmap) error
	ClearRootBackground() error
	DefineRootCursor(name string) (xproto.Cursor, error)
	FreeCursor(cid xproto.Cursor)
	WindowManager() string
	Sync()
}

// Publisher mirrors the manager's current set onto the X server. Attach
// OnSwap with decor.Manager.OnSwap.
type Publisher struct {
	Conn   Server
	Logger Logger

	mu        sync.Mutex
	current   *Published
	cursor    xproto.Cursor
	cursorFor string
}

func NewPublisher(conn Server, logger Logger) *Publisher {
	if logger == nil {
		logger = noopLogger{}
	}
	if wm := conn.WindowManager(); wm != "" {
		logger.Infof("x11", "window manager %q is running", wm)
	}
	return &Publisher{Conn: conn, Logger: logger}
}

// OnSwap publishes next and destroys what was published for the previous
// set. Errors are logged; the previous pixmaps stay in place when next
// cannot be published.
func (p *Publisher) OnSwap(next, prev *decor.Set) {
	if next == nil {
		p.Close()
		return
	}
	if err := p.Apply(next); err != nil {
		p.Logger.Errorf("x11", "publish: %v", err)
	}
}

// Apply uploads set, installs its background and cursor, and frees the
// previously published resources.
func (p *Publisher) Apply(set *decor.Set) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pub, err := p.Conn.Publish(set)
	if err != nil {
		return err
	}
	if err := p.Conn.SetRootBackground(pub.BackgroundPixmap()); err != nil {
		pub.Destroy()
		return err
	}
	p.current.Destroy()
	p.current = pub

	if set.Cursor != "" && set.Cursor != p.cursorFor {
		cid, err := p.Conn.DefineRootCursor(set.Cursor)
		if err != nil {
			p.Logger.Errorf("x11", "cursor %q: %v", set.Cursor, err)
		} else {
			if p.cursor != 0 {
				p.Conn.FreeCursor(p.cursor)
			}
			p.cursor, p.cursorFor = cid, set.Cursor
		}
	}
	p.Conn.Sync()
	p.Logger.Infof("x11", "published set: background pixmap 0x%x, cursor %s", pub.BackgroundPixmap(), p.cursorFor)
	return nil
}

// Current returns what was last published, or nil.
func (p *Publisher) Current() *Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Close unsets the root background and its properties, then frees every
// published resource.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil {
		if err := p.Conn.ClearRootBackground(); err != nil {
			p.Logger.Errorf("x11", "clear root background: %v", err)
		}
	}
	p.current.Destroy()
	p.current = nil
	if p.cursor != 0 {
		p.Conn.FreeCursor(p.cursor)
	}
	p.cursor, p.cursorFor = 0, ""
}
