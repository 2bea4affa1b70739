package screens

import (
	"context"
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/cursor"
	"github.com/rook-computer/wmdecor/internal/decor"
	"github.com/rook-computer/wmdecor/internal/menu"
	"github.com/rook-computer/wmdecor/internal/render"
	"github.com/rook-computer/wmdecor/internal/render/layout"
	"github.com/rook-computer/wmdecor/internal/state"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Source is what the preview reads the decorations from.
type Source interface {
	Current() *decor.Set
	Config() *config.Config
	Face() font.Face
}

const (
	galleryColumns = 7
	margin         = 16
)

// DefaultMenuItems are shown in the menu mock.
var DefaultMenuItems = []string{"New", "Reshape", "Move", "Delete", "Hide"}

// PreviewScreen shows the current decorations on a mock window over the
// desktop background, with the cursor gallery and a menu mock.
type PreviewScreen struct {
	Source    Source
	Menu      *menu.Styler
	Logger    Logger
	Title     string
	MenuItems []string
}

func NewPreviewScreen(src Source, styler *menu.Styler, logger Logger) *PreviewScreen {
	return &PreviewScreen{
		Source:    src,
		Menu:      styler,
		Logger:    logger,
		Title:     "wmdecor",
		MenuItems: DefaultMenuItems,
	}
}

func (s *PreviewScreen) Start(ctx context.Context) error {
	if s.Source == nil {
		return errors.New("no decoration source configured")
	}
	return nil
}

func (s *PreviewScreen) Stop() error { return nil }

// Layout is where the preview places each element.
type Layout struct {
	Window   image.Rectangle
	TitleBar image.Rectangle
	Label    image.Rectangle
	Buttons  []image.Rectangle // indexed like decor.Buttons
	Menu     image.Rectangle
	Gallery  image.Rectangle
}

// LayoutFor positions the preview for a screen of the given size.
func LayoutFor(screen image.Rectangle, set *decor.Set, border int) Layout {
	top, bottom := layout.SplitHorizontal(screen, screen.Dy()*3/5)
	win := layout.Center(top, top.Dx()*3/5, top.Dy()*3/4)
	title, body := layout.SplitHorizontal(win, set.TitleHeight)
	inner := layout.Inset(title, border)
	n := len(decor.Buttons)
	stripW := n*set.ButtonSize + (n-1)*border
	label, _ := layout.SplitVertical(inner, inner.Dx()-stripW-border)
	return Layout{
		Window:   win,
		TitleBar: title,
		Label:    label,
		Buttons:  layout.Row(layout.AnchorRight(inner, stripW), n, set.ButtonSize, border),
		Menu:     layout.Inset(body, margin),
		Gallery:  layout.Inset(bottom, margin),
	}
}

func (s *PreviewScreen) Draw(r render.Drawer, st state.State) {
	w, h := r.Size()
	screen := image.Rect(0, 0, w, h)
	set := s.Source.Current()
	if set == nil {
		r.Fill(render.Black)
		r.DrawText("no decorations built", w/2, h/2, render.TextStyle{Color: render.White, Align: render.TextAlignCenter})
		s.drawStatus(r, screen, st)
		return
	}
	cfg := s.Source.Config()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode, ok := render.ParseScaleMode(string(set.BackgroundMode))
	if !ok {
		mode = render.ScaleModeTile
	}
	r.Fill(render.Black)
	r.DrawImageInRect(set.Background, screen, mode)

	lay := LayoutFor(screen, set, cfg.BorderWidth)
	s.drawWindow(r, lay, set, cfg, st.Hover)
	s.drawMenu(r, lay)
	s.drawGallery(r, lay.Gallery)
	s.drawStatus(r, screen, st)
}

func (s *PreviewScreen) drawWindow(r render.Drawer, lay Layout, set *decor.Set, cfg *config.Config, hover int) {
	bw := cfg.BorderWidth
	win := lay.Window
	r.FillRect(win, render.Black)
	r.FillRect(layout.Inset(win, bw), render.White)
	r.FillRect(layout.Inset(lay.TitleBar, bw), cfg.WindowTitleColor)

	m := r.MeasureText(s.Title, render.TextStyle{})
	if m.Width <= lay.Label.Dx() {
		r.DrawText(s.Title, lay.Label.Min.X+bw, lay.TitleBar.Min.Y+(lay.TitleBar.Dy()-m.LineHeight)/2,
			render.TextStyle{Color: render.Black})
	}

	for i, btn := range decor.Buttons {
		pair := set.Button(btn)
		img := pair.Normal
		if hover == i {
			img = pair.Hover
		}
		rect := lay.Buttons[i]
		r.DrawImage(img, rect.Min.X, rect.Min.Y, render.ImageOpts{})
	}
}

func (s *PreviewScreen) drawMenu(r render.Drawer, lay Layout) {
	if s.Menu == nil || len(s.MenuItems) == 0 {
		return
	}
	face := s.Source.Face()
	if face == nil {
		return
	}
	sz := menu.Size(s.MenuItems, face)
	at := layout.AnchorTopLeft(lay.Menu, sz.X, sz.Y)
	if at.Empty() {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	menu.Draw(img, img.Bounds(), s.Menu.Palette(), face, s.MenuItems, 1)
	r.DrawImage(img.SubImage(image.Rect(0, 0, at.Dx(), at.Dy())), at.Min.X, at.Min.Y, render.ImageOpts{})
}

// drawGallery shows every cursor at double size with its name.
func (s *PreviewScreen) drawGallery(r render.Drawer, area image.Rectangle) {
	names := cursor.Names()
	cellW := area.Dx() / galleryColumns
	if cellW <= 0 {
		return
	}
	cellH := 2*cursor.Size + 2*margin
	for i, name := range names {
		c, ok := cursor.ByName(name)
		if !ok {
			continue
		}
		var big cursor.Cursor2
		c.ScaleTo(&big)
		col, row := i%galleryColumns, i/galleryColumns
		cell := image.Rect(area.Min.X+col*cellW, area.Min.Y+row*cellH, area.Min.X+(col+1)*cellW, area.Min.Y+(row+1)*cellH)
		if cell.Max.Y > area.Max.Y {
			break
		}
		spot := layout.Center(image.Rect(cell.Min.X, cell.Min.Y, cell.Max.X, cell.Min.Y+2*cursor.Size), 2*cursor.Size, 2*cursor.Size)
		r.FillRect(spot, render.HoverGray)
		r.DrawImage(big.Image(), spot.Min.X, spot.Min.Y, render.ImageOpts{Over: true})
		r.DrawText(name, (cell.Min.X+cell.Max.X)/2, spot.Max.Y+2, render.TextStyle{Color: render.White, Align: render.TextAlignCenter})
	}
}

func (s *PreviewScreen) drawStatus(r render.Drawer, screen image.Rectangle, st state.State) {
	line := fmt.Sprintf("%s  generation %d", st.Phase, st.Generation)
	if st.Background != "" {
		line += "  background " + st.Background
	}
	m := r.MeasureText(line, render.TextStyle{})
	y := screen.Max.Y - margin - m.LineHeight
	if st.LastError != "" {
		y -= m.LineHeight
		r.DrawText(st.LastError, screen.Min.X+margin, y+m.LineHeight, render.TextStyle{Color: render.WarnRed})
	}
	r.DrawText(line, screen.Min.X+margin, y, render.TextStyle{Color: render.White})
}
