package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Fill paints the whole of dst with c.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Copy replaces the pixels of dst with src, aligning both origins.
func Copy(dst draw.Image, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
}

func insideEllipse(dx, dy, a, b int) bool {
	if a <= 0 || b <= 0 {
		return dx == 0 && dy == 0
	}
	return dx*dx*b*b+dy*dy*a*a <= a*a*b*b
}

// FillEllipse fills the ellipse centred on c with semi-axes a and b.
// Negative axes draw nothing.
func FillEllipse(dst draw.Image, c image.Point, a, b int, src color.Color) {
	if a < 0 || b < 0 {
		return
	}
	for dy := -b; dy <= b; dy++ {
		for dx := -a; dx <= a; dx++ {
			if insideEllipse(dx, dy, a, b) {
				dst.Set(c.X+dx, c.Y+dy, src)
			}
		}
	}
}

// Ellipse draws the outline of the ellipse centred on c. The outline is
// 1+2*thick pixels wide, straddling the nominal curve.
func Ellipse(dst draw.Image, c image.Point, a, b, thick int, src color.Color) {
	if a < 0 || b < 0 || thick < 0 {
		return
	}
	oa, ob := a+thick, b+thick
	ia, ib := a-thick-1, b-thick-1
	for dy := -ob; dy <= ob; dy++ {
		for dx := -oa; dx <= oa; dx++ {
			if !insideEllipse(dx, dy, oa, ob) {
				continue
			}
			if ia > 0 && ib > 0 && insideEllipse(dx, dy, ia, ib) {
				continue
			}
			dst.Set(c.X+dx, c.Y+dy, src)
		}
	}
}

// Line draws from p0 to p1 inclusive. The stroke is 1+2*thick pixels wide.
func Line(dst draw.Image, p0, p1 image.Point, thick int, src color.Color) {
	if thick < 0 {
		thick = 0
	}
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		plot(dst, x, y, thick, src)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func plot(dst draw.Image, x, y, thick int, src color.Color) {
	if thick == 0 {
		dst.Set(x, y, src)
		return
	}
	r := image.Rect(x-thick, y-thick, x+thick+1, y+thick+1).Intersect(dst.Bounds())
	draw.Draw(dst, r, image.NewUniform(src), image.Point{}, draw.Src)
}

// Border3D draws a bevel of the given width inside r: top and left edges in
// topLeft, bottom and right edges in bottomRight. Corners where the two meet
// take bottomRight.
func Border3D(dst draw.Image, r image.Rectangle, width int, topLeft, bottomRight color.Color) {
	tl := image.NewUniform(topLeft)
	br := image.NewUniform(bottomRight)
	for i := 0; i < width; i++ {
		in := image.Rect(r.Min.X+i, r.Min.Y+i, r.Max.X-i, r.Max.Y-i)
		if in.Empty() {
			return
		}
		draw.Draw(dst, image.Rect(in.Min.X, in.Min.Y, in.Max.X, in.Min.Y+1), tl, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Min.X, in.Min.Y, in.Min.X+1, in.Max.Y), tl, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Min.X, in.Max.Y-1, in.Max.X, in.Max.Y), br, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Max.X-1, in.Min.Y, in.Max.X, in.Max.Y), br, image.Point{}, draw.Src)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
