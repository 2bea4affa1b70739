// Package p9image decodes Plan 9 image(6) files, both the uncompressed form
// and the "compressed\n" block form.
//
// A file starts with five 12-byte text fields: a channel descriptor (or a
// legacy ldepth digit) followed by min.x, min.y, max.x and max.y. Pixel rows
// follow. Multi-byte pixels are little-endian, with the first channel in the
// descriptor occupying the most significant bits. Sub-byte pixels are packed
// most significant bit first.
package p9image

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"io"
	"strconv"
	"strings"
)

const (
	fieldLen      = 12
	headerLen     = 5 * fieldLen
	blockLen      = 2 * fieldLen
	compressedTag = "compressed\n"

	// Pixel count bound; a header can claim anything.
	maxPixels = 1 << 26
	// Largest compressed block a Plan 9 writer emits.
	maxBlock = 6000
)

var (
	ErrHeader  = errors.New("p9image: malformed header")
	ErrChan    = errors.New("p9image: unsupported channel descriptor")
	ErrCorrupt = errors.New("p9image: corrupt compressed data")
	ErrTooBig  = errors.New("p9image: image too large")
)

type channel struct {
	kind byte // r g b k a m x
	bits int
}

// Header is the parsed image(6) header.
type Header struct {
	Chan       string
	Rect       image.Rectangle
	Compressed bool

	chans []channel
	depth int
}

// Depth returns bits per pixel.
func (h *Header) Depth() int { return h.depth }

// BytesPerLine returns the stored length of one row.
func (h *Header) BytesPerLine() int {
	start := floorDiv(h.Rect.Min.X*h.depth, 8)
	end := ceilDiv(h.Rect.Max.X*h.depth, 8)
	return end - start
}

var ldepthChans = map[string]string{"0": "k1", "1": "k2", "2": "k4", "3": "m8"}

func parseChan(desc string) ([]channel, int, error) {
	if legacy, ok := ldepthChans[desc]; ok {
		desc = legacy
	}
	var chans []channel
	depth := 0
	for i := 0; i < len(desc); {
		kind := desc[i]
		if !strings.ContainsRune("rgbkamx", rune(kind)) {
			return nil, 0, fmt.Errorf("%w: %q", ErrChan, desc)
		}
		j := i + 1
		for j < len(desc) && desc[j] >= '0' && desc[j] <= '9' {
			j++
		}
		bits, err := strconv.Atoi(desc[i+1 : j])
		if err != nil || bits <= 0 || bits > 8 {
			return nil, 0, fmt.Errorf("%w: %q", ErrChan, desc)
		}
		chans = append(chans, channel{kind: kind, bits: bits})
		depth += bits
		i = j
	}
	if len(chans) == 0 {
		return nil, 0, fmt.Errorf("%w: empty", ErrChan)
	}
	switch {
	case depth < 8:
		if len(chans) != 1 || chans[0].kind != 'k' || (depth != 1 && depth != 2 && depth != 4) {
			return nil, 0, fmt.Errorf("%w: %q", ErrChan, desc)
		}
	case depth%8 != 0 || depth > 32:
		return nil, 0, fmt.Errorf("%w: %q has depth %d", ErrChan, desc, depth)
	}
	for _, c := range chans {
		if c.kind == 'm' && (len(chans) != 1 || c.bits != 8) {
			return nil, 0, fmt.Errorf("%w: colour map must be m8 alone", ErrChan)
		}
	}
	return chans, depth, nil
}

func parseHeader(b []byte) (*Header, error) {
	if len(b) < headerLen {
		return nil, ErrHeader
	}
	f := strings.Fields(string(b[:headerLen]))
	if len(f) != 5 {
		return nil, ErrHeader
	}
	chans, depth, err := parseChan(f[0])
	if err != nil {
		return nil, err
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(f[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrHeader, f[i+1])
		}
		v[i] = n
	}
	r := image.Rect(v[0], v[1], v[2], v[3])
	if r.Min.X != v[0] || r.Max.X != v[2] || r.Min.Y != v[1] || r.Max.Y != v[3] || r.Empty() {
		return nil, fmt.Errorf("%w: bad rectangle %v", ErrHeader, v)
	}
	// Dx and Dy wrap for extreme coordinates; check before multiplying.
	if r.Dx() <= 0 || r.Dy() <= 0 || r.Dx() > maxPixels || r.Dx() > maxPixels/r.Dy() {
		return nil, ErrTooBig
	}
	return &Header{Chan: f[0], Rect: r, chans: chans, depth: depth}, nil
}

// Sniff reports whether head looks like the start of an image(6) file.
func Sniff(head []byte) bool {
	if bytes.HasPrefix(head, []byte(compressedTag)) {
		return true
	}
	_, err := parseHeader(head)
	return err == nil
}

func readHeader(br *bufio.Reader) (*Header, error) {
	compressed := false
	if tag, err := br.Peek(len(compressedTag)); err == nil && string(tag) == compressedTag {
		compressed = true
		if _, err := br.Discard(len(compressedTag)); err != nil {
			return nil, err
		}
	}
	buf := make([]byte, headerLen)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	h, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	h.Compressed = compressed
	return h, nil
}

// DecodeConfig returns the colour model and size without reading pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: h.colorModel(), Width: h.Rect.Dx(), Height: h.Rect.Dy()}, nil
}

// Decode reads an image(6) file.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	bpl := h.BytesPerLine()
	data := make([]byte, bpl*h.Rect.Dy())
	if h.Compressed {
		err = decompress(br, h, data)
	} else if _, err = io.ReadFull(br, data); err != nil {
		err = fmt.Errorf("p9image: short pixel data: %w", err)
	}
	if err != nil {
		return nil, err
	}
	return h.unpack(data), nil
}

func (h *Header) isCMap() bool { return h.chans[0].kind == 'm' }

func (h *Header) isGrey() bool { return len(h.chans) == 1 && h.chans[0].kind == 'k' }

func (h *Header) colorModel() color.Model {
	switch {
	case h.isCMap():
		return color.Palette(palette.Plan9)
	case h.isGrey():
		return color.GrayModel
	default:
		return color.RGBAModel
	}
}

func (h *Header) unpack(data []byte) image.Image {
	r := h.Rect
	bpl := h.BytesPerLine()
	startBit := floorDiv(r.Min.X*h.depth, 8) * 8

	if h.depth < 8 {
		img := image.NewGray(r)
		mask := 1<<uint(h.depth) - 1
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := data[(y-r.Min.Y)*bpl:]
			for x := r.Min.X; x < r.Max.X; x++ {
				p := x*h.depth - startBit
				shift := 8 - h.depth - p%8
				v := int(row[p/8]>>uint(shift)) & mask
				img.SetGray(x, y, color.Gray{Y: uint8(v * 255 / mask)})
			}
		}
		return img
	}

	nb := h.depth / 8
	pixel := func(x, y int) uint32 {
		off := (y-r.Min.Y)*bpl + (x-r.Min.X)*nb
		var v uint32
		for i := nb - 1; i >= 0; i-- {
			v = v<<8 | uint32(data[off+i])
		}
		return v
	}

	switch {
	case h.isGrey():
		img := image.NewGray(r)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(pixel(x, y))})
			}
		}
		return img
	case h.isCMap():
		img := image.NewPaletted(r, palette.Plan9)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetColorIndex(x, y, uint8(pixel(x, y)))
			}
		}
		return img
	}

	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, h.split(pixel(x, y)))
		}
	}
	return img
}

// split breaks a packed pixel into channels, last descriptor entry first.
func (h *Header) split(v uint32) color.RGBA {
	c := color.RGBA{A: 0xFF}
	for i := len(h.chans) - 1; i >= 0; i-- {
		ch := h.chans[i]
		mask := uint32(1)<<uint(ch.bits) - 1
		val := uint8((v & mask) * 255 / mask)
		v >>= uint(ch.bits)
		switch ch.kind {
		case 'r':
			c.R = val
		case 'g':
			c.G = val
		case 'b':
			c.B = val
		case 'k':
			c.R, c.G, c.B = val, val, val
		case 'a':
			c.A = val
		}
	}
	return c
}

// decompress fills data from a sequence of blocks. Each block carries the
// row it ends at and its byte count; codes are literal runs (high bit set)
// or back references into the output produced so far.
func decompress(br *bufio.Reader, h *Header, data []byte) error {
	bpl := h.BytesPerLine()
	hdr := make([]byte, blockLen)
	out := 0
	for y := h.Rect.Min.Y; y < h.Rect.Max.Y; {
		if _, err := io.ReadFull(br, hdr); err != nil {
			return fmt.Errorf("%w: block header: %v", ErrCorrupt, err)
		}
		f := strings.Fields(string(hdr))
		if len(f) != 2 {
			return fmt.Errorf("%w: block header %q", ErrCorrupt, hdr)
		}
		maxy, err1 := strconv.Atoi(f[0])
		nb, err2 := strconv.Atoi(f[1])
		if err1 != nil || err2 != nil || maxy <= y || maxy > h.Rect.Max.Y || nb < 0 {
			return fmt.Errorf("%w: block header %q", ErrCorrupt, hdr)
		}
		if nb > maxBlock {
			return fmt.Errorf("%w: block of %d bytes", ErrCorrupt, nb)
		}
		block := make([]byte, nb)
		if _, err := io.ReadFull(br, block); err != nil {
			return fmt.Errorf("%w: block data: %v", ErrCorrupt, err)
		}
		end := (maxy - h.Rect.Min.Y) * bpl
		n, err := expandBlock(block, data, out, end)
		if err != nil {
			return err
		}
		out = n
		y = maxy
	}
	return nil
}

func expandBlock(in, data []byte, out, end int) (int, error) {
	for i := 0; i < len(in); {
		c := in[i]
		i++
		if c >= 128 {
			cnt := int(c-128) + 1
			if i+cnt > len(in) || out+cnt > end {
				return 0, fmt.Errorf("%w: literal overruns", ErrCorrupt)
			}
			copy(data[out:], in[i:i+cnt])
			i += cnt
			out += cnt
			continue
		}
		if i >= len(in) {
			return 0, fmt.Errorf("%w: truncated reference", ErrCorrupt)
		}
		offs := int(in[i]) + int(c&3)<<8 + 1
		i++
		cnt := int(c>>2) + 3
		src := out - offs
		if src < 0 || out+cnt > end {
			return 0, fmt.Errorf("%w: reference out of range", ErrCorrupt)
		}
		for k := 0; k < cnt; k++ {
			data[out+k] = data[src+k]
		}
		out += cnt
	}
	if out != end {
		return 0, fmt.Errorf("%w: block ends at %d, want %d", ErrCorrupt, out, end)
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
