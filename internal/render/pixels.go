package render

import "image/color"

// Canvas is a drawing surface addressed in pixels.
type Canvas interface {
	Fill(c color.RGBA)
	DrawCell(x, y, w, h int, c color.RGBA)
}

// Frame is an RGBA pixel buffer implementing Canvas.
type Frame struct {
	w, h int
	buf  []byte
}

// NewFrame allocates a frame of w x h pixels.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the frame dimensions in pixels.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// Pix exposes the RGBA bytes in row-major order.
func (f *Frame) Pix() []byte { return f.buf }

// At returns the color of the pixel at (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return color.RGBA{}
	}
	base := (y*f.w + x) * 4
	return color.RGBA{R: f.buf[base], G: f.buf[base+1], B: f.buf[base+2], A: f.buf[base+3]}
}

// Fill paints every pixel with c.
func (f *Frame) Fill(c color.RGBA) {
	for i := 0; i < len(f.buf); i += 4 {
		setPixel(f.buf[i:i+4], c)
	}
}

// DrawCell fills the rectangle with top-left (x, y). Pixels outside the frame
// are clipped.
func (f *Frame) DrawCell(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.w), min(y+h, f.h)
	for py := y0; py < y1; py++ {
		row := py * f.w * 4
		for px := x0; px < x1; px++ {
			base := row + px*4
			setPixel(f.buf[base:base+4], c)
		}
	}
}

func setPixel(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
