package blurview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// MaxPixmapBytes bounds a single pixmap allocation (1 GiB).
// Requests above it fail with ErrTooLarge instead of exhausting memory.
const MaxPixmapBytes = 1 << 30

// Pixmap represents a rectangular RGBA8 pixel buffer.
//
// Pixels are stored row-major and non-premultiplied, 4 bytes per pixel.
// len(Data()) always equals Width()*Height()*4.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Returns ErrInvalidDimensions for non-positive sizes and ErrTooLarge when
// the buffer would exceed MaxPixmapBytes.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxPixmapBytes/BytesPerPixel/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * BytesPerPixel
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// valid reports whether p satisfies the buffer invariant.
func (p *Pixmap) valid() bool {
	return p != nil && p.width > 0 && p.height > 0 &&
		len(p.data) == p.width*p.height*BytesPerPixel
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if i, ok := p.offset(x, y); ok {
		p.put(i, c.nrgba())
	}
}

// GetPixel returns the color of a single pixel, or Transparent outside
// the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	i, ok := p.offset(x, y)
	if !ok {
		return Transparent
	}
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	n := c.nrgba()
	for i := 0; i < len(p.data); i += BytesPerPixel {
		p.put(i, n)
	}
}

// offset returns the byte offset of (x, y).
func (p *Pixmap) offset(x, y int) (int, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, false
	}
	return (y*p.width + x) * BytesPerPixel, true
}

func (p *Pixmap) put(i int, n color.NRGBA) {
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// NRGBA returns an *image.NRGBA that shares the pixmap's memory.
// Writes through the returned image modify the pixmap.
func (p *Pixmap) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to an independent image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, normalizing it to RGBA8.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Tightly packed NRGBA is already in our layout.
	if src, ok := img.(*image.NRGBA); ok && src.Stride == pm.Stride() {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y)
		copy(pm.data, src.Pix[off:off+len(pm.data)])
		return pm, nil
	}

	draw.Draw(pm.NRGBA(), pm.Bounds(), img, bounds.Min, draw.Src)
	return pm, nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.NRGBA())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	i, ok := p.offset(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if i, ok := p.offset(x, y); ok {
		p.put(i, color.NRGBAModel.Convert(c).(color.NRGBA))
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
