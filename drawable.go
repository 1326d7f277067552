package blurview

import (
	"image"

	"golang.org/x/image/draw"
)

// Drawable is an image description that can rasterize itself.
//
// IntrinsicSize reports the natural size in pixels; a dimension <= 0 means
// the drawable has no natural size (a solid color, for example). Draw
// renders the drawable at full opacity into dst, stretched to fill
// dst.Bounds() from the origin.
type Drawable interface {
	IntrinsicSize() (width, height int)
	Draw(dst *Pixmap) error
}

// Bitmap is a Drawable backed by pre-decoded pixels.
// Extract returns Pixmap() directly instead of re-rasterizing.
type Bitmap interface {
	Drawable

	// Pixmap returns the decoded pixels as RGBA8.
	Pixmap() (*Pixmap, error)
}

// BitmapDrawable wraps a decoded image.
type BitmapDrawable struct {
	img image.Image
}

// NewBitmapDrawable creates a drawable for img.
// A *Pixmap is used as is; other images are normalized on extraction.
// An image with empty bounds cannot be extracted (ErrInvalidDimensions).
func NewBitmapDrawable(img image.Image) *BitmapDrawable {
	return &BitmapDrawable{img: img}
}

// Image returns the wrapped image.
func (d *BitmapDrawable) Image() image.Image {
	return d.img
}

// IntrinsicSize returns the image bounds size.
func (d *BitmapDrawable) IntrinsicSize() (int, int) {
	if d.img == nil {
		return 0, 0
	}
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

// Pixmap returns the image as a Pixmap. A wrapped *Pixmap is returned
// without copying.
func (d *BitmapDrawable) Pixmap() (*Pixmap, error) {
	if d.img == nil {
		return nil, ErrUnsupportedSource
	}
	if pm, ok := d.img.(*Pixmap); ok {
		if !pm.valid() {
			return nil, ErrInvalidPixmap
		}
		return pm, nil
	}
	return FromImage(d.img)
}

// Draw scales the image onto dst with bilinear filtering.
func (d *BitmapDrawable) Draw(dst *Pixmap) error {
	if d.img == nil || d.img.Bounds().Empty() {
		return ErrUnsupportedSource
	}
	draw.ApproxBiLinear.Scale(dst.NRGBA(), dst.Bounds(), d.img, d.img.Bounds(), draw.Over, nil)
	return nil
}

// ColorDrawable fills its bounds with a single color.
// It has no intrinsic size.
type ColorDrawable struct {
	Color RGBA
}

// NewColorDrawable creates a solid color drawable.
func NewColorDrawable(c RGBA) *ColorDrawable {
	return &ColorDrawable{Color: c}
}

// IntrinsicSize returns -1, -1: a color has no natural size.
func (d *ColorDrawable) IntrinsicSize() (int, int) {
	return -1, -1
}

// Draw fills dst with the color.
func (d *ColorDrawable) Draw(dst *Pixmap) error {
	dst.Clear(d.Color)
	return nil
}
