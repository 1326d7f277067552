package blurview

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextDrawable renders a single line of text in a fixed 7x13 bitmap face.
//
// The intrinsic size is the measured advance of the label by the face's
// line height. Drawing into a differently sized pixmap scales the rendered
// label with bilinear filtering.
type TextDrawable struct {
	Text       string
	Color      RGBA
	Background RGBA
}

// NewTextDrawable creates a label drawn in c on a transparent background.
func NewTextDrawable(text string, c RGBA) *TextDrawable {
	return &TextDrawable{Text: text, Color: c, Background: Transparent}
}

// textFace is shared; basicfont faces are immutable.
var textFace font.Face = basicfont.Face7x13

// IntrinsicSize returns the label's advance width and line height.
func (d *TextDrawable) IntrinsicSize() (int, int) {
	if d.Text == "" {
		return 0, 0
	}
	return font.MeasureString(textFace, d.Text).Ceil(), textFace.Metrics().Height.Ceil()
}

// Draw renders the label into dst.
func (d *TextDrawable) Draw(dst *Pixmap) error {
	dst.Clear(d.Background)
	if d.Text == "" {
		return nil
	}

	w, h := d.IntrinsicSize()
	if w == dst.Width() && h == dst.Height() {
		d.drawInto(dst.NRGBA())
		return nil
	}

	label := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(label, label.Bounds(), image.NewUniform(d.Background.Color()), image.Point{}, draw.Src)
	d.drawInto(label)
	draw.ApproxBiLinear.Scale(dst.NRGBA(), dst.Bounds(), label, label.Bounds(), draw.Src, nil)
	return nil
}

// drawInto draws the label at the origin of img, baseline at the ascent.
func (d *TextDrawable) drawInto(img draw.Image) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(d.Color.Color()),
		Face: textFace,
		Dot:  fixed.Point26_6{X: 0, Y: textFace.Metrics().Ascent},
	}
	drawer.DrawString(d.Text)
}
