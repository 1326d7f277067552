package blurview

import (
	"image"

	"golang.org/x/image/vector"
)

// pathVerb identifies a recorded path command.
type pathVerb uint8

const (
	verbMove pathVerb = iota
	verbLine
	verbQuad
	verbCubic
	verbClose
)

// pathCmd is one recorded path command with up to three points.
type pathCmd struct {
	verb pathVerb
	pts  [6]float32
}

// VectorDrawable is a filled vector path in a fixed viewport.
//
// The viewport size is the intrinsic size. Draw scales the path from the
// viewport onto the destination bounds and fills it with the nonzero
// winding rule.
//
//	d := blurview.NewVectorDrawable(24, 24, blurview.Red).
//	    MoveTo(12, 2).LineTo(22, 22).LineTo(2, 22).Close()
type VectorDrawable struct {
	width, height int
	fill          RGBA
	cmds          []pathCmd
}

// NewVectorDrawable creates an empty path with the given viewport size.
func NewVectorDrawable(width, height int, fill RGBA) *VectorDrawable {
	return &VectorDrawable{width: width, height: height, fill: fill}
}

// MoveTo starts a new subpath at (x, y).
func (d *VectorDrawable) MoveTo(x, y float32) *VectorDrawable {
	d.cmds = append(d.cmds, pathCmd{verb: verbMove, pts: [6]float32{x, y}})
	return d
}

// LineTo adds a line to (x, y).
func (d *VectorDrawable) LineTo(x, y float32) *VectorDrawable {
	d.cmds = append(d.cmds, pathCmd{verb: verbLine, pts: [6]float32{x, y}})
	return d
}

// QuadTo adds a quadratic Bézier with control (cx, cy) ending at (x, y).
func (d *VectorDrawable) QuadTo(cx, cy, x, y float32) *VectorDrawable {
	d.cmds = append(d.cmds, pathCmd{verb: verbQuad, pts: [6]float32{cx, cy, x, y}})
	return d
}

// CubeTo adds a cubic Bézier with controls (c1x, c1y), (c2x, c2y) ending at (x, y).
func (d *VectorDrawable) CubeTo(c1x, c1y, c2x, c2y, x, y float32) *VectorDrawable {
	d.cmds = append(d.cmds, pathCmd{verb: verbCubic, pts: [6]float32{c1x, c1y, c2x, c2y, x, y}})
	return d
}

// Close closes the current subpath.
func (d *VectorDrawable) Close() *VectorDrawable {
	d.cmds = append(d.cmds, pathCmd{verb: verbClose})
	return d
}

// IntrinsicSize returns the viewport size.
func (d *VectorDrawable) IntrinsicSize() (int, int) {
	return d.width, d.height
}

// Draw rasterizes the path into dst.
func (d *VectorDrawable) Draw(dst *Pixmap) error {
	if len(d.cmds) == 0 {
		return nil
	}
	if d.cmds[0].verb != verbMove {
		return ErrUnsupportedSource
	}

	// Viewport -> destination scale. A drawable without a viewport is
	// drawn in destination pixels.
	sx, sy := float32(1), float32(1)
	if d.width > 0 && d.height > 0 {
		sx = float32(dst.Width()) / float32(d.width)
		sy = float32(dst.Height()) / float32(d.height)
	}

	z := vector.NewRasterizer(dst.Width(), dst.Height())
	for _, c := range d.cmds {
		p := c.pts
		switch c.verb {
		case verbMove:
			z.MoveTo(p[0]*sx, p[1]*sy)
		case verbLine:
			z.LineTo(p[0]*sx, p[1]*sy)
		case verbQuad:
			z.QuadTo(p[0]*sx, p[1]*sy, p[2]*sx, p[3]*sy)
		case verbCubic:
			z.CubeTo(p[0]*sx, p[1]*sy, p[2]*sx, p[3]*sy, p[4]*sx, p[5]*sy)
		case verbClose:
			z.ClosePath()
		}
	}

	z.Draw(dst.NRGBA(), dst.Bounds(), image.NewUniform(d.fill.Color()), image.Point{})
	return nil
}
