// Command blurdemo displays an image through a blurring ImageView and
// saves what the view shows as a PNG.
//
// Without -input it renders a built-in vector scene instead.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/blurview"
	"github.com/gogpu/blurview/view"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (PNG or JPEG); empty for a built-in scene")
		output  = flag.String("output", "blurred.png", "output file")
		radius  = flag.Int("radius", 10, "blur radius (0 disables, clamped to [1, 25])")
		fill    = flag.String("color", "#e5484d", "fill color of the built-in scene")
		verbose = flag.Bool("v", false, "log pipeline diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		blurview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := blurview.ParseHex(*fill)
	if err != nil {
		log.Fatalf("Bad -color: %v", err)
	}

	src, err := loadSource(*input, c)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	surface := &pngSurface{path: *output}
	v, err := view.New(surface, view.WithBlurRadius(*radius))
	if err != nil {
		log.Fatalf("Failed to create view: %v", err)
	}
	v.SetImage(src)

	if surface.err != nil {
		log.Fatalf("Failed to save: %v", surface.err)
	}
	log.Printf("Saved %s (%dx%d, radius %d)\n", *output, surface.width, surface.height, *radius)
}

// loadSource decodes path, or builds a demo scene when path is empty.
func loadSource(path string, fill blurview.RGBA) (blurview.Drawable, error) {
	if path == "" {
		return demoScene(fill), nil
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return blurview.NewBitmapDrawable(img), nil
}

// demoScene is a triangle overlapped by a lens in a 400x300 viewport.
func demoScene(fill blurview.RGBA) blurview.Drawable {
	return blurview.NewVectorDrawable(400, 300, fill).
		MoveTo(200, 20).LineTo(380, 280).LineTo(20, 280).Close().
		MoveTo(140, 180).QuadTo(200, 100, 260, 180).QuadTo(200, 260, 140, 180).Close()
}

// pngSurface writes whatever it is shown to a PNG file.
type pngSurface struct {
	path          string
	width, height int
	err           error
}

func (s *pngSurface) Show(d blurview.Drawable) {
	if d == nil {
		return
	}
	pm, err := blurview.Extract(d)
	if err != nil {
		s.err = err
		return
	}
	s.width, s.height = pm.Width(), pm.Height()
	s.err = pm.SavePNG(s.path)
}
