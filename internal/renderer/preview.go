package renderer

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/orchestrator"
	"github.com/ivlev/routemotion/internal/system"
)

var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// Preview rasterises frames: every route is drawn as a solid card with
// its name, placed according to the layer transform.
type Preview struct {
	width, height int
	cards         map[navigation.Route]*image.RGBA
}

func NewPreview(width, height int) *Preview {
	return &Preview{
		width:  width,
		height: height,
		cards:  make(map[navigation.Route]*image.RGBA),
	}
}

// Render draws f into a pooled buffer. Return it with system.PutImage
// once it is no longer needed.
func (p *Preview) Render(f orchestrator.Frame) *image.RGBA {
	dst := system.GetImage(image.Rect(0, 0, p.width, p.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if !f.Settled {
		p.drawLayer(dst, f.From)
	}
	p.drawLayer(dst, f.To)
	return dst
}

func (p *Preview) drawLayer(dst *image.RGBA, l orchestrator.Layer) {
	if l.Opacity <= 0 || math.Abs(l.Transform.Scale) < 1e-6 {
		return
	}
	card := p.card(l.Route)
	opts := &draw.Options{
		SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(l.Opacity * 255))}),
	}
	draw.ApproxBiLinear.Transform(dst, p.matrix(l.Transform), card, card.Bounds(), draw.Over, opts)
}

// matrix maps card coordinates to frame coordinates: scale and rotate
// about the center, then offset by a percentage of the frame.
func (p *Preview) matrix(t motion.Transform) f64.Aff3 {
	cx, cy := float64(p.width)/2, float64(p.height)/2
	ox, oy := t.X/100*float64(p.width), t.Y/100*float64(p.height)

	rad := t.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	a, b := t.Scale*cos, -t.Scale*sin
	d, e := t.Scale*sin, t.Scale*cos

	return f64.Aff3{
		a, b, cx + ox - (a*cx + b*cy),
		d, e, cy + oy - (d*cx + e*cy),
	}
}

func (p *Preview) card(route navigation.Route) *image.RGBA {
	if c, ok := p.cards[route]; ok {
		return c
	}
	c := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(c, c.Bounds(), image.NewUniform(RouteColor(route)), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 8+basicfont.Face7x13.Ascent),
	}
	d.DrawString(string(route))

	p.cards[route] = c
	return c
}

// RouteColor derives a stable opaque color from the route name.
func RouteColor(route navigation.Route) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(route))
	sum := h.Sum32()
	// keep every channel bright enough to stand out from the background
	return color.RGBA{
		R: uint8(64 + sum%160),
		G: uint8(64 + (sum>>8)%160),
		B: uint8(64 + (sum>>16)%160),
		A: 255,
	}
}

// PNGRenderer writes every frame it receives as a numbered PNG file.
// Errors are sticky like StyleRenderer's.
type PNGRenderer struct {
	preview *Preview
	dir     string
	written int
	err     error
}

func NewPNGRenderer(p *Preview, dir string) *PNGRenderer {
	return &PNGRenderer{preview: p, dir: dir}
}

func (r *PNGRenderer) Render(f orchestrator.Frame) {
	if r.err != nil {
		return
	}
	img := r.preview.Render(f)
	defer system.PutImage(img)

	path := filepath.Join(r.dir, fmt.Sprintf("frame_%06d.png", f.Seq))
	if err := WritePNG(path, img); err != nil {
		r.err = err
		return
	}
	r.written++
}

func (r *PNGRenderer) Written() int { return r.written }
func (r *PNGRenderer) Err() error   { return r.err }

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
