// Package renderer turns orchestrator frames into something visible: CSS
// declarations for a web view, a text log of frames, or raster previews.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/orchestrator"
)

// TransformCSS formats t as a CSS transform value. Offsets are percentages
// of the layer size.
func TransformCSS(t motion.Transform) string {
	return fmt.Sprintf("translate3d(%.2f%%, %.2f%%, 0) scale(%.4f) rotate(%.2fdeg)",
		t.X, t.Y, t.Scale, t.Rotation)
}

// Style returns the inline style declarations for one layer.
func Style(l orchestrator.Layer) string {
	return fmt.Sprintf("transform: %s; opacity: %.4f;", TransformCSS(l.Transform), l.Opacity)
}

// StyleRenderer writes one line of CSS per frame. Write errors are
// sticky: after the first failure nothing more is written and Err
// returns it.
type StyleRenderer struct {
	w   io.Writer
	err error
}

func NewStyleRenderer(w io.Writer) *StyleRenderer {
	return &StyleRenderer{w: w}
}

func (r *StyleRenderer) Render(f orchestrator.Frame) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, FormatFrame(f)+"\n")
}

func (r *StyleRenderer) Err() error { return r.err }

// FormatFrame renders a frame as a single line. Pass-through frames only
// mention the settled route.
func FormatFrame(f orchestrator.Frame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%06d ", f.Seq)
	if f.Settled {
		fmt.Fprintf(&sb, "%s {%s}", f.Route, Style(f.To))
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s %s {%s} -> %s {%s}",
		f.Variant, f.From.Route, Style(f.From), f.To.Route, Style(f.To))
	return sb.String()
}

// Recorder keeps every frame it is given.
type Recorder struct {
	frames []orchestrator.Frame
}

func (r *Recorder) Render(f orchestrator.Frame) {
	r.frames = append(r.frames, f)
}

func (r *Recorder) Frames() []orchestrator.Frame { return r.frames }
func (r *Recorder) Len() int                     { return len(r.frames) }
func (r *Recorder) Reset()                       { r.frames = r.frames[:0] }

// Multi fans a frame out to several renderers in order.
type Multi []orchestrator.Renderer

func (m Multi) Render(f orchestrator.Frame) {
	for _, r := range m {
		r.Render(f)
	}
}
