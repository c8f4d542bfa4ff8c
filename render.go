package glade

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the external drawing collaborator: a scoped draw context with a
// transform stack, primitive draw ops, and text metrics. The core calls it by
// side effect only and holds no renderer state between frames.
type Renderer interface {
	// Push saves the current transform; Pop restores the last saved one.
	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(radians float64)
	Scale(s float64)

	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, width float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	Text(s string, x, y, size float64, c Color, align TextAlign)

	TextWidth(s string, size float64) float64
	LineHeight(size float64) float64
	SurfaceSize() (w, h float64)
}

// Draw renders the active scene to the given screen through the default
// ebiten renderer. Call from the host's draw callback.
func (r *Runtime) Draw(screen *ebiten.Image) {
	r.RenderTo(NewEbitenRenderer(screen))
}

// RenderTo runs the frame's render pass against any Renderer: background
// clear, transition effect, member entities in insertion order under the
// camera transform, the fade overlay, then UI planes (global pool first,
// scene-owned second). Skipped entirely while the active scene is paused or
// no scene resolved.
func (r *Runtime) RenderTo(rd Renderer) {
	sc := r.active
	if sc == nil || sc.Paused {
		return
	}

	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	rd.Clear(sc.Background)

	var slideX, slideY, fadeAlpha float64
	if t := sc.transition; t != nil {
		switch t.Type {
		case TransitionFade:
			fadeAlpha = 1 - float64(t.value)
		case TransitionSlide:
			k := 1 - float64(t.value)
			slideX, slideY = t.SlideFrom.X*k, t.SlideFrom.Y*k
		}
	}

	rd.Push()
	if slideX != 0 || slideY != 0 {
		rd.Translate(slideX, slideY)
	}
	if cam := r.camera; cam != nil {
		rd.Translate(cam.Viewport.X+cam.Viewport.Width/2, cam.Viewport.Y+cam.Viewport.Height/2)
		rd.Scale(cam.Zoom)
		rd.Translate(-cam.X, -cam.Y)
	}
	for _, e := range sc.entities {
		e.render(rd)
	}
	rd.Pop()

	if fadeAlpha > 0 {
		w, h := rd.SurfaceSize()
		rd.FillRect(0, 0, w, h, Color{A: fadeAlpha})
	}

	for _, p := range r.planes {
		if p.BoundTo(sc.id) {
			p.render(rd, r.camera)
		}
	}
	for _, p := range sc.planes {
		p.render(rd, r.camera)
	}

	if r.debug {
		r.debugLogRender(sc, time.Since(t0))
	}
}

// --- Ebiten backend ---

// Debug-font metrics of ebitenutil.DebugPrint.
const (
	debugGlyphWidth = 6.0
	debugLineHeight = 16.0
)

// whitePixel is the 1x1 source image for solid fills, created lazily so the
// package can be imported (and tested) without a graphics context.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// EbitenRenderer implements Renderer on top of an *ebiten.Image using the
// vector and ebitenutil helpers. Text is debug-quality: the size parameter is
// ignored and the fixed debug font is used.
type EbitenRenderer struct {
	target *ebiten.Image
	cur    affine
	stack  []affine
}

// NewEbitenRenderer wraps a target image with an identity transform.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{target: target, cur: identityAffine}
}

func (r *EbitenRenderer) Push() {
	r.stack = append(r.stack, r.cur)
}

func (r *EbitenRenderer) Pop() {
	if len(r.stack) == 0 {
		warnf("renderer Pop with empty transform stack")
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *EbitenRenderer) Translate(dx, dy float64) {
	r.cur = r.cur.mul(translation(dx, dy))
}

func (r *EbitenRenderer) Rotate(radians float64) {
	r.cur = r.cur.mul(rotation(radians))
}

func (r *EbitenRenderer) Scale(s float64) {
	r.cur = r.cur.mul(scaling(s))
}

func (r *EbitenRenderer) Clear(c Color) {
	r.target.Fill(c.toRGBA())
}

func (r *EbitenRenderer) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	x0, y0 := r.cur.apply(x, y)
	x1, y1 := r.cur.apply(x+w, y)
	x2, y2 := r.cur.apply(x+w, y+h)
	x3, y3 := r.cur.apply(x, y+h)

	cr := float32(c.R)
	cg := float32(c.G)
	cb := float32(c.B)
	ca := float32(c.A)
	verts := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x3), DstY: float32(y3), SrcX: 0, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	r.target.DrawTriangles(verts, indices, whiteImage(), nil)
}

func (r *EbitenRenderer) StrokeRect(x, y, w, h, width float64, c Color) {
	r.Line(x, y, x+w, y, width, c)
	r.Line(x+w, y, x+w, y+h, width, c)
	r.Line(x+w, y+h, x, y+h, width, c)
	r.Line(x, y+h, x, y, width, c)
}

func (r *EbitenRenderer) Line(x1, y1, x2, y2, width float64, c Color) {
	sx1, sy1 := r.cur.apply(x1, y1)
	sx2, sy2 := r.cur.apply(x2, y2)
	// Scale stroke width by the transform's x-axis length.
	sw := width * math.Hypot(r.cur[0], r.cur[1])
	vector.StrokeLine(r.target, float32(sx1), float32(sy1), float32(sx2), float32(sy2),
		float32(sw), c.toRGBA(), true)
}

func (r *EbitenRenderer) Text(s string, x, y, size float64, c Color, align TextAlign) {
	switch align {
	case TextAlignCenter:
		x -= r.TextWidth(s, size) / 2
	case TextAlignRight:
		x -= r.TextWidth(s, size)
	}
	sx, sy := r.cur.apply(x, y)
	ebitenutil.DebugPrintAt(r.target, s, int(sx), int(sy))
}

func (r *EbitenRenderer) TextWidth(s string, size float64) float64 {
	return debugGlyphWidth * float64(len(s))
}

func (r *EbitenRenderer) LineHeight(size float64) float64 {
	return debugLineHeight
}

func (r *EbitenRenderer) SurfaceSize() (float64, float64) {
	b := r.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
