package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/nid-ocr/internal/nid"
)

const (
	// StrokeWidth is the outline thickness of a field box in pixels.
	StrokeWidth = 3
	// LabelHeight is the height of the label strip drawn above a box.
	LabelHeight = 22
	// labelTopMin keeps the strip off the very top edge of the image.
	labelTopMin = 2
	labelPadX   = 4
	labelPadY   = 2
)

// NewCanvas returns an RGBA copy of img for drawing. img itself is never
// modified, so crops taken from it stay clean.
func NewCanvas(img image.Image) *image.RGBA {
	return clone.AsRGBA(img)
}

// DrawBox outlines b on dst. The stroke lies inside the box, which is treated
// as [x_min, x_max) x [y_min, y_max); boxes thinner than twice the stroke are
// filled.
func DrawBox(dst *image.RGBA, b nid.BBox, c color.Color) {
	r := image.Rect(b[0], b[1], b[2], b[3])
	src := image.NewUniform(c)

	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, min(r.Min.Y+StrokeWidth, r.Max.Y)),
		image.Rect(r.Min.X, max(r.Max.Y-StrokeWidth, r.Min.Y), r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, min(r.Min.X+StrokeWidth, r.Max.X), r.Max.Y),
		image.Rect(max(r.Max.X-StrokeWidth, r.Min.X), r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}

// LabelStrip returns the strip above b that carries its label: from
// max(2, y_min-22) to y_min across the box width. A box with no room above it
// (y_min <= 2) gets the strip just inside its top edge instead, at most 22
// pixels tall and never below y_max.
func LabelStrip(b nid.BBox) image.Rectangle {
	if b[1] <= labelTopMin {
		return image.Rect(b[0], b[1], b[2], min(b[1]+LabelHeight, b[3]))
	}
	top := max(labelTopMin, b[1]-LabelHeight)
	return image.Rect(b[0], top, b[2], b[1])
}

// DrawLabel fills the label strip of b with c and writes text on it in black.
// The text's top-left corner sits at (x_min+4, strip_top+2).
func DrawLabel(dst *image.RGBA, b nid.BBox, text string, c color.Color, face font.Face) {
	strip := LabelStrip(b)
	draw.Draw(dst, strip.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b[0] + labelPadX),
			Y: fixed.I(strip.Min.Y+labelPadY) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}

// Annotate draws the outline and label for one field.
func Annotate(dst *image.RGBA, name string, b nid.BBox, face font.Face) {
	c := ColorFor(name)
	DrawBox(dst, b, c)
	DrawLabel(dst, b, nid.Label(name), c, face)
}
