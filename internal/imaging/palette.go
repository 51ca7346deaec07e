package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/nid-ocr/internal/nid"
)

// DefaultColor is used for any field name outside the known six.
var DefaultColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}

var fieldHex = map[nid.FieldName]string{
	nid.EnglishName: "#FF6464",
	nid.BanglaName:  "#64C8FF",
	nid.FatherName:  "#64FF96",
	nid.MotherName:  "#FFC864",
	nid.DateOfBirth: "#C864FF",
	nid.IDNo:        "#64FFFF",
}

var palette = mustParsePalette(fieldHex)

func mustParsePalette(hex map[nid.FieldName]string) map[string]color.RGBA {
	p := make(map[string]color.RGBA, len(hex))
	for name, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("imaging: bad palette color %s for %s: %v", h, name, err))
		}
		r, g, b := c.RGB255()
		p[string(name)] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}

// ColorFor returns the box color for a field name.
func ColorFor(name string) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return DefaultColor
}
