package imaging

import "github.com/ironsheep/nid-ocr/internal/nid"

// ClampBox fits b inside a width x height image.
//
// The minimum corner is pulled into [0, width-1] x [0, height-1]; the maximum
// corner is capped at the image edge and pushed to at least one pixel past the
// minimum, so the result always satisfies
// 0 <= x_min < x_max <= width and 0 <= y_min < y_max <= height.
// Clamping an already clamped box returns it unchanged.
func ClampBox(b nid.BBox, width, height int) nid.BBox {
	xMin := clampInt(b[0], 0, width-1)
	yMin := clampInt(b[1], 0, height-1)
	xMax := max(xMin+1, min(b[2], width))
	yMax := max(yMin+1, min(b[3], height))
	return nid.BBox{xMin, yMin, xMax, yMax}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
