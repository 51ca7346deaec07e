package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/nid-ocr/internal/nid"
)

// CropResult contains the cropped image data
type CropResult struct {
	BBox        nid.BBox `json:"bbox"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// CropBox clamps b to img and returns the covered region as a new image.
// The source image is not modified.
func CropBox(img image.Image, b nid.BBox) (*image.NRGBA, nid.BBox) {
	bounds := img.Bounds()
	c := ClampBox(b, bounds.Dx(), bounds.Dy())
	rect := image.Rect(c[0], c[1], c[2], c[3]).Add(bounds.Min)
	return imaging.Crop(img, rect), c
}

// EncodeCrop crops b out of img, optionally rescales it, and returns the
// region as a base64 PNG. A scale of 0 or 1 keeps the original size.
func EncodeCrop(img image.Image, b nid.BBox, scale float64) (*CropResult, error) {
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %v: must be positive", scale)
	}

	cropped, clamped := CropBox(img, b)

	if scale != 1.0 && scale > 0 {
		newWidth := max(1, int(float64(cropped.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(cropped.Bounds().Dy())*scale))
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		BBox:        clamped,
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
