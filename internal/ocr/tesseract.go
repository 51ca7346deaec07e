package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/nid-ocr/internal/nid"
)

// TesseractProvider implements LineProvider with the gosseract client.
type TesseractProvider struct {
	languages      []string
	tessdataPrefix string
	clientFactory  func() *gosseract.Client
}

// NewTesseractProvider constructs a provider for the given Tesseract
// languages (e.g. "ben", "eng"). An empty tessdataPrefix keeps Tesseract's
// default data directory.
func NewTesseractProvider(languages []string, tessdataPrefix string) *TesseractProvider {
	return &TesseractProvider{
		languages:      append([]string(nil), languages...),
		tessdataPrefix: tessdataPrefix,
		clientFactory:  gosseract.NewClient,
	}
}

func (p *TesseractProvider) Name() string { return "tesseract" }

// Lines performs OCR on the image file and returns its text lines.
//
// A fresh client is created per call and closed before returning, so the
// provider holds no native state between images.
func (p *TesseractProvider) Lines(ctx context.Context, imagePath string) ([]nid.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := p.clientFactory()
	defer client.Close()

	if p.tessdataPrefix != "" {
		if err := client.SetTessdataPrefix(p.tessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	if len(p.languages) > 0 {
		if err := client.SetLanguage(p.languages...); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("failed to get text lines: %w", err)
	}

	return linesFromBoxes(boxes), nil
}

// linesFromBoxes converts Tesseract line boxes, keeping engine order.
func linesFromBoxes(boxes []gosseract.BoundingBox) []nid.Line {
	lines := make([]nid.Line, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimRight(box.Word, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, nid.Line{
			Text: text,
			BBox: nid.BBox{box.Box.Min.X, box.Box.Min.Y, box.Box.Max.X, box.Box.Max.Y},
		})
	}
	return lines
}
