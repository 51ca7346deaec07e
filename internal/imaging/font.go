package imaging

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BuiltinFontName identifies the bitmap face LoadFace falls back to.
const BuiltinFontName = "basicfont.Face7x13"

// LoadFace returns a face for the first font in paths that can be read and
// parsed at the given size. When none can, the built-in 7x13 face is returned.
// The second value names the source that was used.
func LoadFace(paths []string, size float64) (font.Face, string) {
	for _, path := range paths {
		face, err := openFace(path, size)
		if err != nil {
			continue
		}
		return face, path
	}
	return basicfont.Face7x13, BuiltinFontName
}

func openFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", path, err)
	}
	return face, nil
}
