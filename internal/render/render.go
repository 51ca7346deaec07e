package render

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ironsheep/nid-ocr/internal/errors"
	"github.com/ironsheep/nid-ocr/internal/imaging"
	"github.com/ironsheep/nid-ocr/internal/logging"
	"github.com/ironsheep/nid-ocr/internal/nid"
)

// fallbackExt is used for outputs when the input's extension has no encoder.
const fallbackExt = ".png"

// Options selects the inputs and outputs of one render.
type Options struct {
	ImagePath string
	JSONPath  string

	// OutputPath defaults to OutputPath(ImagePath).
	OutputPath string

	// CropsDir enables per-field crops when non-empty.
	CropsDir string
}

// DrawnField is a field that was drawn, with its clamped box.
type DrawnField struct {
	Field string   `json:"field"`
	BBox  nid.BBox `json:"bbox"`
	Crop  string   `json:"crop,omitempty"`
}

// Report describes what a render produced.
type Report struct {
	Output  string       `json:"output"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Drawn   []DrawnField `json:"drawn"`
	Skipped []Skipped    `json:"skipped"`
}

// Renderer draws fields documents onto images.
type Renderer struct {
	cache  *imaging.ImageCache
	face   font.Face
	logger *logging.Logger
}

// New creates a Renderer. A nil cache, face or logger is replaced with a
// fresh cache, the built-in bitmap face and a "render" logger respectively.
func New(cache *imaging.ImageCache, face font.Face, logger *logging.Logger) *Renderer {
	if cache == nil {
		cache = imaging.NewImageCache()
	}
	if face == nil {
		face = basicfont.Face7x13
	}
	if logger == nil {
		logger = logging.NewLogger("render")
	}
	return &Renderer{cache: cache, face: face, logger: logger}
}

// OutputPath returns <dir>/<stem>_boxes<ext> for imagePath.
func OutputPath(imagePath string) string {
	dir, stem, ext := splitPath(imagePath)
	return filepath.Join(dir, stem+"_boxes"+ext)
}

// CropsDir returns <dir>/<stem>_crops for imagePath.
func CropsDir(imagePath string) string {
	dir, stem, _ := splitPath(imagePath)
	return filepath.Join(dir, stem+"_crops")
}

func splitPath(p string) (dir, stem, ext string) {
	dir = filepath.Dir(p)
	base := filepath.Base(p)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	if !imaging.CanSave(ext) {
		ext = fallbackExt
	}
	return dir, stem, ext
}

// CheckInputs returns an INPUT_NOT_FOUND error for the first of imagePath
// and jsonPath that does not exist.
func CheckInputs(imagePath, jsonPath string) error {
	if _, err := os.Stat(imagePath); err != nil {
		return errors.NewInputNotFoundError("Image", imagePath)
	}
	if _, err := os.Stat(jsonPath); err != nil {
		return errors.NewInputNotFoundError("JSON", jsonPath)
	}
	return nil
}

// Render draws every usable entry of opts.JSONPath onto opts.ImagePath.
//
// Inputs are checked before anything is written. Crops are cut from the
// original image; boxes are drawn on a copy that is saved once at the end.
func (r *Renderer) Render(opts Options) (*Report, error) {
	if err := CheckInputs(opts.ImagePath, opts.JSONPath); err != nil {
		return nil, err
	}

	doc, err := LoadDocument(opts.JSONPath)
	if err != nil {
		return nil, err
	}

	img, err := r.cache.Load(opts.ImagePath)
	if err != nil {
		return nil, errors.NewDecodeError("image", opts.ImagePath, err)
	}

	output := opts.OutputPath
	if output == "" {
		output = OutputPath(opts.ImagePath)
	}
	_, _, ext := splitPath(opts.ImagePath)

	bounds := img.Bounds()
	report := &Report{
		Output:  output,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Drawn:   []DrawnField{},
		Skipped: []Skipped{},
	}
	for _, s := range doc.Skipped {
		r.logger.Debug("Skipping field", "field", s.Field, "reason", s.Reason)
		report.Skipped = append(report.Skipped, s)
	}

	if opts.CropsDir != "" {
		if err := os.MkdirAll(opts.CropsDir, 0755); err != nil {
			return nil, errors.NewWriteError(opts.CropsDir, err)
		}
	}

	canvas := imaging.NewCanvas(img)
	for _, e := range doc.Entries {
		drawn, err := r.renderEntry(img, canvas, e, opts.CropsDir, ext)
		if err != nil {
			return nil, err
		}
		report.Drawn = append(report.Drawn, drawn)
	}

	if err := imaging.Save(canvas, output); err != nil {
		return nil, errors.NewWriteError(output, err)
	}
	r.logger.Info("Saved annotated image", "path", output, "fields", len(report.Drawn))

	return report, nil
}

func (r *Renderer) renderEntry(src image.Image, canvas *image.RGBA, e Entry, cropsDir, ext string) (DrawnField, error) {
	bounds := src.Bounds()
	clamped := imaging.ClampBox(e.BBox, bounds.Dx(), bounds.Dy())
	drawn := DrawnField{Field: e.Name, BBox: clamped}

	if cropsDir != "" {
		cropped, _ := imaging.CropBox(src, clamped)
		path := filepath.Join(cropsDir, cropFileName(e.Name)+ext)
		if err := imaging.Save(cropped, path); err != nil {
			return drawn, errors.NewWriteError(path, err)
		}
		r.logger.Info("Cropped field", "field", e.Name, "path", path)
		drawn.Crop = path
	}

	imaging.Annotate(canvas, e.Name, clamped, r.face)
	return drawn, nil
}

// cropFileName keeps a field name from escaping the crops directory.
func cropFileName(field string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, field)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return name
}
