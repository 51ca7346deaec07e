package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ironsheep/nid-ocr/internal/config"
	"github.com/ironsheep/nid-ocr/internal/errors"
	"github.com/ironsheep/nid-ocr/internal/imaging"
	"github.com/ironsheep/nid-ocr/internal/logging"
	"github.com/ironsheep/nid-ocr/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "nid-boxes - draw extracted NID fields onto the card image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: nid-boxes [image] [json] [--no-crops] [--show]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Writes <stem>_boxes<ext> next to the image and, unless --no-crops is")
	fmt.Fprintln(w, "given, one image per field under <stem>_crops/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --no-crops       Do not save per-field crops")
	fmt.Fprintln(w, "  --show           Open the annotated image in the desktop viewer")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  NID_IMAGE_PATH       Image used when none is given (default nid_front.png)")
	fmt.Fprintln(w, "  NID_FIELDS_JSON      Fields JSON used when none is given (default nid_fields.json)")
	fmt.Fprintln(w, "  NID_FONT_PATHS       Label fonts to try, in order")
	fmt.Fprintln(w, "  NID_FONT_SIZE        Label font size (default 14)")
	fmt.Fprintln(w, "  NID_CROPS=false      Disable crops by default")
	fmt.Fprintln(w, "  NID_LOG_LEVEL=debug  Enable debug logging")
}

type options struct {
	imagePath string
	jsonPath  string
	crops     bool
	show      bool
}

func parseArgs(args []string, cfg *config.Config) (options, error) {
	opts := options{imagePath: cfg.ImagePath, jsonPath: cfg.FieldsJSON, crops: cfg.Crops}
	var positional []string
	for _, arg := range args {
		switch {
		case arg == "--no-crops":
			opts.crops = false
		case arg == "--show":
			opts.show = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option: %s", arg)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) > 2 {
		return opts, fmt.Errorf("unexpected argument: %s", positional[2])
	}
	if len(positional) >= 1 {
		opts.imagePath = positional[0]
	}
	if len(positional) == 2 {
		opts.jsonPath = positional[1]
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "nid-boxes %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printHelp(stdout)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logging.SetLevel(cfg.LogLevel)
	logger := logging.NewLoggerTo(stderr, "nid-boxes")

	opts, err := parseArgs(args, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	face, fontName := imaging.LoadFace(cfg.FontPaths, cfg.FontSize)
	logger.Debug("Using label font", "font", fontName, "size", cfg.FontSize)

	renderOpts := render.Options{ImagePath: opts.imagePath, JSONPath: opts.jsonPath}
	if opts.crops {
		renderOpts.CropsDir = render.CropsDir(opts.imagePath)
	}

	report, err := render.New(nil, face, logger).Render(renderOpts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", errors.Message(err))
		return 1
	}

	for _, d := range report.Drawn {
		if d.Crop != "" {
			fmt.Fprintf(stdout, "Cropped: %s\n", d.Crop)
		}
	}
	fmt.Fprintf(stdout, "Saved: %s\n", report.Output)

	if opts.show {
		if err := render.Preview(report.Output); err != nil {
			logger.Debug("Preview unavailable", "error", err)
		}
	}
	return 0
}
