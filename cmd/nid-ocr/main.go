package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ironsheep/nid-ocr/internal/config"
	"github.com/ironsheep/nid-ocr/internal/errors"
	"github.com/ironsheep/nid-ocr/internal/logging"
	"github.com/ironsheep/nid-ocr/internal/nid"
	"github.com/ironsheep/nid-ocr/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "nid-ocr - extract fields from the front of a Bangladesh national ID card")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: nid-ocr [image] [--lines file.json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --lines FILE     Use OCR lines from a JSON array of {text, bbox} instead of Tesseract")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  NID_IMAGE_PATH       Image used when none is given (default nid_front.png)")
	fmt.Fprintln(w, "  NID_FIELDS_JSON      Fields output (default nid_fields.json)")
	fmt.Fprintln(w, "  NID_OCR_TEXT         Raw OCR text output (default ocr_result.txt)")
	fmt.Fprintln(w, "  NID_OCR_LANGUAGES    Tesseract languages (default ben,eng)")
	fmt.Fprintln(w, "  NID_TESSDATA_PREFIX  Tesseract data directory")
	fmt.Fprintln(w, "  NID_LOG_LEVEL=debug  Enable debug logging")
}

type options struct {
	imagePath string
	linesPath string
}

func parseArgs(args []string, defaultImage string) (options, error) {
	opts := options{imagePath: defaultImage}
	positional := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--lines":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--lines requires a file")
			}
			i++
			opts.linesPath = args[i]
		case strings.HasPrefix(arg, "--lines="):
			opts.linesPath = strings.TrimPrefix(arg, "--lines=")
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option: %s", arg)
		default:
			if positional > 0 {
				return opts, fmt.Errorf("unexpected argument: %s", arg)
			}
			positional++
			opts.imagePath = arg
		}
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "nid-ocr %s\n", Version)
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
	logger := logging.NewLoggerTo(stderr, "nid-ocr")

	opts, err := parseArgs(args, cfg.ImagePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	provider, err := newProvider(opts.linesPath, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", errors.Message(err))
		return 1
	}

	if err := extract(ctx, provider, opts.imagePath, cfg, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", errors.Message(err))
		return 1
	}
	return 0
}

func newProvider(linesPath string, cfg *config.Config) (ocr.LineProvider, error) {
	if linesPath == "" {
		return ocr.NewTesseractProvider(cfg.OCRLanguages, cfg.TessdataPrefix), nil
	}
	if _, err := os.Stat(linesPath); err != nil {
		return nil, errors.NewInputNotFoundError("Lines file", linesPath)
	}
	lines, err := nid.ReadLines(linesPath)
	if err != nil {
		return nil, errors.NewDecodeError("lines", linesPath, err)
	}
	return ocr.NewStaticProvider(lines), nil
}

// extract runs OCR and field extraction on one image, writes the text and
// JSON outputs, and prints the JSON to stdout.
func extract(ctx context.Context, provider ocr.LineProvider, imagePath string, cfg *config.Config, stdout io.Writer, logger *logging.Logger) error {
	if _, err := os.Stat(imagePath); err != nil {
		return errors.NewInputNotFoundError("Image", imagePath)
	}

	logger.Debug("Running OCR", "engine", provider.Name(), "image", imagePath)
	lines, err := provider.Lines(ctx, imagePath)
	if err != nil {
		return errors.NewOCRFailedError(provider.Name(), imagePath, err)
	}

	if err := nid.WriteText(cfg.OCRText, lines); err != nil {
		return errors.NewWriteError(cfg.OCRText, err)
	}
	logger.Info("Result saved", "path", cfg.OCRText, "lines", len(lines))

	result := nid.Extract(lines)
	if err := nid.WriteJSON(cfg.FieldsJSON, result); err != nil {
		return errors.NewWriteError(cfg.FieldsJSON, err)
	}
	logger.Info("NID fields saved", "path", cfg.FieldsJSON, "found", result.Found())

	return nid.EncodeResult(stdout, result)
}
