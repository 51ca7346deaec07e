package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ironsheep/nid-ocr/internal/config"
	"github.com/ironsheep/nid-ocr/internal/imaging"
	"github.com/ironsheep/nid-ocr/internal/logging"
	"github.com/ironsheep/nid-ocr/internal/ocr"
	"github.com/ironsheep/nid-ocr/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("nid-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("nid-mcp - MCP server for NID field extraction")
			fmt.Println()
			fmt.Println("Usage: nid-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  NID_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  NID_OCR_LANGUAGES      Tesseract languages (default ben,eng)")
			fmt.Println("  NID_TESSDATA_PREFIX    Tesseract data directory")
			fmt.Println("  NID_FONT_PATHS         Label fonts to try, in order")
			fmt.Println("  NID_CROPS=false        Disable crops by default in nid_draw_boxes")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Stdout is for MCP protocol; all logging goes to stderr.
	logger := logging.NewLogger("nid-mcp")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetLevel(cfg.LogLevel)
	logger.Debug("NID MCP Server starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	face, fontName := imaging.LoadFace(cfg.FontPaths, cfg.FontSize)
	logger.Debug("Using label font", "font", fontName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := server.New(server.Options{
		Provider: ocr.NewTesseractProvider(cfg.OCRLanguages, cfg.TessdataPrefix),
		Face:     face,
		Crops:    cfg.Crops,
		Logger:   logger,
	})
	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Server error", "error", err)
		stop()
		os.Exit(1)
	}
}
