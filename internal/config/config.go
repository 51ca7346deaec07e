// Package config loads command configuration from environment variables.
//
// An optional .env file in the working directory is read first; variables
// already set in the environment take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFontPaths is the ordered font fallback list used when NID_FONT_PATHS
// is unset. The built-in bitmap face is used when none of them load.
var DefaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// Config holds command configuration
type Config struct {
	LogLevel string

	// Default input and output locations
	ImagePath  string
	FieldsJSON string
	OCRText    string

	// Tesseract configuration
	OCRLanguages   []string
	TessdataPrefix string

	// Label rendering
	FontPaths []string
	FontSize  float64

	// Crop each field when rendering
	Crops bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	// A missing .env is normal; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnvOrDefault("NID_LOG_LEVEL", "info"),
		ImagePath:      getEnvOrDefault("NID_IMAGE_PATH", "nid_front.png"),
		FieldsJSON:     getEnvOrDefault("NID_FIELDS_JSON", "nid_fields.json"),
		OCRText:        getEnvOrDefault("NID_OCR_TEXT", "ocr_result.txt"),
		OCRLanguages:   getEnvAsListOrDefault("NID_OCR_LANGUAGES", ",", []string{"ben", "eng"}),
		TessdataPrefix: getEnvOrDefault("NID_TESSDATA_PREFIX", ""),
		FontPaths:      getEnvAsListOrDefault("NID_FONT_PATHS", string(os.PathListSeparator), DefaultFontPaths),
		FontSize:       getEnvAsFloatOrDefault("NID_FONT_SIZE", 14),
		Crops:          getEnvAsBoolOrDefault("NID_CROPS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if len(c.OCRLanguages) == 0 {
		return fmt.Errorf("NID_OCR_LANGUAGES must name at least one language")
	}

	if c.FontSize <= 0 || c.FontSize > 200 {
		return fmt.Errorf("NID_FONT_SIZE must be between 0 and 200, got %g", c.FontSize)
	}

	if c.FieldsJSON == "" {
		return fmt.Errorf("NID_FIELDS_JSON must not be empty")
	}

	return nil
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsListOrDefault splits a variable on sep, dropping blank entries.
func getEnvAsListOrDefault(key, sep string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return append([]string(nil), defaultValue...)
	}

	var out []string
	for _, part := range strings.Split(valueStr, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
