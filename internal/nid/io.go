package nid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// MarshalResult encodes r as indented UTF-8 JSON with all six keys present.
// Non-ASCII text is written as-is rather than \u-escaped.
func MarshalResult(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeResult(&buf, r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeResult writes r as indented JSON followed by a newline.
func EncodeResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// WriteJSON persists r to path.
func WriteJSON(path string, r Result) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// JoinText concatenates the raw line texts, one per line.
func JoinText(lines []Line) string {
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}
	return strings.Join(texts, "\n")
}

// WriteText persists JoinText(lines) to path.
func WriteText(path string, lines []Line) error {
	return os.WriteFile(path, []byte(JoinText(lines)), 0644)
}

// ReadLines loads a JSON array of {"text", "bbox"} records, the format used
// to replay OCR output captured from any engine.
func ReadLines(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return lines, nil
}
