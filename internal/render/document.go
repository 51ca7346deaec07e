package render

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"

	"github.com/ironsheep/nid-ocr/internal/errors"
	"github.com/ironsheep/nid-ocr/internal/nid"
)

// Entry is one drawable field from a fields document.
type Entry struct {
	Name string
	BBox nid.BBox
}

// Skipped records a document entry that could not be drawn.
type Skipped struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Document is the parsed, ordered content of a fields document.
type Document struct {
	Entries []Entry
	Skipped []Skipped
}

// entryShape only declares bbox; any other members, including text, are
// ignored by the renderer.
type entryShape struct {
	BBox *[]*float64 `json:"bbox"`
}

// LoadDocument reads and parses the fields document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDecodeError("JSON", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, errors.NewDecodeError("JSON", path, err)
	}
	return doc, nil
}

// ParseDocument parses a JSON object of field entries. Known fields come
// first in their canonical order, followed by any other keys sorted by name.
// Only a document that is not a JSON object is an error.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, name := range orderedKeys(raw) {
		b, reason := parseEntry(raw[name])
		if reason != "" {
			doc.Skipped = append(doc.Skipped, Skipped{Field: name, Reason: reason})
			continue
		}
		doc.Entries = append(doc.Entries, Entry{Name: name, BBox: b})
	}
	return doc, nil
}

func parseEntry(msg json.RawMessage) (nid.BBox, string) {
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nid.BBox{}, "null"
	}

	var e entryShape
	if err := json.Unmarshal(msg, &e); err != nil {
		return nid.BBox{}, "malformed entry"
	}
	if e.BBox == nil {
		return nid.BBox{}, "no bbox"
	}
	coords := *e.BBox
	if len(coords) != 4 {
		return nid.BBox{}, "bbox must have 4 numbers"
	}

	var b nid.BBox
	for i, v := range coords {
		if v == nil {
			return nid.BBox{}, "bbox must have 4 numbers"
		}
		b[i] = int(*v)
	}
	return b, ""
}

func orderedKeys(raw map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(raw))
	known := make(map[string]bool, len(nid.FieldNames))
	for _, name := range nid.FieldNames {
		known[string(name)] = true
		if _, ok := raw[string(name)]; ok {
			keys = append(keys, string(name))
		}
	}

	var extra []string
	for k := range raw {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}
