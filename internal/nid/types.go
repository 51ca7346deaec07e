package nid

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BBox is an axis-aligned box [x_min, y_min, x_max, y_max] in pixels.
type BBox [4]int

// Valid reports whether the box has positive width and height.
func (b BBox) Valid() bool {
	return b[0] < b[2] && b[1] < b[3]
}

// Line is one OCR-recognized text line.
type Line struct {
	Text string `json:"text"`
	BBox BBox   `json:"bbox"`
}

// FieldRecord is an extracted value and the box it was read from.
type FieldRecord struct {
	BBox BBox   `json:"bbox"`
	Text string `json:"text"`
}

// FieldName identifies one of the six extracted fields.
type FieldName string

const (
	EnglishName FieldName = "english_name"
	BanglaName  FieldName = "bangla_name"
	FatherName  FieldName = "father_name"
	MotherName  FieldName = "mother_name"
	DateOfBirth FieldName = "date_of_birth"
	IDNo        FieldName = "id_no"
)

// FieldNames lists the fields in their canonical order.
var FieldNames = []FieldName{EnglishName, BanglaName, FatherName, MotherName, DateOfBirth, IDNo}

// Result holds one slot per field. A nil slot means the field was not found.
type Result struct {
	EnglishName *FieldRecord `json:"english_name"`
	BanglaName  *FieldRecord `json:"bangla_name"`
	FatherName  *FieldRecord `json:"father_name"`
	MotherName  *FieldRecord `json:"mother_name"`
	DateOfBirth *FieldRecord `json:"date_of_birth"`
	IDNo        *FieldRecord `json:"id_no"`
}

// Field pairs a field name with its record.
type Field struct {
	Name   FieldName
	Record *FieldRecord
}

// Get returns the record for name, or nil for an unknown or unset field.
func (r *Result) Get(name FieldName) *FieldRecord {
	if p := r.slot(name); p != nil {
		return *p
	}
	return nil
}

// Fields returns all six fields in canonical order, including unset ones.
func (r *Result) Fields() []Field {
	out := make([]Field, 0, len(FieldNames))
	for _, name := range FieldNames {
		out = append(out, Field{Name: name, Record: r.Get(name)})
	}
	return out
}

// Found returns the number of fields that are set.
func (r *Result) Found() int {
	n := 0
	for _, f := range r.Fields() {
		if f.Record != nil {
			n++
		}
	}
	return n
}

func (r *Result) set(name FieldName, rec *FieldRecord) {
	if p := r.slot(name); p != nil {
		*p = rec
	}
}

func (r *Result) slot(name FieldName) **FieldRecord {
	switch name {
	case EnglishName:
		return &r.EnglishName
	case BanglaName:
		return &r.BanglaName
	case FatherName:
		return &r.FatherName
	case MotherName:
		return &r.MotherName
	case DateOfBirth:
		return &r.DateOfBirth
	case IDNo:
		return &r.IDNo
	}
	return nil
}

var fieldLabels = map[FieldName]string{
	EnglishName: "English Name",
	BanglaName:  "Bangla Name",
	FatherName:  "Father Name",
	MotherName:  "Mother Name",
	DateOfBirth: "Date Of Birth",
	IDNo:        "Id No",
}

// Label returns the display label for a field name: underscores become
// spaces and each word is title-cased. Names outside the known six are
// converted the same way, with a new word starting after any non-letter, so
// "field2name" becomes "Field2Name".
func Label(name string) string {
	if l, ok := fieldLabels[FieldName(name)]; ok {
		return l
	}
	return titleWords(strings.ReplaceAll(name, "_", " "))
}

// titleWords title-cases every maximal run of letters in s.
func titleWords(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
