package nid

import (
	"regexp"
	"strings"
)

// Label patterns as printed on the card.
var (
	namePrefix = regexp.MustCompile(`(?i)^Name:\s*`)
	dobLabel   = regexp.MustCompile(`(?i)Date\s+of\s+Birth:\s*`)
	idNoLabel  = regexp.MustCompile(`(?i)ID\s+NO:\s*`)
)

const (
	banglaNameLabel = "নাম:"
	fatherLabel     = "পিতা:"
	motherLabel     = "মাতা:"
)

// rule inspects lines[i] and its neighbors and returns a record for its field,
// or nil when the line does not carry that field.
type rule struct {
	field FieldName
	match func(lines []Line, i int) *FieldRecord
}

var rules = []rule{
	{EnglishName, matchEnglishName},
	{DateOfBirth, matchDateOfBirth},
	{IDNo, matchIDNo},
	{FatherName, matchFatherName},
	{MotherName, matchMotherName},
	{BanglaName, matchBanglaName},
}

// Extract maps an ordered OCR line sequence to a Result. It never fails:
// fields that no line matches stay nil, and a later match for the same field
// replaces an earlier one.
func Extract(lines []Line) Result {
	var r Result
	for i := range lines {
		for _, rl := range rules {
			if rec := rl.match(lines, i); rec != nil {
				r.set(rl.field, rec)
			}
		}
	}
	return r
}

// textAt returns the trimmed text of lines[i], or "" when i is out of range.
func textAt(lines []Line, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i].Text)
}

func stripLabel(re *regexp.Regexp, text string) string {
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}

// afterLabel returns the trimmed text following the first occurrence of label.
func afterLabel(text, label string) string {
	_, after, _ := strings.Cut(text, label)
	return strings.TrimSpace(after)
}

func matchEnglishName(lines []Line, i int) *FieldRecord {
	text := textAt(lines, i)
	if !namePrefix.MatchString(text) {
		return nil
	}
	return &FieldRecord{BBox: lines[i].BBox, Text: stripLabel(namePrefix, text)}
}

func matchDateOfBirth(lines []Line, i int) *FieldRecord {
	text := textAt(lines, i)
	if !dobLabel.MatchString(text) {
		return nil
	}
	return &FieldRecord{BBox: lines[i].BBox, Text: stripLabel(dobLabel, text)}
}

func matchIDNo(lines []Line, i int) *FieldRecord {
	text := textAt(lines, i)
	if !idNoLabel.MatchString(text) {
		return nil
	}
	return &FieldRecord{BBox: lines[i].BBox, Text: stripLabel(idNoLabel, text)}
}

// matchFatherName reads the value from the label line, or from the next line
// when the label stands alone. The box is always the label line's.
func matchFatherName(lines []Line, i int) *FieldRecord {
	text := textAt(lines, i)
	if !strings.Contains(text, fatherLabel) {
		return nil
	}
	value := afterLabel(text, fatherLabel)
	if value == "" {
		value = textAt(lines, i+1)
	}
	return &FieldRecord{BBox: lines[i].BBox, Text: value}
}

// matchMotherName prefers the same line, then the previous line (the card
// prints the mother's name above its label), then the next line.
func matchMotherName(lines []Line, i int) *FieldRecord {
	text := textAt(lines, i)
	if !strings.Contains(text, motherLabel) {
		return nil
	}
	if value := afterLabel(text, motherLabel); value != "" {
		return &FieldRecord{BBox: lines[i].BBox, Text: value}
	}
	if prev := textAt(lines, i-1); prev != "" {
		return &FieldRecord{BBox: lines[i-1].BBox, Text: prev}
	}
	return &FieldRecord{BBox: lines[i].BBox, Text: textAt(lines, i+1)}
}

// matchBanglaName looks for the Bengali name above the label first, then
// directly below it.
func matchBanglaName(lines []Line, i int) *FieldRecord {
	if !strings.Contains(textAt(lines, i), banglaNameLabel) {
		return nil
	}
	if j := previousBengaliLine(lines, i); j >= 0 {
		prev := textAt(lines, j)
		if !strings.Contains(prev, ":") && !namePrefix.MatchString(prev) {
			return &FieldRecord{BBox: lines[j].BBox, Text: prev}
		}
	}
	next := textAt(lines, i+1)
	if next != "" && HasBengali(next) && !namePrefix.MatchString(next) {
		return &FieldRecord{BBox: lines[i+1].BBox, Text: next}
	}
	return nil
}

// previousBengaliLine returns the index of the nearest line before i that is
// non-empty, contains Bengali and is not a header, or -1.
func previousBengaliLine(lines []Line, i int) int {
	for j := i - 1; j >= 0; j-- {
		prev := textAt(lines, j)
		if prev != "" && HasBengali(prev) && !IsHeaderLine(prev) {
			return j
		}
	}
	return -1
}
