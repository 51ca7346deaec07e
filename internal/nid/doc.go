// Package nid extracts identity fields from the OCR lines of a national ID
// card and serializes the result.
//
// # Input
//
// Extraction consumes an ordered []Line, one per OCR-recognized text line,
// each carrying the line text and its pixel bounding box. Lines are expected in
// reading order (top to bottom) but this is not checked.
//
// # Fields
//
// Six fields are recognized, each stored in its own slot of Result:
//
//   - english_name: line starting with "Name:"
//   - bangla_name: Bengali line next to the "নাম:" label
//   - father_name: value of the "পিতা:" label, same line or the next one
//   - mother_name: value of the "মাতা:" label, same line, previous or next
//   - date_of_birth: value of "Date of Birth:"
//   - id_no: value of "ID NO:"
//
// A field that is never matched stays nil and is written as JSON null. When a
// label occurs more than once the last occurrence wins.
//
// # Serialization
//
// WriteJSON emits exactly the six keys with {"bbox": [...], "text": "..."}
// values or null. WriteText writes the raw line texts joined by newlines.
package nid
