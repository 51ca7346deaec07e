// Package ocr supplies the ordered OCR lines consumed by field extraction.
//
// The extractor only depends on the LineProvider interface. Two providers are
// included:
//
//   - TesseractProvider: runs Tesseract (via gosseract/v2) and returns one
//     line per RIL_TEXTLINE bounding box, in engine order.
//   - StaticProvider: returns a fixed line list, used to replay OCR output
//     captured from another engine and in tests.
//
// # Prerequisites
//
// Tesseract and the language data for every configured language must be
// installed. The default languages are Bengali and English:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-ben tesseract-ocr-eng
//   - macOS: brew install tesseract tesseract-lang
//
// A non-standard data directory can be supplied as the tessdata prefix.
//
// # Line Boxes
//
// Each line's bounding box is [x_min, y_min, x_max, y_max] in the pixel space
// of the input image. Lines whose text is blank are dropped; trailing newlines
// reported by Tesseract are removed.
package ocr
