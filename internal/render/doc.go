// Package render draws extracted NID fields onto their source image.
//
// Render reads a fields document (the JSON written by nid-ocr, or any object
// mapping field names to {"bbox": [...], "text": ...}), draws a colored,
// labeled outline for every usable entry on a copy of the image, and writes
// the annotated copy next to the input as <stem>_boxes<ext>. When a crops
// directory is given, each field region is also cut from the unannotated
// image and saved there as <field><ext>.
//
// Entries that are null, are not objects, or whose bbox is not four numbers
// are skipped and listed in the Report; they never fail a render. Missing
// inputs, undecodable files and write failures are returned as
// *errors.ProcessingError values.
package render
