// Package imaging provides the raster operations used to visualise NID
// extraction results: loading, box clamping, cropping, box and label drawing,
// and the per-field color palette.
//
// All operations work with standard Go image.Image values and use a
// coordinate system where (0,0) is the top-left corner, X increases rightward
// and Y increases downward.
//
// # Coordinate System
//
// Boxes are [x_min, y_min, x_max, y_max]. The minimum corner is inclusive and
// the maximum corner is exclusive, so a box covers x_max-x_min columns.
// ClampBox turns any box into one that lies within the image and covers at
// least one pixel in each direction.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Drawing functions mutate the
// *image.RGBA they are given; callers draw on a Canvas copy so the source
// image stays untouched and can still be cropped.
//
// # Fonts
//
// Labels are rendered with the first readable TrueType font from a list of
// candidate paths. When none can be parsed the built-in 7x13 bitmap face is
// used, so drawing never fails for lack of fonts.
package imaging
