package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// An entry is reused only while the file's size and modification time match
// what was seen when it was decoded; a file replaced in place is decoded
// again on the next Load. Entries are otherwise kept until Evict() or
// Clear(). The MCP server keeps one cache for its lifetime; the batch
// commands load each image once.
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("nid_front.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

type cachedImage struct {
	img     image.Image
	modTime time.Time
	size    int64
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// PNG, JPEG, GIF, BMP and TIFF are supported. JPEG EXIF orientation is
// applied on decode so boxes produced from the upright image line up.
// The image is cached using the exact path string provided.
func (c *ImageCache) Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.Evict(path)
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.img, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		c.Evict(path)
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = cachedImage{img: img, modTime: info.ModTime(), size: info.Size()}
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image, loading it into the cache
// if not already present.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// CanSave reports whether Save can encode files with extension ext.
func CanSave(ext string) bool {
	_, err := imaging.FormatFromExtension(ext)
	return err == nil
}

// Save writes img to path, creating the parent directory if needed. The
// encoding is chosen from the file extension.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
