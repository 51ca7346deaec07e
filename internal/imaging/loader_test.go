package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// createInMemoryImage returns a width x height image filled with c.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage returns an image with red, green, blue and white
// quadrants (top-left, top-right, bottom-left, bottom-right).
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else {
				c = color.RGBA{255, 255, 255, 255} // White
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// createTestImage writes a solid PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
	if cache.Len() != 0 {
		t.Errorf("new cache should be empty, got %d", cache.Len())
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_FileReplaced(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 40, 30, color.RGBA{255, 0, 0, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatalf("failed to rewrite image: %v", err)
	}
	if err := png.Encode(f, createInMemoryImage(60, 50, color.RGBA{0, 0, 255, 255})); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(imgPath, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load after replace failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 50 {
		t.Errorf("got %dx%d, want the replaced 60x50 image", b.Dx(), b.Dy())
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_FileRemoved(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 10, 10, color.White)

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := os.Remove(imgPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := cache.Load(imgPath); err == nil {
		t.Error("Load should fail once the file is gone")
	}
	if cache.Len() != 0 {
		t.Error("removed file should be evicted")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	cache := NewImageCache()

	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail for invalid image data")
	}
	if cache.Len() != 0 {
		t.Error("failed loads must not be cached")
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 255, 0, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(imgPath)
	if cache.Len() != 0 {
		t.Error("Evict did not remove image from cache")
	}

	// Should not panic
	cache.Evict("/nonexistent/path")

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 300, 200, color.RGBA{100, 100, 100, 255})

	dims, err := GetDimensions(cache, imgPath)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 300 || dims.Height != 200 {
		t.Errorf("got %dx%d, want 300x200", dims.Width, dims.Height)
	}
}

func TestSave(t *testing.T) {
	img := createInMemoryImage(20, 10, color.RGBA{10, 20, 30, 255})
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"png", filepath.Join(dir, "out.png"), false},
		{"jpeg", filepath.Join(dir, "out.jpg"), false},
		{"nested dir", filepath.Join(dir, "crops", "id_no.png"), false},
		{"unknown extension", filepath.Join(dir, "out.xyz"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(img, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Save(%s) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			loaded, err := NewImageCache().Load(tt.path)
			if err != nil {
				t.Fatalf("reload failed: %v", err)
			}
			if loaded.Bounds().Dx() != 20 || loaded.Bounds().Dy() != 10 {
				t.Errorf("reloaded size %v", loaded.Bounds())
			}
		})
	}
}

func TestCanSave(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".png", true},
		{".PNG", true},
		{".jpg", true},
		{".jpeg", true},
		{".gif", true},
		{".bmp", true},
		{".tif", true},
		{".webp", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := CanSave(tt.ext); got != tt.want {
			t.Errorf("CanSave(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}
