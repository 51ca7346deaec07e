package imaging

import (
	"testing"

	"github.com/ironsheep/nid-ocr/internal/nid"
)

func TestClampBox(t *testing.T) {
	tests := []struct {
		name string
		in   nid.BBox
		w, h int
		want nid.BBox
	}{
		{"inside", nid.BBox{10, 20, 30, 40}, 100, 100, nid.BBox{10, 20, 30, 40}},
		{"overflowing right", nid.BBox{-5, 10, 10000, 20}, 500, 300, nid.BBox{0, 10, 500, 20}},
		{"negative everything", nid.BBox{-10, -10, -5, -5}, 50, 50, nid.BBox{0, 0, 1, 1}},
		{"past bottom-right", nid.BBox{600, 400, 700, 500}, 500, 300, nid.BBox{499, 299, 500, 300}},
		{"inverted", nid.BBox{40, 40, 10, 10}, 100, 100, nid.BBox{40, 40, 41, 41}},
		{"zero area", nid.BBox{5, 5, 5, 5}, 100, 100, nid.BBox{5, 5, 6, 6}},
		{"full image", nid.BBox{0, 0, 100, 50}, 100, 50, nid.BBox{0, 0, 100, 50}},
		{"single pixel image", nid.BBox{-1, -1, 9, 9}, 1, 1, nid.BBox{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampBox(tt.in, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("ClampBox(%v, %d, %d) = %v, want %v", tt.in, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestClampBox_Invariants(t *testing.T) {
	const w, h = 64, 48
	values := []int{-1000, -1, 0, 1, 31, 47, 48, 63, 64, 65, 1000}

	for _, x0 := range values {
		for _, y0 := range values {
			for _, x1 := range values {
				for _, y1 := range values {
					in := nid.BBox{x0, y0, x1, y1}
					got := ClampBox(in, w, h)

					if got[0] < 0 || got[0] >= got[2] || got[2] > w {
						t.Fatalf("ClampBox(%v) = %v violates 0 <= x_min < x_max <= %d", in, got, w)
					}
					if got[1] < 0 || got[1] >= got[3] || got[3] > h {
						t.Fatalf("ClampBox(%v) = %v violates 0 <= y_min < y_max <= %d", in, got, h)
					}
					if again := ClampBox(got, w, h); again != got {
						t.Fatalf("ClampBox not idempotent: %v -> %v -> %v", in, got, again)
					}
				}
			}
		}
	}
}
