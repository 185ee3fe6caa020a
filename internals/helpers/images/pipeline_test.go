package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"
)

func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageAboveThresholdReturnsDataURL(t *testing.T) {
	data := noisyPNG(t, 1200, 600)
	opts := &Options{MaxSizeMB: 0.05}

	url, err := UploadImage(data, "image/png", opts)
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/") {
		t.Fatalf("unexpected prefix: %.40s", url)
	}
}

func TestUploadImageSmallFilePassesThrough(t *testing.T) {
	data := noisyPNG(t, 8, 8)

	url, err := UploadImage(data, "", nil)
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %.40s", url)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	_, err := UploadImage([]byte("hello, not a picture"), "text/plain", nil)
	if err != ErrNotImage {
		t.Fatalf("got %v, want ErrNotImage", err)
	}
}

func TestCompressShrinksLandscape(t *testing.T) {
	data := noisyPNG(t, 1600, 400)

	out, ct, err := Compress(data, "image/png", &Options{MaxSizeMB: 0.05})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if ct != "image/webp" && ct != "image/jpeg" {
		t.Fatalf("content type = %q", ct)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if w := img.Bounds().Dx(); w != 800 {
		t.Errorf("width = %d, want 800", w)
	}
}

func TestFitPortraitUsesHeight(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 1000))
	got := fit(src, 800, 800)
	if h := got.Bounds().Dy(); h != 800 {
		t.Errorf("height = %d, want 800", h)
	}

	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if fit(small, 800, 800) != image.Image(small) {
		t.Error("small image should not be resized")
	}
}

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		ct       string
		size     int64
		valid    bool
	}{
		{"jpeg", "photo.jpg", "image/jpeg", 1 << 20, true},
		{"tiff no type", "scan.TIFF", "", 1 << 20, true},
		{"webp", "a.webp", "image/webp", 10, true},
		{"disallowed extension", "doc.pdf", "application/pdf", 10, false},
		{"svg", "logo.svg", "image/svg+xml", 10, false},
		{"extension ok but type wrong", "a.png", "text/html", 10, false},
		{"too large", "big.png", "image/png", 21 << 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateImageFile(tt.filename, tt.ct, tt.size)
			if got.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (%s)", got.Valid, tt.valid, got.Error)
			}
			if !got.Valid && got.Error == "" {
				t.Error("invalid result must carry a message")
			}
		})
	}
}
