// Package images resizes and re-encodes uploaded pictures.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// dataURLGuard is the encoded length above which one lower-quality retry happens.
const dataURLGuard = 5 * 1024 * 1024

var ErrNotImage = errors.New("file must be an image")

type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64 // 0..1
	MaxSizeMB float64 // files above this are resized and re-encoded
}

func DefaultOptions() Options {
	return Options{MaxWidth: 800, MaxHeight: 800, Quality: 0.7, MaxSizeMB: 5}
}

func resolve(opts *Options) Options {
	o := DefaultOptions()
	if opts == nil {
		return o
	}
	if opts.MaxWidth > 0 {
		o.MaxWidth = opts.MaxWidth
	}
	if opts.MaxHeight > 0 {
		o.MaxHeight = opts.MaxHeight
	}
	if opts.Quality > 0 && opts.Quality <= 1 {
		o.Quality = opts.Quality
	}
	if opts.MaxSizeMB > 0 {
		o.MaxSizeMB = opts.MaxSizeMB
	}
	return o
}

// DetectContentType trusts a declared image type, otherwise sniffs the bytes.
func DetectContentType(data []byte, declared string) string {
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return mimetype.Detect(data).String()
}

func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (o Options) oversized(n int) bool {
	return float64(n)/(1024*1024) > o.MaxSizeMB
}

// UploadImage returns a data URL for the image, shrinking it first when it
// is above MaxSizeMB. The shrink path is best effort and never fails on size.
func UploadImage(data []byte, contentType string, opts *Options) (string, error) {
	o := resolve(opts)

	if o.oversized(len(data)) {
		img, err := decode(data)
		if err != nil {
			return "", err
		}
		small := fit(img, o.MaxWidth, o.MaxHeight)
		out, ct, err := encode(small, o.Quality)
		if err != nil {
			return "", err
		}
		url := DataURL(ct, out)
		if len(url) > dataURLGuard {
			if out2, ct2, err := encode(small, o.Quality*0.6); err == nil {
				url = DataURL(ct2, out2)
			}
		}
		return url, nil
	}

	ct := DetectContentType(data, contentType)
	if !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}
	return DataURL(ct, data), nil
}

// Compress is the object-storage variant: it returns bytes + MIME instead of a data URL.
// Small files pass through untouched.
func Compress(data []byte, contentType string, opts *Options) ([]byte, string, error) {
	o := resolve(opts)

	ct := DetectContentType(data, contentType)
	if !strings.HasPrefix(ct, "image/") {
		return nil, "", ErrNotImage
	}
	if !o.oversized(len(data)) {
		return data, ct, nil
	}

	img, err := decode(data)
	if err != nil {
		return nil, "", err
	}
	small := fit(img, o.MaxWidth, o.MaxHeight)
	out, outCT, err := encode(small, o.Quality)
	if err != nil {
		return nil, "", err
	}
	if base64.StdEncoding.EncodedLen(len(out)) > dataURLGuard {
		if out2, ct2, err := encode(small, o.Quality*0.6); err == nil {
			out, outCT = out2, ct2
		}
	}
	return out, outCT, nil
}

/* =======================================================================
   Decode / resize / encode
======================================================================= */

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// fit keeps the aspect ratio: landscape images are bounded by maxW,
// portrait and square ones by maxH.
func fit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > h {
		if w > maxW {
			return imaging.Resize(src, maxW, 0, imaging.Lanczos)
		}
		return src
	}
	if h > maxH {
		return imaging.Resize(src, 0, maxH, imaging.Lanczos)
	}
	return src
}

// encode prefers WebP and falls back to JPEG.
func encode(img image.Image, quality float64) ([]byte, string, error) {
	q := float32(quality * 100)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err == nil {
		return buf.Bytes(), "image/webp", nil
	}

	buf.Reset()
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: int(q)}); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
