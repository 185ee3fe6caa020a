package images

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSizeMB is the hard upload ceiling.
const MaxFileSizeMB = 20

// AllowedTypes is the MIME allow-list for uploads.
var AllowedTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

var extToType = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

const (
	errUnsupportedFormat = "ফাইল ফরম্যাট সমর্থিত নয়। অনুমোদিত ফরম্যাট: JPG, PNG, GIF, WebP, BMP, TIFF"
	errTooLargeFormat    = "ফাইল আকার %dMB এর চেয়ে বেশি হতে পারে না"
)

type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func isAllowedType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
	for _, t := range AllowedTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// ValidateImageFile checks the declared type, the extension and the size.
// An empty contentType is inferred from the extension.
func ValidateImageFile(filename, contentType string, size int64) ValidationResult {
	ext := strings.ToLower(filepath.Ext(filename))
	extType, extOK := extToType[ext]
	if !extOK {
		return ValidationResult{Error: errUnsupportedFormat}
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = extType
	}
	if !isAllowedType(contentType) {
		return ValidationResult{Error: errUnsupportedFormat}
	}

	if float64(size)/(1024*1024) > MaxFileSizeMB {
		return ValidationResult{Error: fmt.Sprintf(errTooLargeFormat, MaxFileSizeMB)}
	}
	return ValidationResult{Valid: true}
}
