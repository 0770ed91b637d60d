package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension caps the longer side of an uploaded image.
const MaxDimension = 1200

// JPEG quality presets, picked by original byte size: the bigger the input,
// the more aggressively it is compressed.
const (
	QualityHigh   = 85
	QualityMedium = 75
	QualityLow    = 60
)

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Result is a compressed image ready to upload.
type Result struct {
	Data     []byte
	MIME     string
	Filename string
}

// Compress shrinks an image before upload: the longer side is capped at
// MaxDimension (aspect ratio preserved, never upscaled) and the bitmap is
// re-encoded as JPEG with a quality picked by QualityFor. The result keeps
// the logical file name with a .jpg extension.
func Compress(data []byte, filename string) (*Result, error) {
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: QualityFor(len(data))}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("encoding produced no output for %s", filename)
	}

	return &Result{
		Data:     buf.Bytes(),
		MIME:     "image/jpeg",
		Filename: jpegName(filename),
	}, nil
}

// QualityFor maps the original byte size to a JPEG quality preset:
// over 5MB the lowest, over 2MB the medium, otherwise the highest.
func QualityFor(size int) int {
	switch {
	case size > 5<<20:
		return QualityLow
	case size > 2<<20:
		return QualityMedium
	default:
		return QualityHigh
	}
}

// downscale resizes so neither dimension exceeds maxDim, preserving aspect
// ratio with Catmull-Rom interpolation. Images already within bounds are
// returned untouched.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func jpegName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".jpg"
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
