package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestCompressCapsLongerSide(t *testing.T) {
	data := testJPEG(t, 2400, 1600)
	res, err := Compress(data, "big.jpg")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	w, h := decodeDims(t, res.Data)
	if w != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, w)
	}
	// Aspect ratio 3:2 preserved within rounding.
	if h < 799 || h > 801 {
		t.Errorf("expected height ~800, got %d", h)
	}
}

func TestCompressPortraitOrientation(t *testing.T) {
	data := testJPEG(t, 900, 1800)
	res, err := Compress(data, "tall.jpg")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	w, h := decodeDims(t, res.Data)
	if h != MaxDimension {
		t.Errorf("expected height %d, got %d", MaxDimension, h)
	}
	if w < 599 || w > 601 {
		t.Errorf("expected width ~600, got %d", w)
	}
}

func TestCompressKeepsSmallDimensions(t *testing.T) {
	data := testJPEG(t, 640, 480)
	res, err := Compress(data, "small.jpg")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	w, h := decodeDims(t, res.Data)
	if w != 640 || h != 480 {
		t.Errorf("expected 640x480 unchanged, got %dx%d", w, h)
	}
}

func TestCompressPNGInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	res, err := Compress(buf.Bytes(), "photo.png")
	if err != nil {
		t.Fatalf("Compress PNG: %v", err)
	}
	if res.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg output, got %s", res.MIME)
	}
	if res.Filename != "photo.jpg" {
		t.Errorf("expected renamed photo.jpg, got %s", res.Filename)
	}
}

func TestCompressRejectsGarbage(t *testing.T) {
	if _, err := Compress([]byte("this is not an image"), "x.jpg"); err == nil {
		t.Error("expected error for non-image input")
	}
}

func TestQualityBands(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{100 << 10, QualityHigh},
		{2 << 20, QualityHigh},
		{2<<20 + 1, QualityMedium},
		{5 << 20, QualityMedium},
		{5<<20 + 1, QualityLow},
		{12 << 20, QualityLow},
	}
	for _, tt := range tests {
		if got := QualityFor(tt.size); got != tt.want {
			t.Errorf("QualityFor(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
