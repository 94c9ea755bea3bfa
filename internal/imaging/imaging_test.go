package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{40, 60, 200, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}
	return cfg.Width, cfg.Height
}

func TestThumbnail_KeepsSmallImages(t *testing.T) {
	out, err := Thumbnail(createTestJPEG(100, 80), 480)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 100 || h != 80 {
		t.Errorf("expected 100x80, got %dx%d", w, h)
	}
}

func TestThumbnail_DownscalesLandscape(t *testing.T) {
	out, err := Thumbnail(createTestPNG(843, 600), 480)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 480 {
		t.Errorf("expected width 480, got %d", w)
	}
	if h != 600*480/843 {
		t.Errorf("unexpected height %d", h)
	}
}

func TestThumbnail_DownscalesPortrait(t *testing.T) {
	out, err := Thumbnail(createTestJPEG(300, 900), 300)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	w, h := decodeSize(t, out)
	if h != 300 || w != 100 {
		t.Errorf("expected 100x300, got %dx%d", w, h)
	}
}

func TestThumbnail_DefaultDimension(t *testing.T) {
	out, err := Thumbnail(createTestPNG(1000, 1000), 0)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != ThumbnailDimension || h != ThumbnailDimension {
		t.Errorf("expected %dx%d, got %dx%d", ThumbnailDimension, ThumbnailDimension, w, h)
	}
}

func TestThumbnail_RejectsOtherFormats(t *testing.T) {
	if _, err := Thumbnail([]byte("GIF89a not really"), 100); err == nil {
		t.Error("expected error for GIF input")
	}
	if _, err := Thumbnail([]byte("<html></html>"), 100); err == nil {
		t.Error("expected error for HTML input")
	}
}
