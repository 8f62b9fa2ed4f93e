package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TestImageLoadsAndCaches 测试从文件系统加载并缓存贴图
func TestImageLoadsAndCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/graphics/soil/x.png": {Data: encodeTestPNG(t, 64, 64)},
	}
	rm := NewResourceManager(fsys, 64, false)

	img := rm.Image("soil/x")
	if img == nil {
		t.Fatal("expected soil/x to load")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 64 || h != 64 {
		t.Errorf("image size: got %dx%d, want 64x64", w, h)
	}
	if again := rm.Image("soil/x"); again != img {
		t.Error("second lookup should return the cached image")
	}
}

// TestImageMissingWithoutPlaceholders 测试关闭占位图时缺失的贴图为 nil
func TestImageMissingWithoutPlaceholders(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, 64, false)
	if img := rm.Image("soil/o"); img != nil {
		t.Error("missing image should be nil without placeholders")
	}
	rm.Image("soil/o")
	if rm.MissingCount() != 1 {
		t.Errorf("MissingCount: got %d, want 1", rm.MissingCount())
	}
}

// TestImagePlaceholders 测试占位图尺寸
func TestImagePlaceholders(t *testing.T) {
	rm := NewResourceManager(nil, 64, true)
	cases := []struct {
		key  string
		w, h int
	}{
		{"soil/tb", 64, 64},
		{"fruit/apple", 16, 16},
		{"fruit/corn/3", 40, 66},
		{"objects/tree_large", 96, 128},
		{"stumps/small", 64, 40},
	}
	for _, c := range cases {
		img := rm.Image(c.key)
		if img == nil {
			t.Errorf("%s: placeholder missing", c.key)
			continue
		}
		if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != c.w || h != c.h {
			t.Errorf("%s: got %dx%d, want %dx%d", c.key, w, h, c.w, c.h)
		}
	}
}

// TestLoadImageDecodeError 测试损坏的 PNG
func TestLoadImageDecodeError(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not a png")}}
	rm := NewResourceManager(fsys, 64, false)
	if _, err := rm.LoadImage("bad.png"); err == nil {
		t.Error("expected decode error")
	}
}
