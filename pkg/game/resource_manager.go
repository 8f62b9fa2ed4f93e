package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// GraphicsRoot is the directory (inside the assets file system) that holds the
// art set. Image keys are paths relative to it without the ".png" extension,
// e.g. "soil/x" or "fruit/corn/3".
const GraphicsRoot = "assets/graphics"

// ResourceManager is responsible for centralized management of game images.
// It loads PNG files from a file system and caches them, so every image is
// decoded only once.
//
// When placeholders are enabled, a missing image is replaced by a flat colored
// rectangle sized for its category. This keeps the game playable without an
// art set. When placeholders are disabled, missing images resolve to nil and
// entities are simply not drawn.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
type ResourceManager struct {
	fsys         fs.FS
	tileSize     int
	worldW       int // 地面占位图尺寸
	worldH       int
	placeholders bool
	imageCache   map[string]*ebiten.Image // key -> image (nil is cached too)
	missing      map[string]bool
	logger       *log.Logger
}

// NewResourceManager creates a ResourceManager reading from fsys.
//
// Parameters:
//   - fsys: file system containing GraphicsRoot; may be nil.
//   - tileSize: edge length of one map tile, used to size placeholders.
//   - placeholders: whether missing images are replaced by colored rectangles.
func NewResourceManager(fsys fs.FS, tileSize int, placeholders bool) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		tileSize:     tileSize,
		placeholders: placeholders,
		imageCache:   make(map[string]*ebiten.Image),
		missing:      make(map[string]bool),
		logger:       log.WithPrefix("ResourceManager"),
	}
}

// SetWorldSize sets the size of the "world/ground" placeholder.
func (rm *ResourceManager) SetWorldSize(w, h int) {
	rm.worldW, rm.worldH = w, h
}

// LoadImage loads a PNG from the file system path and caches it.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the file cannot be decoded.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[p]; ok && img != nil {
		return img, nil
	}
	if rm.fsys == nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, fs.ErrNotExist)
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// Image returns the image for a key, falling back to a placeholder (or nil).
// Failures are logged once per key.
func (rm *ResourceManager) Image(key string) *ebiten.Image {
	p := path.Join(GraphicsRoot, key+".png")
	if img, ok := rm.imageCache[p]; ok {
		return img
	}

	img, err := rm.LoadImage(p)
	if err != nil {
		if !rm.missing[key] {
			rm.missing[key] = true
			rm.logger.Debug("image not found", "key", key, "err", err)
		}
		img = nil
		if rm.placeholders {
			w, h, c := rm.placeholderShape(key)
			img = ebiten.NewImage(w, h)
			img.Fill(c)
		}
		rm.imageCache[p] = img
	}
	return img
}

// MissingCount returns how many distinct keys could not be loaded.
func (rm *ResourceManager) MissingCount() int {
	return len(rm.missing)
}

// placeholderShape returns the size and color of a placeholder for a key.
func (rm *ResourceManager) placeholderShape(key string) (w, h int, c color.RGBA) {
	ts := rm.tileSize
	category, rest, _ := strings.Cut(key, "/")

	switch category {
	case "world":
		if rm.worldW > 0 && rm.worldH > 0 {
			return rm.worldW, rm.worldH, tileColor("ground")
		}
		return ts, ts, tileColor("ground")
	case "soil":
		return ts, ts, color.RGBA{139, 94, 60, 255}
	case "soil_water":
		return ts, ts, color.RGBA{70, 60, 110, 120}
	case "water":
		return ts, ts, color.RGBA{60, 140, 210, 255}
	case "tiles":
		return ts, ts, tileColor(rest)
	case "fruit":
		if rest == "apple" {
			return 16, 16, color.RGBA{220, 30, 30, 255}
		}
		frame := 0
		if i := strings.LastIndexByte(rest, '/'); i >= 0 {
			fmt.Sscanf(rest[i+1:], "%d", &frame)
		}
		return 40, 24 + 14*frame, color.RGBA{90, 190, 60, 255}
	case "objects":
		switch rest {
		case "tree_small":
			return 64, 96, color.RGBA{34, 110, 50, 255}
		case "tree_large":
			return 96, 128, color.RGBA{30, 95, 45, 255}
		}
		return 32, 32, color.RGBA{240, 200, 230, 255}
	case "stumps":
		if rest == "large" {
			return 96, 48, color.RGBA{110, 75, 40, 255}
		}
		return 64, 40, color.RGBA{110, 75, 40, 255}
	case "rain":
		if strings.HasPrefix(rest, "floor") {
			return 10, 6, color.RGBA{200, 220, 255, 160}
		}
		return 3, 12, color.RGBA{200, 220, 255, 200}
	case "character":
		return 48, 80, color.RGBA{240, 180, 60, 255}
	}
	return ts, ts, color.RGBA{255, 0, 255, 255}
}

func tileColor(name string) color.RGBA {
	switch name {
	case "house_floor":
		return color.RGBA{170, 130, 90, 255}
	case "house_wall":
		return color.RGBA{120, 80, 60, 255}
	case "fence":
		return color.RGBA{150, 110, 70, 255}
	case "bed":
		return color.RGBA{200, 60, 60, 255}
	case "rug":
		return color.RGBA{150, 60, 150, 255}
	case "ground":
		return color.RGBA{110, 170, 80, 255}
	}
	return color.RGBA{128, 128, 128, 255}
}
