package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/automoto/dizzy-ducklings/config"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelFS exposes the embedded TMX maps and their tilesets. Map ids resolve
// under config.LevelsDir.
func LevelFS() fs.FS {
	return levelFS
}

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(p string) *ebiten.Image {
	if img, ok := l.cache[p]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", p, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", p, err))
	}

	l.cache[p] = img
	return img
}

// Frame returns a cached sub-image of a horizontal strip sheet. Frames are
// square, size pixels wide.
func (l *ImageLoader) Frame(sheet string, index, size int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d", sheet, size, index)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	img := l.MustLoadImage(sheetPath(sheet))
	sx := index * size
	frame := img.SubImage(image.Rect(sx, 0, sx+size, size)).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func sheetPath(sheet string) string {
	return path.Join("images", sheet+".png")
}

var imageLoader = NewImageLoader()

func GetSheet(sheet string) *ebiten.Image {
	return imageLoader.MustLoadImage(sheetPath(sheet))
}

func GetFrame(sheet string, index, size int) *ebiten.Image {
	return imageLoader.Frame(sheet, index, size)
}

// PreloadAll decodes every sprite sheet frame and level background so the
// first frame of a level does not stall on texture uploads.
func PreloadAll(catalogMaps []string) {
	for sheet, defs := range config.CharacterAnimations {
		size := frameSize(sheet)
		for _, def := range defs {
			step := def.Step
			if step <= 0 {
				step = 1
			}
			for i := def.First; i <= def.Last; i += step {
				_ = GetFrame(sheet, i, size)
			}
		}
	}
	for _, id := range catalogMaps {
		if _, err := Background(id); err != nil {
			log.Warn("failed to preload level background", "map", id, "error", err)
		}
	}
}

func frameSize(sheet string) int {
	if sheet == "duckling" {
		return config.Duckling.FrameSize
	}
	return config.Player.FrameSize
}
