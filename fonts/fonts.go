package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Button FontName = "button"
	Title  FontName = "title"
	Small  FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the font for ebiten's text/v2 and ebitenui widgets.
func (f FontName) Face() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	faces[f] = face
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadDefaults registers every face the game uses, built from the Go fonts.
func LoadDefaults(hudSize, buttonSize, titleSize float64) {
	LoadFontWithSize(HUD, goregular.TTF, hudSize)
	LoadFontWithSize(Button, goregular.TTF, buttonSize)
	LoadFontWithSize(Title, gobold.TTF, titleSize)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
