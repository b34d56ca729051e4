package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDLarge FontName = "hud-large"
	HUDMono  FontName = "hud-mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Loaded reports whether the font has been registered.
func (f FontName) Loaded() bool {
	_, ok := fonts[f]
	return ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaultFonts registers the HUD faces from the Go font family.
func LoadDefaultFonts() {
	LoadFont(HUD, goregular.TTF)
	LoadFontWithSize(HUDLarge, goregular.TTF, 24)
	LoadFontWithSize(HUDMono, gomono.TTF, 10)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
