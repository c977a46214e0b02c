package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ompatel2019/iphone-wallpaper/layout"
)

// FontSet holds the parsed embedded typefaces. Faces are cheap to derive
// per size; the parse happens once at startup.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
	italic  *opentype.Font
}

// LoadFonts parses the embedded Go fonts (regular, bold, italic).
func LoadFonts() (*FontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}
	return &FontSet{regular: regular, bold: bold, italic: italic}, nil
}

// Face builds a font.Face for the given style at size px.
func (fs *FontSet) Face(style layout.FontStyle, size float64) (font.Face, error) {
	src := fs.regular
	switch style {
	case layout.StyleBold:
		src = fs.bold
	case layout.StyleItalic:
		src = fs.italic
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
