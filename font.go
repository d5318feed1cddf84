package evergreen

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps an Ebitengine text/v2 face source. Faces are derived per size on
// demand, so one Font serves every text style.
type Font struct {
	source *text.GoTextFaceSource
}

// LoadFont parses TrueType/OpenType data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("evergreen: failed to parse TTF data: %w", err)
	}
	return &Font{source: source}, nil
}

// DefaultFont loads the Go Regular font bundled with golang.org/x/image.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// Face returns a face of the given pixel size.
func (f *Font) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}
