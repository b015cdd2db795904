package snapshot

import (
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
)

// FontCache resolves draw2d font data to parsed fonts, falling back to the
// default face for names it does not hold.
type FontCache map[string]*truetype.Font

const defaultFont = "goregular"

func (f FontCache) Load(fd draw2d.FontData) (*truetype.Font, error) {
	font, ok := f[fd.Name]
	if !ok {
		return f[defaultFont], nil
	}
	return font, nil
}

func (f FontCache) Store(fd draw2d.FontData, tf *truetype.Font) {
	f[fd.Name] = tf
}
