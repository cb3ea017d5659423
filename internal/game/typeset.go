package game

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/ild-presenter/internal/config"
)

type faceKey struct {
	size float64
	bold bool
}

// typesetter owns the fonts and remembers how strings were wrapped, since
// every slide is laid out again on every tick.
type typesetter struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
	wraps   *lru.Cache[string, []string]
}

func newTypesetter() (*typesetter, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	wraps, err := lru.New[string, []string](config.WrapCacheSize)
	if err != nil {
		return nil, fmt.Errorf("new wrap cache: %w", err)
	}
	return &typesetter{
		regular: regular,
		bold:    bold,
		faces:   map[faceKey]*text.GoTextFace{},
		wraps:   wraps,
	}, nil
}

func (t *typesetter) face(size float64, bold bool) *text.GoTextFace {
	k := faceKey{size: size, bold: bold}
	if f, ok := t.faces[k]; ok {
		return f
	}
	src := t.regular
	if bold {
		src = t.bold
	}
	f := &text.GoTextFace{Source: src, Size: size}
	t.faces[k] = f
	return f
}

func lineHeight(size float64) float64 { return size * config.LineSpacing }

func (t *typesetter) width(s string, size float64, bold bool) float64 {
	return text.Advance(s, t.face(size, bold))
}

// wrap breaks s into lines no wider than width, give or take the spread
// between narrow and wide glyphs.
func (t *typesetter) wrap(s string, size float64, bold bool, width float64) []string {
	key := fmt.Sprintf("%g|%t|%d|%s", size, bold, int(width), s)
	if lines, ok := t.wraps.Get(key); ok {
		return lines
	}
	avg := t.width("the quick brown fox jumps over a lazy dog", size, bold) / 41
	limit := 8
	if avg > 0 && int(width/avg) > limit {
		limit = int(width / avg)
	}
	lines := strings.Split(wordwrap.WrapString(s, uint(limit)), "\n")
	t.wraps.Add(key, lines)
	return lines
}

// paragraph draws s wrapped to width at (x, y) and returns its height.
// A nil dst only measures.
func (t *typesetter) paragraph(dst *ebiten.Image, s string, size float64, bold bool, x, y, width float64, clr color.Color, align text.Align) float64 {
	lines := t.wrap(s, size, bold, width)
	lh := lineHeight(size)
	if dst != nil {
		face := t.face(size, bold)
		for i, line := range lines {
			op := &text.DrawOptions{}
			switch align {
			case text.AlignCenter:
				op.GeoM.Translate(x+width/2, y+float64(i)*lh)
			case text.AlignEnd:
				op.GeoM.Translate(x+width, y+float64(i)*lh)
			default:
				op.GeoM.Translate(x, y+float64(i)*lh)
			}
			op.PrimaryAlign = align
			op.ColorScale.ScaleWithColor(clr)
			text.Draw(dst, line, face, op)
		}
	}
	return float64(len(lines)) * lh
}

// label draws a single line and returns its advance.
func (t *typesetter) label(dst *ebiten.Image, s string, size float64, bold bool, x, y float64, clr color.Color, align text.Align) float64 {
	face := t.face(size, bold)
	if dst != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.PrimaryAlign = align
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, s, face, op)
	}
	return text.Advance(s, face)
}
