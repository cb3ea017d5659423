package game

import (
	"image/color"
	"unicode"
	"unicode/utf8"

	"github.com/iburimskiy/ild-presenter/internal/deck"
)

type theme struct {
	top, bottom color.NRGBA
	ink         color.NRGBA
	muted       color.NRGBA
	panel       color.NRGBA
}

var (
	accent     = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
	accentDark = color.NRGBA{R: 29, G: 78, B: 216, A: 255}
	stage      = color.NRGBA{R: 243, G: 244, B: 246, A: 255}
	track      = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	white      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	darkInk    = color.NRGBA{R: 31, G: 41, B: 55, A: 255}
	greyInk    = color.NRGBA{R: 75, G: 85, B: 99, A: 255}
	softPanel  = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	buttonGrey = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
)

var themes = map[deck.Background]theme{
	deck.BackgroundSky: {
		top: color.NRGBA{R: 239, G: 246, B: 255, A: 255}, bottom: color.NRGBA{R: 224, G: 231, B: 255, A: 255},
		ink: darkInk, muted: greyInk, panel: softPanel,
	},
	deck.BackgroundWhite: {
		top: white, bottom: white,
		ink: darkInk, muted: greyInk, panel: color.NRGBA{R: 249, G: 250, B: 251, A: 255},
	},
	deck.BackgroundMint: {
		top: color.NRGBA{R: 240, G: 253, B: 244, A: 255}, bottom: color.NRGBA{R: 209, G: 250, B: 229, A: 255},
		ink: darkInk, muted: greyInk, panel: softPanel,
	},
	deck.BackgroundMist: {
		top: color.NRGBA{R: 249, G: 250, B: 251, A: 255}, bottom: color.NRGBA{R: 243, G: 244, B: 246, A: 255},
		ink: darkInk, muted: greyInk, panel: white,
	},
	deck.BackgroundDawn: {
		top: white, bottom: color.NRGBA{R: 239, G: 246, B: 255, A: 255},
		ink: darkInk, muted: greyInk, panel: white,
	},
	deck.BackgroundNight: {
		top: color.NRGBA{R: 15, G: 23, B: 42, A: 255}, bottom: color.NRGBA{R: 30, G: 58, B: 138, A: 255},
		ink: white, muted: color.NRGBA{R: 203, G: 213, B: 225, A: 255}, panel: color.NRGBA{R: 30, G: 41, B: 59, A: 200},
	},
}

func themeFor(b deck.Background) theme {
	if t, ok := themes[b]; ok {
		return t
	}
	return themes[deck.BackgroundWhite]
}

// badgeLabel is the glyph drawn inside a decoration badge.
func badgeLabel(d deck.Decoration) string {
	switch d {
	case deck.DecorationNone:
		return ""
	case deck.DecorationHeart:
		return "♥"
	case deck.DecorationAlert:
		return "!"
	case deck.DecorationSearch:
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(string(d))
	return string(unicode.ToUpper(r))
}
