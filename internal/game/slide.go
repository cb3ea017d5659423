package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ild-presenter/internal/config"
	"github.com/iburimskiy/ild-presenter/internal/deck"
	"github.com/iburimskiy/ild-presenter/internal/widget"
)

const (
	maxContentWidth = 920.0
	blockGap        = 18.0
	cardPad         = 16.0
)

// slideView is a slide plus the state of its accordions. Without
// accordions the sections render with the defaults from the deck.
type slideView struct {
	slide    deck.Slide
	sections []*widget.Accordion
	backdrop *ebiten.Image
}

func (v slideView) open(i int) bool {
	if i < len(v.sections) {
		return v.sections[i].IsOpen()
	}
	return v.slide.Sections[i].Open
}

func (v slideView) reveal(i int) float64 {
	if i < len(v.sections) {
		return v.sections[i].Reveal()
	}
	if v.slide.Sections[i].Open {
		return 1
	}
	return 0
}

// slideLayout is what input handling needs to know about a rendered slide.
type slideLayout struct {
	headers []widget.Rect
}

// renderSlide lays out v over a w×h area and, when dst is not nil, draws it.
// Laying out without drawing gives the accordion header hit areas.
func (g *Game) renderSlide(dst *ebiten.Image, v slideView, w, h float64) slideLayout {
	s := v.slide
	th := themeFor(s.Background)

	if dst != nil {
		if v.backdrop != nil {
			dst.DrawImage(v.backdrop, nil)
		} else {
			fillGradient(dst, 0, 0, w, h, th.top, th.bottom)
		}
	}

	contentW := math.Min(w-2*config.SlidePadding, maxContentWidth)
	x0 := (w - contentW) / 2
	y := float64(config.SlidePadding)

	if s.Decoration != deck.DecorationNone {
		cx, cy, r := w/2, y+config.BadgeRadius, float64(config.BadgeRadius)
		if dst != nil {
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), white, true)
			vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), 3, tokenColor(string(s.Decoration)), true)
			g.fonts.label(dst, badgeLabel(s.Decoration), config.TitleSize, true, cx, cy-lineHeight(config.TitleSize)/2, tokenColor(string(s.Decoration)), text.AlignCenter)
		}
		y += 2*r + 16
	}

	y += g.fonts.paragraph(dst, s.Title, config.TitleSize, true, x0, y, contentW, th.ink, text.AlignCenter) + 6
	if s.Subtitle != "" {
		y += g.fonts.paragraph(dst, s.Subtitle, config.SubtitleSize, false, x0, y, contentW, th.muted, text.AlignCenter)
	}
	y += blockGap

	if s.Lead != "" {
		y += g.fonts.paragraph(dst, s.Lead, config.BodySize+1, false, x0, y, contentW, th.ink, text.AlignCenter) + blockGap
	}
	if len(s.Cards) > 0 {
		y += g.renderCards(dst, s.Cards, th, x0, y, contentW) + blockGap
	}
	if len(s.Steps) > 0 {
		y += g.renderSteps(dst, s.Steps, th, x0, y, contentW) + blockGap
	}
	for _, p := range s.Points {
		if dst != nil {
			vector.DrawFilledCircle(dst, float32(x0+6), float32(y+lineHeight(config.BodySize)/2), 3, accent, true)
		}
		y += g.fonts.paragraph(dst, p, config.BodySize, false, x0+20, y, contentW-20, th.ink, text.AlignStart) + 4
	}
	if len(s.Points) > 0 {
		y += blockGap
	}

	var layout slideLayout
	for i, sec := range s.Sections {
		header := widget.Rect{X: x0, Y: y, W: contentW, H: config.AccordionHeader}
		layout.headers = append(layout.headers, header)
		open := v.open(i)
		if dst != nil {
			fill := th.panel
			if open {
				fill = white
			}
			vector.DrawFilledRect(dst, float32(header.X), float32(header.Y), float32(header.W), float32(header.H), fill, false)
			vector.StrokeRect(dst, float32(header.X), float32(header.Y), float32(header.W), float32(header.H), 1, track, false)
			ty := header.Y + (header.H-lineHeight(config.BodySize))/2
			g.fonts.label(dst, sec.Title, config.BodySize, true, header.X+cardPad, ty, th.ink, text.AlignStart)
			mark := "+"
			if open {
				mark = "–"
			}
			g.fonts.label(dst, mark, config.BodySize+4, true, header.X+header.W-cardPad, ty-2, accent, text.AlignEnd)
		}
		y += header.H

		lh := lineHeight(config.BodySize)
		body := float64(len(sec.Items))*lh + 12
		shown := body * v.reveal(i)
		if dst != nil && shown > 0 {
			vector.DrawFilledRect(dst, float32(x0), float32(y), float32(contentW), float32(shown), white, false)
			for j, item := range sec.Items {
				iy := y + 6 + float64(j)*lh
				if iy+lh > y+shown {
					break
				}
				vector.DrawFilledCircle(dst, float32(x0+cardPad+3), float32(iy+lh/2), 3, accent, true)
				g.fonts.label(dst, item, config.BodySize, false, x0+cardPad+14, iy, th.muted, text.AlignStart)
			}
		}
		y += shown + 6
	}

	if s.Note != "" {
		inner := contentW - 2*cardPad
		hgt := g.fonts.paragraph(nil, s.Note, config.BodySize, true, 0, 0, inner, th.ink, text.AlignCenter) + 2*cardPad/1.5
		if dst != nil {
			vector.DrawFilledRect(dst, float32(x0), float32(y), float32(contentW), float32(hgt), th.panel, false)
			vector.StrokeRect(dst, float32(x0), float32(y), float32(contentW), float32(hgt), 1, track, false)
			g.fonts.paragraph(dst, s.Note, config.BodySize, true, x0+cardPad, y+cardPad/1.5, inner, th.ink, text.AlignCenter)
		}
	}
	return layout
}

func (g *Game) renderCards(dst *ebiten.Image, cards []deck.Card, th theme, x, y, width float64) float64 {
	n := float64(len(cards))
	cw := (width - blockGap*(n-1)) / n
	inner := cw - 2*cardPad

	height := 0.0
	for _, c := range cards {
		hgt := 2*cardPad + 36 + lineHeight(config.BodySize) +
			g.fonts.paragraph(nil, c.Text, config.BodySize-2, false, 0, 0, inner, th.muted, text.AlignCenter)
		height = math.Max(height, hgt)
	}
	if dst == nil {
		return height
	}

	for i, c := range cards {
		cx := x + float64(i)*(cw+blockGap)
		vector.DrawFilledRect(dst, float32(cx), float32(y), float32(cw), float32(height), th.panel, false)
		vector.StrokeRect(dst, float32(cx), float32(y), float32(cw), float32(height), 1, track, false)

		cy := y + cardPad
		if c.Decoration != deck.DecorationNone {
			ic := tokenColor(string(c.Decoration))
			vector.DrawFilledCircle(dst, float32(cx+cw/2), float32(cy+14), 14, ic, true)
			g.fonts.label(dst, badgeLabel(c.Decoration), config.BodySize-2, true, cx+cw/2, cy+14-lineHeight(config.BodySize-2)/2, white, text.AlignCenter)
		}
		cy += 36
		g.fonts.label(dst, c.Title, config.BodySize, true, cx+cw/2, cy, th.ink, text.AlignCenter)
		cy += lineHeight(config.BodySize)
		g.fonts.paragraph(dst, c.Text, config.BodySize-2, false, cx+cardPad, cy, inner, th.muted, text.AlignCenter)
	}
	return height
}

func (g *Game) renderSteps(dst *ebiten.Image, steps []deck.Step, th theme, x, y, width float64) float64 {
	const arrowGap = 32.0
	n := float64(len(steps))
	sw := (width - arrowGap*(n-1)) / n
	inner := sw - 2*cardPad

	height := 0.0
	for _, s := range steps {
		hgt := 2*cardPad + 2*lineHeight(config.BodySize) +
			g.fonts.paragraph(nil, s.Text, config.BodySize-3, false, 0, 0, inner, th.muted, text.AlignStart)
		height = math.Max(height, hgt)
	}
	if dst == nil {
		return height
	}

	for i, s := range steps {
		sx := x + float64(i)*(sw+arrowGap)
		hue := 220 + float64(i)*30
		r, gg, b := hsvToRgb(hue, 0.6, 0.95)
		bar := color.NRGBA{R: r, G: gg, B: b, A: 255}

		vector.DrawFilledRect(dst, float32(sx), float32(y), float32(sw), float32(height), white, false)
		vector.DrawFilledRect(dst, float32(sx), float32(y), float32(sw), 4, bar, false)

		ty := y + cardPad
		g.fonts.label(dst, s.Label, config.BodySize, true, sx+cardPad, ty, bar, text.AlignStart)
		ty += lineHeight(config.BodySize)
		g.fonts.label(dst, s.Title, config.BodySize, true, sx+cardPad, ty, th.ink, text.AlignStart)
		ty += lineHeight(config.BodySize)
		g.fonts.paragraph(dst, s.Text, config.BodySize-3, false, sx+cardPad, ty, inner, greyInk, text.AlignStart)

		if i < len(steps)-1 {
			ax := sx + sw + 6
			ay := y + height/2
			vector.StrokeLine(dst, float32(ax), float32(ay), float32(ax+arrowGap-12), float32(ay), 2, track, true)
			vector.StrokeLine(dst, float32(ax+arrowGap-18), float32(ay-6), float32(ax+arrowGap-12), float32(ay), 2, track, true)
			vector.StrokeLine(dst, float32(ax+arrowGap-18), float32(ay+6), float32(ax+arrowGap-12), float32(ay), 2, track, true)
		}
	}
	return height
}
