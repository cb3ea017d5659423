package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ild-presenter/internal/config"
	"github.com/iburimskiy/ild-presenter/internal/widget"
)

// slideShift is how far a slide travels while entering or leaving.
const slideShift = 100.0

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(stage)
	w, h := float64(g.width), float64(g.height)
	if w <= 0 || h <= 0 {
		return
	}
	g.ensureLayer()

	// The old slide slides out during the first half of a transition and the
	// new one slides in during the second; backward navigation mirrors both.
	tr := g.pres.Transition()
	view := g.currentView()
	var offset, alpha float64 = 0, 1
	if tr.Active() {
		p := tr.Progress()
		dir := float64(tr.Direction)
		if tr.Leaving() {
			if old, ok := g.pres.SlideByID(tr.From); ok {
				view = slideView{slide: old, sections: g.pres.OutgoingSections()}
			}
			q := p / 0.5
			offset, alpha = -dir*slideShift*q, 1-q
		} else {
			q := (p - 0.5) / 0.5
			offset, alpha = dir*slideShift*(1-q), q
		}
	}

	g.layer.Clear()
	g.renderSlide(g.layer, view, w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offset, 0)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(g.layer, op)

	g.drawButton(screen, &g.prevBtn)
	g.drawButton(screen, &g.nextBtn)
	g.drawProgressBar(screen)
	g.drawStatus(screen)
}

func (g *Game) ensureLayer() {
	if g.layer != nil {
		if b := g.layer.Bounds(); b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(g.width, g.height)
}

func (g *Game) drawButton(screen *ebiten.Image, b *widget.Button) {
	if b.Hidden {
		return
	}
	r := b.Rect
	primary := b == &g.nextBtn

	bg, fg := buttonGrey, darkInk
	if primary {
		bg, fg = accent, white
	}
	if b.Pressed() || b.Hovered() {
		bg = lerpColor(bg, darkInk, 0.15)
	}
	if primary && b.Pressed() {
		bg = accentDark
	}

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, true)
	ty := r.Y + (r.H-lineHeight(config.BodySize))/2
	g.fonts.label(screen, b.Label, config.BodySize, true, r.X+r.W/2, ty, fg, text.AlignCenter)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	w := float64(g.width)
	barH := float64(config.ProgressBarHeight)
	y := float64(g.height) - barH

	vector.DrawFilledRect(screen, 0, float32(y), float32(w), float32(barH), track, false)

	// The fill brightens while the chime rings.
	fill := lerpColor(accent, white, 2*g.chime.Level())
	vector.DrawFilledRect(screen, 0, float32(y), float32(w*g.pres.Progress()), float32(barH), fill, false)

	counter := formatCounter(g.pres.Index(), g.pres.Len())
	g.fonts.label(screen, counter, config.BodySize-3, false, w-16, y-lineHeight(config.BodySize-3)-8, withAlpha(greyInk, 0.8), text.AlignEnd)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := ""
	if g.chime.Muted() {
		status = "Muted - M to unmute"
	}
	if g.lastErr != nil {
		if status != "" {
			status += " | "
		}
		status += "Error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}
