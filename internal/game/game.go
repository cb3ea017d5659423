// Package game hosts a presentation in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ild-presenter/internal/anim"
	"github.com/iburimskiy/ild-presenter/internal/audio"
	"github.com/iburimskiy/ild-presenter/internal/config"
	"github.com/iburimskiy/ild-presenter/internal/deck"
	"github.com/iburimskiy/ild-presenter/internal/nav"
	"github.com/iburimskiy/ild-presenter/internal/particles"
	"github.com/iburimskiy/ild-presenter/internal/shell"
	"github.com/iburimskiy/ild-presenter/internal/widget"
)

type Game struct {
	settings config.Settings
	deck     deck.Deck
	pres     *shell.Presentation

	// backdrop
	frames   anim.Frames
	viewport *anim.Viewport
	field    *particles.Field
	canvas   canvas

	// rendering
	fonts         *typesetter
	layer         *ebiten.Image
	width, height int

	// input
	prevKey  map[ebiten.Key]bool
	prevBtn  widget.Button
	nextBtn  widget.Button
	headers  []widget.Button
	touchIDs []ebiten.TouchID

	chime     *audio.Chime
	quitArmed bool
	lastErr   error
}

// New builds the game for d. chime may be nil to run without sound.
func New(settings config.Settings, d deck.Deck, policy nav.Policy, chime *audio.Chime) (*Game, error) {
	fonts, err := newTypesetter()
	if err != nil {
		return nil, err
	}
	g := &Game{
		settings: settings,
		deck:     d,
		viewport: anim.NewViewport(0, 0),
		field:    particles.New(particles.WithSeed(settings.Seed)),
		fonts:    fonts,
		prevKey:  map[ebiten.Key]bool{},
		prevBtn:  widget.Button{Label: "← Back"},
		nextBtn:  widget.Button{Label: "Next →"},
		chime:    chime,
	}
	g.pres, err = shell.New(d.Registry, policy,
		shell.WithMount(g.mountSlide),
		shell.WithChangeHook(g.slideChanged),
	)
	if err != nil {
		return nil, fmt.Errorf("new presentation: %w", err)
	}
	log.Printf("[ild] deck %q: %d slides, %s navigation", d.Name, g.pres.Len(), policy)
	return g, nil
}

// mountSlide starts the particle backdrop for slides that have one.
func (g *Game) mountSlide(s deck.Slide) func() {
	if s.Backdrop != deck.BackdropParticles {
		return nil
	}
	log.Printf("[ild] particle backdrop mounted on %q", s.ID)
	h := g.field.Mount(&g.frames, g.viewport, g.canvas.acquire)
	return func() {
		h.Stop()
		g.canvas.release()
		log.Printf("[ild] particle backdrop unmounted from %q", s.ID)
	}
}

func (g *Game) slideChanged(dir nav.Direction) {
	g.headers = g.headers[:0]
	freq := config.ChimeFrequency
	if dir == nav.Backward {
		freq *= 0.75
	}
	g.chime.Play(freq)
}

func (g *Game) Update() error {
	// Every key is sampled each tick so prevKey never goes stale.
	justPressed := func(keys ...ebiten.Key) bool {
		hit := false
		for _, k := range keys {
			pressed := ebiten.IsKeyPressed(k)
			if pressed && !g.prevKey[k] {
				hit = true
			}
			g.prevKey[k] = pressed
		}
		return hit
	}

	p := g.pointer()

	g.prevBtn.Hidden = !g.pres.CanPrevious()
	g.nextBtn.Hidden = !g.pres.CanNext()
	g.layoutButtons()
	if g.prevBtn.Update(p) {
		g.pres.Previous()
	}
	if g.nextBtn.Update(p) {
		g.pres.Next()
	}

	// Headers of the incoming slide are not clickable until it is on screen.
	if !g.pres.Transition().Leaving() {
		layout := g.renderSlide(nil, g.currentView(), float64(g.width), float64(g.height))
		if len(g.headers) != len(layout.headers) {
			g.headers = make([]widget.Button, len(layout.headers))
		}
		for i, r := range layout.headers {
			g.headers[i].Rect = r
			if g.headers[i].Update(p) {
				g.pres.Toggle(i)
			}
		}
	}

	forward := justPressed(ebiten.KeyArrowRight, ebiten.KeyPageDown, ebiten.KeySpace)
	backward := justPressed(ebiten.KeyArrowLeft, ebiten.KeyPageUp, ebiten.KeyBackspace)
	home := justPressed(ebiten.KeyHome)
	end := justPressed(ebiten.KeyEnd)
	mute := justPressed(ebiten.KeyM)
	quit := justPressed(ebiten.KeyEscape, ebiten.KeyQ)

	switch {
	case forward:
		g.pres.Next()
	case backward:
		g.pres.Previous()
	case home:
		g.pres.Jump(0)
	case end:
		g.pres.Jump(g.pres.Len() - 1)
	}
	if mute {
		g.chime.SetMuted(!g.chime.Muted())
	}
	if quit && g.confirmQuit() {
		log.Printf("[ild] quit on slide %q", g.pres.Slide().ID)
		return ebiten.Termination
	}

	g.frames.Pump()
	g.pres.Step(1.0 / config.TicksPerSecond)
	return nil
}

// pointer merges this tick's mouse and touch input. Touches win when present.
func (g *Game) pointer() widget.Pointer {
	mx, my := ebiten.CursorPosition()
	p := widget.Pointer{
		X:            float64(mx),
		Y:            float64(my),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIDs[0])
		return widget.Pointer{X: float64(tx), Y: float64(ty), JustPressed: true}
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := inpututil.TouchPositionInPreviousTick(g.touchIDs[0])
		return widget.Pointer{X: float64(tx), Y: float64(ty), JustReleased: true}
	}
	return p
}

func (g *Game) layoutButtons() {
	cx := float64(g.width) / 2
	y := float64(g.height - config.ButtonBottom - config.ButtonHeight)
	g.prevBtn.Rect = widget.Rect{X: cx - config.ButtonGap/2 - config.ButtonWidth, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
	g.nextBtn.Rect = widget.Rect{X: cx + config.ButtonGap/2, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
}

func (g *Game) confirmQuit() bool {
	if !g.settings.ConfirmExit || g.quitArmed {
		return true
	}
	err := zenity.Question("Leave the presentation?",
		zenity.Title(g.deck.Title),
		zenity.OKLabel("Quit"),
		zenity.CancelLabel("Stay"),
	)
	if err == nil {
		return true
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return false
	}
	// Without a dialog a second press quits.
	log.Printf("[ild] quit confirmation failed: %v", err)
	g.quitArmed = true
	g.lastErr = fmt.Errorf("confirm quit: %w (press Esc again to quit)", err)
	return false
}

func (g *Game) currentView() slideView {
	v := slideView{slide: g.pres.Slide(), sections: g.pres.Sections()}
	if v.slide.Backdrop == deck.BackdropParticles {
		v.backdrop = g.canvas.img
	}
	return v
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close unmounts the active slide and stops sound.
func (g *Game) Close() {
	g.pres.Close()
	g.chime.Close()
	if g.layer != nil {
		g.layer.Deallocate()
		g.layer = nil
	}
}
