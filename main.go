package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ild-presenter/internal/audio"
	"github.com/iburimskiy/ild-presenter/internal/config"
	"github.com/iburimskiy/ild-presenter/internal/deck"
	"github.com/iburimskiy/ild-presenter/internal/game"
	"github.com/iburimskiy/ild-presenter/internal/nav"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		config.Exitf("load settings: %v", err)
	}
	log.Printf("[ild] settings: deck=%s navigation=%q window=%dx%d sound=%t chime=%q confirm_exit=%t seed=%d",
		settings.Deck, settings.Navigation, settings.WindowWidth, settings.WindowHeight,
		settings.Sound, settings.ChimeFile, settings.ConfirmExit, settings.Seed)

	d, err := deck.Lookup(settings.Deck)
	if err != nil {
		config.Exitf("load deck: %v", err)
	}
	policy := d.Policy
	if settings.Navigation != "" {
		if policy, err = nav.ParsePolicy(settings.Navigation); err != nil {
			config.Exitf("navigation: %v", err)
		}
	}

	var chime *audio.Chime
	if settings.Sound {
		if chime, err = audio.NewChime(); err != nil {
			log.Printf("[ild] sound disabled: %v", err)
			chime = nil
		} else if settings.ChimeFile != "" {
			if err := chime.LoadSample(settings.ChimeFile); err != nil {
				log.Printf("[ild] using built-in chime: %v", err)
			}
		}
	}

	g, err := game.New(settings, d, policy, chime)
	if err != nil {
		config.Exitf("start presentation: %v", err)
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(d.Title + " - " + config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		config.Exitf("run presentation: %v", err)
	}
}
