package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/game"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
	"github.com/iburimskiy/portfolio-fx/internal/render"
	"github.com/iburimskiy/portfolio-fx/internal/term"
)

func main() {
	log.SetPrefix("folio: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	termMode := flag.Bool("term", false, "draw the particle field in the terminal instead of a window")
	flag.IntVar(&cfg.ParticleCount, "particles", cfg.ParticleCount, "number of particles")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one")
	flag.StringVar(&cfg.FormEndpoint, "endpoint", cfg.FormEndpoint, "contact form relay URL")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable notification sounds")
	flag.Parse()
	if cfg.ParticleCount < 0 {
		log.Fatalf("-particles must not be negative, got %d", cfg.ParticleCount)
	}

	opts := []particles.Option{
		particles.WithCount(cfg.ParticleCount),
		particles.WithColor(render.Hex(config.AccentColor, particles.Accent)),
		particles.WithLinkDistance(config.LinkDistance),
	}
	if cfg.Seed != 0 {
		s := uint64(cfg.Seed)
		opts = append(opts, particles.WithRand(rand.New(rand.NewPCG(s, s))))
	}

	if *termMode {
		if err := runTerminal(opts); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runWindow(cfg, opts); err != nil {
		log.Print(err)
		_ = zenity.Error(err.Error(), zenity.Title("Portfolio"))
		os.Exit(1)
	}
}

func runTerminal(opts []particles.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	session, err := term.NewSession(screen, opts...)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return session.Run(ctx)
}

func runWindow(cfg config.Config, opts []particles.Option) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Portfolio - Wheel: scroll, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	layer := render.NewCanvas(float64(cfg.Width), float64(cfg.Height))
	page, err := game.New(cfg, layer, opts...)
	if err != nil {
		return err
	}
	defer page.Close()

	if err := ebiten.RunGame(page); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
