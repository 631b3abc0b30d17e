//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/life"
	"lifegrid/internal/patterns"
	"lifegrid/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	sess := session.New(sim, session.Options{
		Interval: cfg.Interval(),
		Density:  cfg.Density,
		Running:  cfg.Running,
	})

	size := sim.Size()
	if cfg.Pattern != "" {
		if err := sess.Stamp(cfg.Pattern, size.W/2, size.H/2); err != nil {
			log.Fatalf("%v (available: %v)", err, patterns.Names())
		}
	}
	if cfg.PatternFile != "" {
		p, err := patterns.ParseFile(cfg.PatternFile)
		if err != nil {
			log.Fatal(err)
		}
		sess.StampPattern(p, size.W/2, size.H/2)
	}

	game := app.New(sess, cfg)
	w, h := game.Layout(0, 0)
	log.Printf("%s %dx%d, tick %v, population %d", sim.Name(), size.W, size.H, sess.Interval(), sim.Population())

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
