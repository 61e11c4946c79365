/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"flag"
	"fmt"
	"log"

	"grid-caster/internal/hero"
	"grid-caster/internal/platform"
	"grid-caster/internal/scene"
	"grid-caster/internal/world"
)

func main() {
	term := flag.Bool("term", false, "render into the terminal instead of a window")
	flag.Parse()

	cfg := scene.DefaultConfig()
	var front platform.Frontend
	var err error
	if *term {
		front, err = platform.OpenTerm()
		cfg.Width, cfg.Height = 0, 0 // follow the terminal size
	} else {
		front, err = platform.OpenSDL("Grid Caster", cfg.Width, cfg.Height)
	}
	if err != nil {
		log.Fatalf("open frontend: %v", err)
	}
	defer front.Destroy()

	if err := scene.New(cfg, world.Stock(), hero.Born(), front).Run(); err != nil {
		log.Fatalf("run scene: %v", err)
	}
	fmt.Println("Game over")
}
