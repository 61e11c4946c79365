/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package scene assembles the renderer: once per frame it samples input,
// advances the hero, paints every column, presents, and pads out the tick.
package scene

import (
	"time"

	"grid-caster/internal/camera"
	"grid-caster/internal/geom"
	"grid-caster/internal/hero"
	"grid-caster/internal/platform"
	"grid-caster/internal/raycast"
	"grid-caster/internal/world"
)

const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultTick   = 15 * time.Millisecond
)

// Config carries the tunable frame parameters. Tick is the target frame
// budget; the loop sleeps off whatever the render pass leaves of it.
type Config struct {
	Width  int
	Height int
	Tick   time.Duration
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Tick: DefaultTick}
}

// Scene owns the level, the hero, and the platform frontend for the life of
// the run loop. The level is immutable; the hero is replaced each frame.
type Scene struct {
	cfg   Config
	level world.Map
	hero  hero.Hero
	front platform.Frontend
}

func New(cfg Config, level world.Map, h hero.Hero, front platform.Frontend) *Scene {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = front.Size()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	return &Scene{cfg: cfg, level: level, hero: h, front: front}
}

// Run drives the synchronous frame loop until a quit event. Quit is only
// checked between frames.
func (s *Scene) Run() error {
	for !s.front.Poll() {
		keys := s.front.Keys()
		if keys.Quit {
			return nil
		}
		s.hero = s.hero.Spin(keys)
		s.hero = s.hero.Move(s.level.Walling, keys)
		t0 := s.front.Now()
		if err := s.render(); err != nil {
			return err
		}
		s.front.Present()
		s.front.Sleep(s.cfg.Tick - s.front.Now().Sub(t0))
	}
	return nil
}

// render paints one frame column by column: floor below the wall span, the
// wall itself, ceiling above. The display is released on every exit path
// before presentation.
func (s *Scene) render() error {
	xres, yres := s.cfg.Width, s.cfg.Height
	cam := s.hero.Fov.Rotate(s.hero.Theta)
	display, err := s.front.Lock()
	if err != nil {
		return err
	}
	defer s.front.Unlock()
	for x := 0; x < xres; x++ {
		column := cam.Lerp(float64(x) / float64(xres))
		hit, err := raycast.Cast(s.hero.Where, column, s.level.Walling)
		if err != nil {
			return err
		}
		ray := hit.Where.Sub(s.hero.Where)
		corrected := ray.Turn(-s.hero.Theta)
		wall := camera.Project(xres, yres, s.hero.Fov, corrected)
		trace := geom.Line{A: s.hero.Where, B: hit.Where}
		for y := 0; y < wall.Bot; y++ {
			spot := trace.Lerp(-camera.Pcast(wall.Size, yres, y))
			display.Put(x, y, shade(s.level.Floring.At(spot)))
		}
		for y := wall.Bot; y < wall.Top; y++ {
			display.Put(x, y, shade(hit.Tile))
		}
		for y := wall.Top; y < yres; y++ {
			spot := trace.Lerp(+camera.Pcast(wall.Size, yres, y))
			display.Put(x, y, shade(s.level.Ceiling.At(spot)))
		}
	}
	return nil
}

// shade maps a tile code onto an ARGB band: code 1 lights blue, 2 green,
// 3 red, 4 alpha. Codes below 1 never reach here on a validated map.
func shade(tile int) uint32 {
	if tile < 1 {
		return 0
	}
	return 0xAA << (8 * uint(tile-1))
}
