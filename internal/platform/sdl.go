/*
 * Copyright (C) 2023 by Jason Figge
 */

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"grid-caster/internal/hero"
)

// SDL presents through a streaming ARGB8888 texture created with width and
// height swapped. Columns are written as texture rows and the blit applies a
// -90 degree rotation, so the on-screen image comes out upright.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	xres     int
	yres     int
}

// OpenSDL creates the window, renderer, and transposed texture.
func OpenSDL(title string, xres, yres int) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("platform: sdl init: %w", err)
	}
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(xres), int32(yres), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("platform: create renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(yres), int32(xres))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("platform: create texture: %w", err)
	}
	return &SDL{window: window, renderer: renderer, texture: texture, xres: xres, yres: yres}, nil
}

func (s *SDL) Size() (int, int) {
	return s.xres, s.yres
}

func (s *SDL) Lock() (Display, error) {
	bytes, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return Display{}, fmt.Errorf("platform: lock texture: %w", err)
	}
	pixels := unsafe.Slice((*uint32)(unsafe.Pointer(&bytes[0])), len(bytes)/4)
	return Display{Pixels: pixels, Stride: pitch / 4}, nil
}

func (s *SDL) Unlock() {
	s.texture.Unlock()
}

func (s *SDL) Present() {
	dst := sdl.Rect{
		X: int32(s.xres-s.yres) / 2,
		Y: int32(s.yres-s.xres) / 2,
		W: int32(s.yres),
		H: int32(s.xres),
	}
	_ = s.renderer.CopyEx(s.texture, nil, &dst, -90, nil, sdl.FLIP_NONE)
	s.renderer.Present()
}

func (s *SDL) Destroy() {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}

// Poll drains one pending event per frame, mirroring the keyboard snapshot
// cadence. Quit comes from the window close button, escape, or end.
func (s *SDL) Poll() bool {
	switch event := sdl.PollEvent().(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.KeyboardEvent:
		return event.Keysym.Sym == sdl.K_ESCAPE || event.Keysym.Sym == sdl.K_END
	}
	return false
}

func (s *SDL) Keys() hero.Keys {
	codes := sdl.GetKeyboardState()
	return hero.Keys{
		TurnLeft:    codes[sdl.SCANCODE_H] == 1,
		TurnRight:   codes[sdl.SCANCODE_L] == 1,
		Forward:     codes[sdl.SCANCODE_W] == 1,
		Backward:    codes[sdl.SCANCODE_S] == 1,
		StrafeLeft:  codes[sdl.SCANCODE_A] == 1,
		StrafeRight: codes[sdl.SCANCODE_D] == 1,
		Quit:        codes[sdl.SCANCODE_ESCAPE] == 1 || codes[sdl.SCANCODE_END] == 1,
	}
}

func (s *SDL) Now() time.Time {
	return time.UnixMilli(int64(sdl.GetTicks()))
}

func (s *SDL) Sleep(d time.Duration) {
	if d > 0 {
		sdl.Delay(uint32(d.Milliseconds()))
	}
}
