/*
 * Copyright (C) 2023 by Jason Figge
 */

package platform

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"grid-caster/internal/hero"
)

// holdFrames keeps a key active for a few frames after its event. Terminals
// report key presses but never key releases, so a held key arrives as a
// repeat stream with gaps longer than one frame.
const holdFrames = 3

// Term renders into the terminal, one cell per pixel, using background
// colors. The framebuffer uses the same transposed layout as the SDL texture
// and the blit unrotates it. Resolution is fixed to the terminal size at
// startup.
type Term struct {
	screen tcell.Screen
	events chan tcell.Event
	held   map[rune]int
	pixels []uint32
	xres   int
	yres   int
}

// OpenTerm initializes the screen and starts the event pump. PollEvent
// blocks, so a goroutine forwards events into a channel the frame loop
// drains; it exits when Fini makes PollEvent return nil.
func OpenTerm() (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("platform: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("platform: init screen: %w", err)
	}
	screen.HideCursor()
	xres, yres := screen.Size()
	t := &Term{
		screen: screen,
		events: make(chan tcell.Event, 16),
		held:   make(map[rune]int),
		pixels: make([]uint32, xres*yres),
		xres:   xres,
		yres:   yres,
	}
	go func() {
		for {
			event := screen.PollEvent()
			if event == nil {
				close(t.events)
				return
			}
			t.events <- event
		}
	}()
	return t, nil
}

func (t *Term) Size() (int, int) {
	return t.xres, t.yres
}

func (t *Term) Lock() (Display, error) {
	return Display{Pixels: t.pixels, Stride: t.yres}, nil
}

func (t *Term) Unlock() {}

func (t *Term) Present() {
	for sy := 0; sy < t.yres; sy++ {
		for sx := 0; sx < t.xres; sx++ {
			pixel := t.pixels[(t.yres-1-sy)+sx*t.yres]
			color := tcell.NewRGBColor(
				int32(pixel>>16&0xFF),
				int32(pixel>>8&0xFF),
				int32(pixel&0xFF))
			t.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault.Background(color))
		}
	}
	t.screen.Show()
}

func (t *Term) Destroy() {
	t.screen.Fini()
}

// Poll drains the pending events and reports whether a quit key arrived.
func (t *Term) Poll() bool {
	for {
		select {
		case event, ok := <-t.events:
			if !ok {
				return true
			}
			key, hasKey := event.(*tcell.EventKey)
			if !hasKey {
				continue
			}
			switch key.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return true
			case tcell.KeyLeft:
				t.held['h'] = holdFrames
			case tcell.KeyRight:
				t.held['l'] = holdFrames
			case tcell.KeyUp:
				t.held['w'] = holdFrames
			case tcell.KeyDown:
				t.held['s'] = holdFrames
			case tcell.KeyRune:
				if key.Rune() == 'q' {
					return true
				}
				t.held[key.Rune()] = holdFrames
			}
		default:
			return false
		}
	}
}

func (t *Term) Keys() hero.Keys {
	keys := hero.Keys{
		TurnLeft:    t.held['h'] > 0,
		TurnRight:   t.held['l'] > 0,
		Forward:     t.held['w'] > 0,
		Backward:    t.held['s'] > 0,
		StrafeLeft:  t.held['a'] > 0,
		StrafeRight: t.held['d'] > 0,
	}
	for r, frames := range t.held {
		if frames <= 1 {
			delete(t.held, r)
		} else {
			t.held[r] = frames - 1
		}
	}
	return keys
}

func (t *Term) Now() time.Time {
	return time.Now()
}

func (t *Term) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
