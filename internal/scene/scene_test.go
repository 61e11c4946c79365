/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"testing"
	"time"

	"grid-caster/internal/geom"
	"grid-caster/internal/hero"
	"grid-caster/internal/platform"
	"grid-caster/internal/world"
)

const sentinel = 0xDEADBEEF

type fakeFront struct {
	xres, yres int
	pixels     []uint32
	frames     int
	polls      int
	locks      int
	unlocks    int
	presents   int
	keys       hero.Keys
	slept      []time.Duration
	now        time.Time
}

func newFakeFront(xres, yres, frames int) *fakeFront {
	f := &fakeFront{xres: xres, yres: yres, frames: frames, pixels: make([]uint32, xres*yres)}
	for i := range f.pixels {
		f.pixels[i] = sentinel
	}
	return f
}

func (f *fakeFront) Size() (int, int) { return f.xres, f.yres }

func (f *fakeFront) Lock() (platform.Display, error) {
	f.locks++
	return platform.Display{Pixels: f.pixels, Stride: f.yres}, nil
}

func (f *fakeFront) Unlock() { f.unlocks++ }

func (f *fakeFront) Present() { f.presents++ }

func (f *fakeFront) Destroy() {}

func (f *fakeFront) Poll() bool {
	f.polls++
	return f.polls > f.frames
}

func (f *fakeFront) Keys() hero.Keys { return f.keys }

// Now advances one millisecond per call, making the pacing math exact.
func (f *fakeFront) Now() time.Time {
	f.now = f.now.Add(time.Millisecond)
	return f.now
}

func (f *fakeFront) Sleep(d time.Duration) { f.slept = append(f.slept, d) }

func TestRunPaintsEveryPixel(t *testing.T) {
	front := newFakeFront(40, 30, 1)
	cfg := Config{Width: 40, Height: 30, Tick: DefaultTick}
	if err := New(cfg, world.Stock(), hero.Born(), front).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for i, pixel := range front.pixels {
		if pixel == sentinel {
			t.Fatalf("pixel %d was never painted", i)
		}
	}
	if front.locks != 1 || front.unlocks != 1 || front.presents != 1 {
		t.Errorf("lock/unlock/present counts: %d/%d/%d, want 1/1/1",
			front.locks, front.unlocks, front.presents)
	}
}

func TestRunPacesFrames(t *testing.T) {
	front := newFakeFront(16, 16, 3)
	cfg := Config{Width: 16, Height: 16, Tick: 15 * time.Millisecond}
	if err := New(cfg, world.Stock(), hero.Born(), front).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(front.slept) != 3 {
		t.Fatalf("sleep calls: got %d, want 3", len(front.slept))
	}
	for i, d := range front.slept {
		if d != cfg.Tick-time.Millisecond {
			t.Errorf("frame %d slept %v, want %v", i, d, cfg.Tick-time.Millisecond)
		}
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	front := newFakeFront(16, 16, 100)
	front.keys = hero.Keys{Quit: true}
	cfg := Config{Width: 16, Height: 16, Tick: DefaultTick}
	if err := New(cfg, world.Stock(), hero.Born(), front).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if front.presents != 0 {
		t.Errorf("presented %d frames after quit", front.presents)
	}
}

func TestRunUnlocksOnCastFailure(t *testing.T) {
	open := world.Map{
		Ceiling: world.Grid{"111", "111", "111"},
		Walling: world.Grid{"000", "000", "000"},
		Floring: world.Grid{"111", "111", "111"},
	}
	front := newFakeFront(8, 8, 1)
	cfg := Config{Width: 8, Height: 8, Tick: DefaultTick}
	h := hero.Born()
	h.Where = geom.Point{X: 1.5, Y: 1.5}
	if err := New(cfg, open, h, front).Run(); err == nil {
		t.Fatal("run against an unsealed map succeeded")
	}
	if front.locks != front.unlocks {
		t.Errorf("lock/unlock imbalance after failed frame: %d/%d", front.locks, front.unlocks)
	}
	if front.presents != 0 {
		t.Errorf("presented %d frames after a failed render", front.presents)
	}
}

func TestShadeBands(t *testing.T) {
	cases := []struct {
		tile int
		want uint32
	}{
		{0, 0x00000000},
		{1, 0x000000AA},
		{2, 0x0000AA00},
		{3, 0x00AA0000},
		{4, 0xAA000000},
	}
	for _, c := range cases {
		if got := shade(c.tile); got != c.want {
			t.Errorf("shade(%d): got %#08x, want %#08x", c.tile, got, c.want)
		}
	}
}
