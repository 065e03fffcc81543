package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/neonmaze/internal/engine/input"
)

// keymap translates physical keys into logical game keys.
// WASD and the arrow keys both drive movement.
var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyUp,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_S:      input.KeyDown,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_A:      input.KeyLeft,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_D:      input.KeyRight,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_B:      input.KeyDebug,
	sdl.SCANCODE_RETURN: input.KeyConfirm,
	sdl.SCANCODE_SPACE:  input.KeyConfirm,
	sdl.SCANCODE_ESCAPE: input.KeyQuit,
	sdl.SCANCODE_F12:    input.KeyScreenshot,
}

// KeyFor returns the logical key bound to a scancode, KeyNone if unbound.
func KeyFor(sc sdl.Scancode) input.Key {
	if k, ok := keymap[sc]; ok {
		return k
	}
	return input.KeyNone
}

// Events summarizes one pump of the SDL queue.
type Events struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// PollEvents drains the SDL queue into in.
func (w *Window) PollEvents(in *input.State) Events {
	var ev Events
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			ev.Quit = true
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			k := KeyFor(e.Keysym.Scancode)
			if k == input.KeyNone {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				in.Press(k)
			} else {
				in.Release(k)
			}
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				ev.Resized = true
				ev.Width, ev.Height = w.GetSize()
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Keys released while unfocused never arrive.
				in.Reset()
			}
		}
	}
	return ev
}
