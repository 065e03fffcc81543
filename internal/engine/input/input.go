// Package input tracks the set of currently held logical keys.
// The window event pump writes it; the game loop samples it once per tick.
package input

import (
	"github.com/sasha-s/go-deadlock"
)

// Key is a logical game key, independent of the windowing backend.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDebug
	KeyConfirm
	KeyQuit
	KeyScreenshot
	keyCount
)

// String returns the key name used in logs.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyDebug:
		return "debug"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	case KeyScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// Intent is the per-tick movement request derived from held keys.
// MoveX/MoveZ drive the free-direction scheme; Forward/Turn drive the tank scheme.
type Intent struct {
	MoveX   float32
	MoveZ   float32
	Forward float32
	Turn    float32
}

// IsZero reports whether the intent requests no movement or turning.
func (i Intent) IsZero() bool {
	return i == Intent{}
}

// Snapshot is an immutable copy of the held key set.
type Snapshot struct {
	held [keyCount]bool
}

// Held reports whether k was held when the snapshot was taken.
func (s Snapshot) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s.held[k]
}

// Intent maps held keys to a movement intent.
// Up/Down move along -Z/+Z and drive forward/back.
// Left/Right move along -X/+X and turn left/right.
func (s Snapshot) Intent() Intent {
	var in Intent
	if s.Held(KeyUp) {
		in.MoveZ--
		in.Forward++
	}
	if s.Held(KeyDown) {
		in.MoveZ++
		in.Forward--
	}
	if s.Held(KeyLeft) {
		in.MoveX--
		in.Turn++
	}
	if s.Held(KeyRight) {
		in.MoveX++
		in.Turn--
	}
	return in
}

// State is the shared held-key set. It is safe for concurrent use.
type State struct {
	mu      deadlock.RWMutex
	held    [keyCount]bool
	pressed [keyCount]bool // press edges not yet consumed
}

// New creates an empty input state.
func New() *State {
	return &State{}
}

// Press marks k as held and records a press edge if it was released.
func (s *State) Press(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = true
}

// Release marks k as no longer held.
func (s *State) Release(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[k] = false
}

// Reset releases every key and drops pending press edges.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [keyCount]bool{}
	s.pressed = [keyCount]bool{}
}

// Held reports whether k is currently held.
func (s *State) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.held[k]
}

// Consume reports whether k was pressed since the last Consume, once per press.
func (s *State) Consume(k Key) bool {
	if k >= keyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pressed[k]
	s.pressed[k] = false
	return p
}

// Snapshot copies the held set for one tick.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{held: s.held}
}

// Intent is shorthand for Snapshot().Intent().
func (s *State) Intent() Intent {
	return s.Snapshot().Intent()
}
