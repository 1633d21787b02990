// Package input tracks keyboard and mouse state as persistent booleans.
// Host events flip flags on and off; entities read them during the tick.
// All state is last-write-wins and lives for the process.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Key identifies a tracked key or mouse button by name.
type Key string

// Mouse button identifiers, tracked as three independent flags.
const (
	MouseLeft   Key = "mouse-left"
	MouseMiddle Key = "mouse-middle"
	MouseRight  Key = "mouse-right"
)

// State is the process-wide input tracker. Create one at startup with New
// and keep it for the life of the process; it is never torn down.
type State struct {
	pressed map[Key]bool
	clicked map[Key]bool

	// Last known cursor position.
	MouseX int32
	MouseY int32

	jumpKey Key
}

// New creates an input tracker with the jump action bound to space.
func New() *State {
	return &State{
		pressed: make(map[Key]bool),
		clicked: make(map[Key]bool),
		jumpKey: KeySpace,
	}
}

// ProcessKeyDown marks the key mapped to code as pressed. Codes outside
// the key table are ignored.
func (s *State) ProcessKeyDown(code sdl.Scancode) {
	if key, ok := keymap[code]; ok {
		s.pressed[key] = true
	}
}

// ProcessKeyUp marks the key mapped to code as released. Codes outside
// the key table are ignored.
func (s *State) ProcessKeyUp(code sdl.Scancode) {
	if key, ok := keymap[code]; ok {
		s.pressed[key] = false
	}
}

// ProcessMouseMove stores the cursor position.
func (s *State) ProcessMouseMove(x, y int32) {
	s.MouseX = x
	s.MouseY = y
}

// ProcessMouseDown marks the flag for button as pressed.
func (s *State) ProcessMouseDown(button uint8) {
	if key, ok := mouseKey(button); ok {
		s.pressed[key] = true
	}
}

// ProcessMouseUp marks the flag for button as released.
func (s *State) ProcessMouseUp(button uint8) {
	if key, ok := mouseKey(button); ok {
		s.pressed[key] = false
	}
}

// ProcessMouseClick records a completed click on button. Click flags
// persist until ResetClicks.
func (s *State) ProcessMouseClick(button uint8) {
	if key, ok := mouseKey(button); ok {
		s.clicked[key] = true
	}
}

// ResetClicks clears the click flags, typically after the host has acted
// on them.
func (s *State) ResetClicks() {
	for k := range s.clicked {
		delete(s.clicked, k)
	}
}

// Pressed reports whether key is currently held.
func (s *State) Pressed(key Key) bool {
	return s.pressed[key]
}

// Clicked reports whether a click on key was recorded since the last
// ResetClicks.
func (s *State) Clicked(key Key) bool {
	return s.clicked[key]
}

// Press sets a key flag directly, bypassing the scancode table.
func (s *State) Press(key Key) {
	s.pressed[key] = true
}

// Release clears a key flag directly.
func (s *State) Release(key Key) {
	s.pressed[key] = false
}

// SetJumpKey rebinds the jump action.
func (s *State) SetJumpKey(key Key) {
	s.jumpKey = key
}

// JumpPressed reports whether the jump binding is held.
func (s *State) JumpPressed() bool {
	return s.pressed[s.jumpKey]
}

// ReleaseJump clears the jump binding. The jump state machine calls this
// when a jump ends, so a held key does not immediately re-trigger.
func (s *State) ReleaseJump() {
	s.pressed[s.jumpKey] = false
}

func mouseKey(button uint8) (Key, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return MouseLeft, true
	case sdl.BUTTON_MIDDLE:
		return MouseMiddle, true
	case sdl.BUTTON_RIGHT:
		return MouseRight, true
	}
	return "", false
}

// Poll drains the SDL event queue into the tracker. Returns true when the
// host requested quit.
func Poll(s *State) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				s.ProcessKeyDown(e.Keysym.Scancode)
			} else if e.Type == sdl.KEYUP {
				s.ProcessKeyUp(e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			s.ProcessMouseMove(e.X, e.Y)

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				s.ProcessMouseDown(e.Button)
			} else if e.Type == sdl.MOUSEBUTTONUP {
				s.ProcessMouseUp(e.Button)
				s.ProcessMouseClick(e.Button)
			}
		}
	}
	return false
}
