package input

import "github.com/veandco/go-sdl2/sdl"

// Named keys tracked by the State. The names double as stable identifiers
// for key bindings in config.
const (
	KeyA Key = "a"
	KeyB Key = "b"
	KeyC Key = "c"
	KeyD Key = "d"
	KeyE Key = "e"
	KeyF Key = "f"
	KeyG Key = "g"
	KeyH Key = "h"
	KeyI Key = "i"
	KeyJ Key = "j"
	KeyK Key = "k"
	KeyL Key = "l"
	KeyM Key = "m"
	KeyN Key = "n"
	KeyO Key = "o"
	KeyP Key = "p"
	KeyQ Key = "q"
	KeyR Key = "r"
	KeyS Key = "s"
	KeyT Key = "t"
	KeyU Key = "u"
	KeyV Key = "v"
	KeyW Key = "w"
	KeyX Key = "x"
	KeyY Key = "y"
	KeyZ Key = "z"

	Key0 Key = "0"
	Key1 Key = "1"
	Key2 Key = "2"
	Key3 Key = "3"
	Key4 Key = "4"
	Key5 Key = "5"
	Key6 Key = "6"
	Key7 Key = "7"
	Key8 Key = "8"
	Key9 Key = "9"

	KeyF1  Key = "f1"
	KeyF2  Key = "f2"
	KeyF3  Key = "f3"
	KeyF4  Key = "f4"
	KeyF5  Key = "f5"
	KeyF6  Key = "f6"
	KeyF7  Key = "f7"
	KeyF8  Key = "f8"
	KeyF9  Key = "f9"
	KeyF10 Key = "f10"
	KeyF11 Key = "f11"
	KeyF12 Key = "f12"

	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"

	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyEscape    Key = "escape"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyCapsLock  Key = "capslock"

	KeyLeftShift  Key = "lshift"
	KeyRightShift Key = "rshift"
	KeyLeftCtrl   Key = "lctrl"
	KeyRightCtrl  Key = "rctrl"
	KeyLeftAlt    Key = "lalt"
	KeyRightAlt   Key = "ralt"

	KeyMinus        Key = "minus"
	KeyEquals       Key = "equals"
	KeyLeftBracket  Key = "lbracket"
	KeyRightBracket Key = "rbracket"
	KeyBackslash    Key = "backslash"
	KeySemicolon    Key = "semicolon"
	KeyApostrophe   Key = "apostrophe"
	KeyGrave        Key = "grave"
	KeyComma        Key = "comma"
	KeyPeriod       Key = "period"
	KeySlash        Key = "slash"

	KeyHome     Key = "home"
	KeyEnd      Key = "end"
	KeyPageUp   Key = "pageup"
	KeyPageDown Key = "pagedown"
	KeyInsert   Key = "insert"
	KeyDelete   Key = "delete"
)

// keymap is the static scancode lookup table. Scancodes missing from it
// are ignored by the tracker.
var keymap = map[sdl.Scancode]Key{
	sdl.SCANCODE_A: KeyA,
	sdl.SCANCODE_B: KeyB,
	sdl.SCANCODE_C: KeyC,
	sdl.SCANCODE_D: KeyD,
	sdl.SCANCODE_E: KeyE,
	sdl.SCANCODE_F: KeyF,
	sdl.SCANCODE_G: KeyG,
	sdl.SCANCODE_H: KeyH,
	sdl.SCANCODE_I: KeyI,
	sdl.SCANCODE_J: KeyJ,
	sdl.SCANCODE_K: KeyK,
	sdl.SCANCODE_L: KeyL,
	sdl.SCANCODE_M: KeyM,
	sdl.SCANCODE_N: KeyN,
	sdl.SCANCODE_O: KeyO,
	sdl.SCANCODE_P: KeyP,
	sdl.SCANCODE_Q: KeyQ,
	sdl.SCANCODE_R: KeyR,
	sdl.SCANCODE_S: KeyS,
	sdl.SCANCODE_T: KeyT,
	sdl.SCANCODE_U: KeyU,
	sdl.SCANCODE_V: KeyV,
	sdl.SCANCODE_W: KeyW,
	sdl.SCANCODE_X: KeyX,
	sdl.SCANCODE_Y: KeyY,
	sdl.SCANCODE_Z: KeyZ,

	sdl.SCANCODE_0: Key0,
	sdl.SCANCODE_1: Key1,
	sdl.SCANCODE_2: Key2,
	sdl.SCANCODE_3: Key3,
	sdl.SCANCODE_4: Key4,
	sdl.SCANCODE_5: Key5,
	sdl.SCANCODE_6: Key6,
	sdl.SCANCODE_7: Key7,
	sdl.SCANCODE_8: Key8,
	sdl.SCANCODE_9: Key9,

	sdl.SCANCODE_F1:  KeyF1,
	sdl.SCANCODE_F2:  KeyF2,
	sdl.SCANCODE_F3:  KeyF3,
	sdl.SCANCODE_F4:  KeyF4,
	sdl.SCANCODE_F5:  KeyF5,
	sdl.SCANCODE_F6:  KeyF6,
	sdl.SCANCODE_F7:  KeyF7,
	sdl.SCANCODE_F8:  KeyF8,
	sdl.SCANCODE_F9:  KeyF9,
	sdl.SCANCODE_F10: KeyF10,
	sdl.SCANCODE_F11: KeyF11,
	sdl.SCANCODE_F12: KeyF12,

	sdl.SCANCODE_UP:    KeyUp,
	sdl.SCANCODE_DOWN:  KeyDown,
	sdl.SCANCODE_LEFT:  KeyLeft,
	sdl.SCANCODE_RIGHT: KeyRight,

	sdl.SCANCODE_SPACE:     KeySpace,
	sdl.SCANCODE_RETURN:    KeyEnter,
	sdl.SCANCODE_ESCAPE:    KeyEscape,
	sdl.SCANCODE_TAB:       KeyTab,
	sdl.SCANCODE_BACKSPACE: KeyBackspace,
	sdl.SCANCODE_CAPSLOCK:  KeyCapsLock,

	sdl.SCANCODE_LSHIFT: KeyLeftShift,
	sdl.SCANCODE_RSHIFT: KeyRightShift,
	sdl.SCANCODE_LCTRL:  KeyLeftCtrl,
	sdl.SCANCODE_RCTRL:  KeyRightCtrl,
	sdl.SCANCODE_LALT:   KeyLeftAlt,
	sdl.SCANCODE_RALT:   KeyRightAlt,

	sdl.SCANCODE_MINUS:        KeyMinus,
	sdl.SCANCODE_EQUALS:       KeyEquals,
	sdl.SCANCODE_LEFTBRACKET:  KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: KeyRightBracket,
	sdl.SCANCODE_BACKSLASH:    KeyBackslash,
	sdl.SCANCODE_SEMICOLON:    KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:   KeyApostrophe,
	sdl.SCANCODE_GRAVE:        KeyGrave,
	sdl.SCANCODE_COMMA:        KeyComma,
	sdl.SCANCODE_PERIOD:       KeyPeriod,
	sdl.SCANCODE_SLASH:        KeySlash,

	sdl.SCANCODE_HOME:     KeyHome,
	sdl.SCANCODE_END:      KeyEnd,
	sdl.SCANCODE_PAGEUP:   KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: KeyPageDown,
	sdl.SCANCODE_INSERT:   KeyInsert,
	sdl.SCANCODE_DELETE:   KeyDelete,
}
