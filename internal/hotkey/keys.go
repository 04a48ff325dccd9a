package hotkey

import "strings"

// Key is a kernel input key code (the EV_KEY code space).
type Key uint16

// Key codes from linux/input-event-codes.h, limited to what a hotkey combo
// can name.
const (
	KeyEsc        Key = 1
	Key1          Key = 2
	Key2          Key = 3
	Key3          Key = 4
	Key4          Key = 5
	Key5          Key = 6
	Key6          Key = 7
	Key7          Key = 8
	Key8          Key = 9
	Key9          Key = 10
	Key0          Key = 11
	KeyBackspace  Key = 14
	KeyTab        Key = 15
	KeyQ          Key = 16
	KeyW          Key = 17
	KeyE          Key = 18
	KeyR          Key = 19
	KeyT          Key = 20
	KeyY          Key = 21
	KeyU          Key = 22
	KeyI          Key = 23
	KeyO          Key = 24
	KeyP          Key = 25
	KeyEnter      Key = 28
	KeyLeftCtrl   Key = 29
	KeyA          Key = 30
	KeyS          Key = 31
	KeyD          Key = 32
	KeyF          Key = 33
	KeyG          Key = 34
	KeyH          Key = 35
	KeyJ          Key = 36
	KeyK          Key = 37
	KeyL          Key = 38
	KeyLeftShift  Key = 42
	KeyZ          Key = 44
	KeyX          Key = 45
	KeyC          Key = 46
	KeyV          Key = 47
	KeyB          Key = 48
	KeyN          Key = 49
	KeyM          Key = 50
	KeyRightShift Key = 54
	KeyLeftAlt    Key = 56
	KeySpace      Key = 57
	KeyF1         Key = 59
	KeyF2         Key = 60
	KeyF3         Key = 61
	KeyF4         Key = 62
	KeyF5         Key = 63
	KeyF6         Key = 64
	KeyF7         Key = 65
	KeyF8         Key = 66
	KeyF9         Key = 67
	KeyF10        Key = 68
	KeyF11        Key = 87
	KeyF12        Key = 88
	KeyRightCtrl  Key = 97
	KeyRightAlt   Key = 100
	KeyLeftMeta   Key = 125
	KeyRightMeta  Key = 126
)

var modifierNames = map[string]Key{
	"alt":         KeyLeftAlt,
	"left_alt":    KeyLeftAlt,
	"right_alt":   KeyRightAlt,
	"altgr":       KeyRightAlt,
	"shift":       KeyLeftShift,
	"left_shift":  KeyLeftShift,
	"right_shift": KeyRightShift,
	"ctrl":        KeyLeftCtrl,
	"control":     KeyLeftCtrl,
	"left_ctrl":   KeyLeftCtrl,
	"right_ctrl":  KeyRightCtrl,
	"super":       KeyLeftMeta,
	"meta":        KeyLeftMeta,
	"win":         KeyLeftMeta,
	"left_meta":   KeyLeftMeta,
	"right_meta":  KeyRightMeta,
}

var triggerNames = map[string]Key{
	"A": KeyA, "B": KeyB, "C": KeyC, "D": KeyD, "E": KeyE, "F": KeyF,
	"G": KeyG, "H": KeyH, "I": KeyI, "J": KeyJ, "K": KeyK, "L": KeyL,
	"M": KeyM, "N": KeyN, "O": KeyO, "P": KeyP, "Q": KeyQ, "R": KeyR,
	"S": KeyS, "T": KeyT, "U": KeyU, "V": KeyV, "W": KeyW, "X": KeyX,
	"Y": KeyY, "Z": KeyZ,
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"SPACE": KeySpace, "ENTER": KeyEnter, "RETURN": KeyEnter,
	"ESCAPE": KeyEsc, "ESC": KeyEsc, "TAB": KeyTab, "BACKSPACE": KeyBackspace,
	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4, "F5": KeyF5,
	"F6": KeyF6, "F7": KeyF7, "F8": KeyF8, "F9": KeyF9, "F10": KeyF10,
	"F11": KeyF11, "F12": KeyF12,
}

// parseModifier resolves a modifier name to its key code. Names are
// case-insensitive; unknown names resolve to false and are dropped by the
// caller.
func parseModifier(name string) (Key, bool) {
	k, ok := modifierNames[strings.ToLower(name)]
	return k, ok
}

// parseTrigger resolves a trigger key name, case-insensitively.
func parseTrigger(name string) (Key, bool) {
	k, ok := triggerNames[strings.ToUpper(name)]
	return k, ok
}
