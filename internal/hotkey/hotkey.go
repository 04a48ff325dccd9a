// Package hotkey detects a global key combo by reading kernel input devices
// directly, so it works on X11 and Wayland alike. One goroutine per keyboard
// device funnels press/release events into a single merged channel; a match
// loop tracks the held-key set and fires when the trigger key is pressed
// while every configured modifier is down.
package hotkey

import (
	"errors"
	"fmt"
)

// ErrNoKeyboards is returned when no readable keyboard device is found.
// This is usually a permissions problem (the user is not in the input group).
var ErrNoKeyboards = errors.New("no keyboard devices found (is the user in the input group?)")

// Combo is an immutable hotkey configuration: a non-empty modifier set plus
// exactly one trigger key.
type Combo struct {
	Modifiers map[Key]struct{}
	Trigger   Key
}

// ParseCombo resolves configured key names into a Combo. Unknown modifier
// names are dropped; an unknown trigger name or an empty resolved modifier
// set is a configuration error.
func ParseCombo(modifiers []string, trigger string) (Combo, error) {
	key, ok := parseTrigger(trigger)
	if !ok {
		return Combo{}, fmt.Errorf("invalid trigger key: %q", trigger)
	}

	mods := make(map[Key]struct{}, len(modifiers))
	for _, name := range modifiers {
		if k, ok := parseModifier(name); ok {
			mods[k] = struct{}{}
		}
	}
	if len(mods) == 0 {
		return Combo{}, errors.New("no valid hotkey modifiers configured")
	}

	return Combo{Modifiers: mods, Trigger: key}, nil
}

// KeyEvent is a single press or release observed on any monitored device.
type KeyEvent struct {
	Key   Key
	Press bool
}

// Detector matches a Combo against the merged key-event stream.
type Detector struct {
	combo Combo
}

// New returns a Detector for the given combo.
func New(combo Combo) *Detector {
	return &Detector{combo: combo}
}

// Listen discovers keyboard devices, starts one reader goroutine per device,
// and consumes the merged event stream, signalling fired on every combo
// match. It blocks for the daemon's lifetime and returns only on a fatal
// condition such as no usable devices. Individual device failures end that
// device's reader without affecting the rest.
func (d *Detector) Listen(fired chan<- struct{}) error {
	events := make(chan KeyEvent, 128)
	if err := startDeviceReaders(events); err != nil {
		return err
	}
	d.watch(events, fired)
	return nil
}

// watch runs the combo state machine over events until the channel closes.
// Releasing a modifier before the trigger press cancels that attempt; the
// modifier-then-trigger order is required.
func (d *Detector) watch(events <-chan KeyEvent, fired chan<- struct{}) {
	pressed := make(map[Key]struct{})
	for ev := range events {
		if ev.Press {
			pressed[ev.Key] = struct{}{}
		} else {
			delete(pressed, ev.Key)
		}

		if ev.Press && ev.Key == d.combo.Trigger && d.modifiersHeld(pressed) {
			select {
			case fired <- struct{}{}:
			default:
				// A fire is already pending; collapsing repeats is fine.
			}
		}
	}
}

func (d *Detector) modifiersHeld(pressed map[Key]struct{}) bool {
	for m := range d.combo.Modifiers {
		if _, ok := pressed[m]; !ok {
			return false
		}
	}
	return true
}
