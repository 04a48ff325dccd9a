//go:build !linux

package hotkey

// Hotkey capture reads kernel input devices and is Linux-only. Other
// platforms report no devices, which the daemon treats as a startup failure.
func startDeviceReaders(chan<- KeyEvent) error {
	return ErrNoKeyboards
}
