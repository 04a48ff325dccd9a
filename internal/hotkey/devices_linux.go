//go:build linux

package hotkey

import (
	"encoding/binary"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01 // EV_KEY event type

	keyValueRelease = 0
	keyValuePress   = 1
)

// inputEvent mirrors struct input_event from linux/input.h. unix.Timeval
// carries the arch-correct layout of the leading timeval.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// startDeviceReaders opens every keyboard-capable device under /dev/input and
// starts a reader goroutine per device, all writing into events. Returns
// ErrNoKeyboards when none can be opened.
func startDeviceReaders(events chan<- KeyEvent) error {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return err
	}

	var opened int
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			slog.Debug("skipping input device", "path", path, "err", err)
			continue
		}
		if !isKeyboard(f.Fd()) {
			f.Close()
			continue
		}
		opened++
		slog.Debug("watching keyboard device", "path", path)
		go readDevice(f, events)
	}

	if opened == 0 {
		return ErrNoKeyboards
	}
	return nil
}

// readDevice decodes raw input events from one device into the merged
// channel. A read error (device unplugged, revoked) ends this reader only;
// sibling devices keep running.
func readDevice(f *os.File, events chan<- KeyEvent) {
	defer f.Close()
	for {
		var ev inputEvent
		if err := binary.Read(f, binary.NativeEndian, &ev); err != nil {
			if err != io.EOF {
				slog.Warn("input device read failed", "path", f.Name(), "err", err)
			}
			return
		}
		if ev.Type != evKey {
			continue
		}
		switch ev.Value {
		case keyValuePress:
			events <- KeyEvent{Key: Key(ev.Code), Press: true}
		case keyValueRelease:
			events <- KeyEvent{Key: Key(ev.Code), Press: false}
		}
		// Auto-repeat (value 2) is ignored: the key is already held.
	}
}

// isKeyboard reports whether the device advertises the A key in its EV_KEY
// capability bitmap, the usual heuristic for "this is a keyboard".
func isKeyboard(fd uintptr) bool {
	var bits [(767 + 7) / 8]byte // KEY_MAX bits
	if err := ioctlGetKeyBits(fd, bits[:]); err != nil {
		return false
	}
	code := uint16(KeyA)
	return bits[code/8]&(1<<(code%8)) != 0
}

// ioctlGetKeyBits issues EVIOCGBIT(EV_KEY, len(buf)) on fd.
func ioctlGetKeyBits(fd uintptr, buf []byte) error {
	// _IOC(_IOC_READ, 'E', 0x20 + EV_KEY, len(buf))
	req := uintptr(uint(2)<<30 | uint(len(buf))<<16 | uint('E')<<8 | uint(0x20+evKey))
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}
