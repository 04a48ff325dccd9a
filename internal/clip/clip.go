// Package clip provides a unified interface to the system clipboard across
// platforms. Build constraints select the appropriate implementation:
//
//	clip_linux.go   — Wayland (wl-paste/wl-copy) or X11 (xclip) via shell-out
//	clip_darwin.go  — macOS via golang.design/x/clipboard
//	clip_other.go   — headless stub
//
// Only plain text and PNG images are supported; image payloads are validated
// and capped at MaxImageBytes.
package clip

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olajoao/sticky-one/internal/entry"
)

// MaxImageBytes caps image captures at 5 MiB. Oversized reads fail with
// ImageTooLargeError, which the daemon skips without treating it as a fault.
const MaxImageBytes = 5 * 1024 * 1024

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// ErrNotPNG reports a clipboard image that is not in the one supported
// encoding.
var ErrNotPNG = errors.New("clipboard image is not a valid PNG")

// ImageTooLargeError reports an image payload over MaxImageBytes.
type ImageTooLargeError struct {
	Size int
}

func (e ImageTooLargeError) Error() string {
	return fmt.Sprintf("image too large: %d bytes (max %d)", e.Size, MaxImageBytes)
}

// MissingToolError reports that a required clipboard utility is not on PATH.
type MissingToolError struct {
	Tool string
	Hint string
}

func (e MissingToolError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("required clipboard tool not found: %s", e.Tool)
	}
	return fmt.Sprintf("required clipboard tool not found: %s (%s)", e.Tool, e.Hint)
}

// Content is one clipboard read: text, a PNG image, or nothing.
type Content struct {
	Text  string
	Image []byte
}

// IsEmpty reports whether the read found nothing usable.
func (c Content) IsEmpty() bool {
	return c.Text == "" && len(c.Image) == 0
}

// Entry converts the content into an unstored history entry, or nil when
// empty.
func (c Content) Entry() *entry.Entry {
	switch {
	case len(c.Image) > 0:
		return entry.NewImage(c.Image)
	case c.Text != "":
		return entry.NewText(c.Text)
	}
	return nil
}

// Reader is the read half of the adapter; the daemon loop depends on this
// interface so tests can substitute a fake clipboard.
type Reader interface {
	Read() (Content, error)
}

// checkImage enforces the size cap and PNG magic shared by all backends.
func checkImage(data []byte) error {
	if len(data) > MaxImageBytes {
		return ImageTooLargeError{Size: len(data)}
	}
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		return ErrNotPNG
	}
	return nil
}
