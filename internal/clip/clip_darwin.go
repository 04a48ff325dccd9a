//go:build darwin

package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/olajoao/sticky-one/internal/entry"
)

// System is the macOS clipboard backend, backed by golang.design/x/clipboard
// (no external tools required).
type System struct{}

var initOnce sync.Once
var initErr error

func initClipboard() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return initErr
}

// New returns the platform clipboard backend.
func New() System { return System{} }

// CheckTools verifies the native clipboard is usable.
func CheckTools() error {
	if err := initClipboard(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}

// Read returns the current clipboard contents, preferring images over text.
func (System) Read() (Content, error) {
	if err := initClipboard(); err != nil {
		return Content{}, fmt.Errorf("clipboard unavailable: %w", err)
	}
	if data := clipboard.Read(clipboard.FmtImage); len(data) > 0 {
		if err := checkImage(data); err != nil {
			return Content{}, err
		}
		return Content{Image: data}, nil
	}
	if data := clipboard.Read(clipboard.FmtText); len(data) > 0 {
		return Content{Text: string(data)}, nil
	}
	return Content{}, nil
}

// WriteEntry puts the entry's payload back on the system clipboard.
func (System) WriteEntry(e *entry.Entry) error {
	if err := initClipboard(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	if e.Type == entry.TypeImage {
		clipboard.Write(clipboard.FmtImage, e.ImageData)
		return nil
	}
	clipboard.Write(clipboard.FmtText, []byte(e.Content))
	return nil
}
