//go:build !linux && !darwin

package clip

import (
	"errors"

	"github.com/olajoao/sticky-one/internal/entry"
)

var errUnsupported = errors.New("clipboard is not supported on this platform")

// System is a stub backend for platforms without clipboard support.
type System struct{}

// New returns the platform clipboard backend.
func New() System { return System{} }

// CheckTools always fails on unsupported platforms.
func CheckTools() error { return errUnsupported }

func (System) Read() (Content, error) { return Content{}, errUnsupported }

func (System) WriteEntry(*entry.Entry) error { return errUnsupported }
