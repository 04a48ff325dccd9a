//go:build linux

package clip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/olajoao/sticky-one/internal/entry"
)

// System is the Linux clipboard backend. It shells out to wl-paste/wl-copy
// under Wayland and xclip under X11, selected per call so a session change
// does not require a restart.
type System struct{}

// New returns the platform clipboard backend.
func New() System { return System{} }

func isWayland() bool {
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// CheckTools verifies the required clipboard utilities are installed.
func CheckTools() error {
	if isWayland() {
		for _, tool := range []string{"wl-paste", "wl-copy"} {
			if _, err := exec.LookPath(tool); err != nil {
				return MissingToolError{Tool: tool, Hint: "install wl-clipboard"}
			}
		}
		return nil
	}
	if _, err := exec.LookPath("xclip"); err != nil {
		return MissingToolError{Tool: "xclip"}
	}
	return nil
}

// Read returns the current clipboard contents. Images are probed before text
// so binary payloads are never misread as text.
func (System) Read() (Content, error) {
	var imageCmd, textCmd *exec.Cmd
	if isWayland() {
		imageCmd = exec.Command("wl-paste", "--no-newline", "--type", "image/png")
		textCmd = exec.Command("wl-paste", "--no-newline", "--type", "text/plain")
	} else {
		imageCmd = exec.Command("xclip", "-selection", "clipboard", "-t", "image/png", "-o")
		textCmd = exec.Command("xclip", "-selection", "clipboard", "-o")
	}

	if data, err := imageCmd.Output(); err == nil && len(data) > 0 {
		if err := checkImage(data); err != nil {
			return Content{}, err
		}
		return Content{Image: data}, nil
	}

	data, err := textCmd.Output()
	if err != nil || len(data) == 0 {
		// The paste tools exit non-zero on an empty clipboard; that is not
		// an error for the poll loop.
		return Content{}, nil
	}
	if !bytes.ContainsRune(data, 0) {
		return Content{Text: string(data)}, nil
	}
	return Content{}, nil
}

// WriteEntry puts the entry's payload back on the system clipboard.
func (System) WriteEntry(e *entry.Entry) error {
	if e.Type == entry.TypeImage {
		return pipeTo(e.ImageData, copyImageCmd())
	}
	return pipeTo([]byte(e.Content), copyTextCmd())
}

func copyTextCmd() *exec.Cmd {
	if isWayland() {
		return exec.Command("wl-copy")
	}
	return exec.Command("xclip", "-selection", "clipboard")
}

func copyImageCmd() *exec.Cmd {
	if isWayland() {
		return exec.Command("wl-copy", "--type", "image/png")
	}
	return exec.Command("xclip", "-selection", "clipboard", "-t", "image/png")
}

func pipeTo(data []byte, cmd *exec.Cmd) error {
	cmd.Stdin = bytes.NewReader(data)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard write via %s: %w", cmd.Path, err)
	}
	return nil
}
