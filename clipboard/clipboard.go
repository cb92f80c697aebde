// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/miraflynn/textcompare"
)

// ErrUnavailable is returned when no supported clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// Ensure Command implements the Clipboard interface.
var _ textcompare.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external program.
type Command struct {
	Name string
	Args []string
}

// NewPBCopy returns a clipboard using the macOS pbcopy command.
func NewPBCopy() *Command {
	return &Command{Name: "pbcopy"}
}

// NewXClip returns a clipboard using xclip on X11.
func NewXClip() *Command {
	return &Command{Name: "xclip", Args: []string{"-selection", "clipboard"}}
}

// NewWLCopy returns a clipboard using wl-copy on Wayland.
func NewWLCopy() *Command {
	return &Command{Name: "wl-copy"}
}

// Detect returns the first clipboard command found on PATH for the current
// platform.
func Detect() (*Command, error) {
	candidates := []*Command{NewWLCopy(), NewXClip()}
	if runtime.GOOS == "darwin" {
		candidates = []*Command{NewPBCopy()}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.Name); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnavailable
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", c.Name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
