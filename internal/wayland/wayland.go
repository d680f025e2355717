// Package wayland checks that the process runs inside a Wayland session.
package wayland

import (
	"errors"
	"fmt"
)

// DisplayEnv is the variable a Wayland compositor exports to its clients.
const DisplayEnv = "WAYLAND_DISPLAY"

// ErrNotWayland is returned when DisplayEnv is absent.
var ErrNotWayland = errors.New("not running under Wayland")

// Require fails unless lookup reports DisplayEnv as set. An empty value
// counts as set, matching how clients connect to the default socket.
func Require(lookup func(string) (string, bool)) error {
	if _, ok := lookup(DisplayEnv); !ok {
		return fmt.Errorf("%w: $%s is not set (slurp and grim need a wlroots compositor such as Hyprland or Sway)", ErrNotWayland, DisplayEnv)
	}
	return nil
}
