//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	TPS   int
	Scale int

	Host HostConfig
}

func RunWindow(_ WindowConfig, _ AppFunc) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
