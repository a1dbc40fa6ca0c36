//go:build !ebiten

package view

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/sim"
)

// Run reports that the window requires the ebiten build tag.
func Run(*sim.Loop, *Frame, int) error {
	return errors.New("[Run] the window requires building with -tags ebiten")
}

// Available reports whether this build can open a window.
func Available() bool { return false }
