package vterm

import "github.com/ansiterm/vterm/internal/vstate"

// MouseButton identifies which button changed state in a
// MouseButtonEvent call.
type MouseButton = vstate.MouseButton

const (
	MouseButtonLeft   = vstate.MouseButtonLeft
	MouseButtonMiddle = vstate.MouseButtonMiddle
	MouseButtonRight  = vstate.MouseButtonRight
	MouseButtonNone   = vstate.MouseButtonNone
	MouseWheelUp      = vstate.MouseWheelUp
	MouseWheelDown    = vstate.MouseWheelDown
)
