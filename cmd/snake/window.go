//go:build window

package main

// The desktop frontend needs cgo and a display, so it is opt-in.
import _ "github.com/vovakirdan/tui-snake/internal/platform/window"
