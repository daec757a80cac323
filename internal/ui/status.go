// Package ui holds the window overlay that reports the session state.
package ui

import (
	"fmt"

	"lifeview/internal/session"
)

// Help lists the key bindings shown under the status line.
const Help = "space run/pause  n step  c clear  r random  q quit"

// StatusText formats the first HUD line.
func StatusText(st session.Status) string {
	return fmt.Sprintf("%s  gen %d  live %d", st.Label(), st.Generation, st.LiveCells)
}
