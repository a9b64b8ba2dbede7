package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its style
// A zero Rune is drawn as a space
type Cell struct {
	Rune  rune
	Style tcell.Style
}
