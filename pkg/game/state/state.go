package state

import (
	"github.com/zyedidia/generic/mapset"
)

// Layer is an overlay of the starmap that the toggle buttons switch.
type Layer int

// Map layers
const (
	LayerRadars Layer = iota
	LayerFleets
	LayerStars
	LayerGrids
)

func (l Layer) String() string {
	switch l {
	case LayerRadars:
		return "radars"
	case LayerFleets:
		return "fleets"
	case LayerStars:
		return "stars"
	case LayerGrids:
		return "grids"
	default:
		return "unknown"
	}
}

// Selection is a list with a cursor, as shown in the colony and equipment
// panels.
type Selection struct {
	Items []string
	Index int
}

// Current returns the selected entry, or "" for an empty list.
func (s *Selection) Current() string {
	if s.Index < 0 || s.Index >= len(s.Items) {
		return ""
	}
	return s.Items[s.Index]
}

// HasPrev reports whether Prev would move.
func (s *Selection) HasPrev() bool { return s.Index > 0 }

// HasNext reports whether Next would move.
func (s *Selection) HasNext() bool { return s.Index < len(s.Items)-1 }

// Prev moves the cursor back one entry.
func (s *Selection) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.Index--
	return true
}

// Next moves the cursor forward one entry.
func (s *Selection) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.Index++
	return true
}

// Game is the slice of game state the map screen shows and edits
type Game struct {
	Colonies  Selection
	Equipment Selection

	Layers mapset.Set[Layer]

	Messages []string

	// ShipSelected switches the bottom panel to ship commands
	ShipSelected bool
}

// NewGame creates a game with the default layers on
func NewGame() *Game {
	g := &Game{
		Layers:   mapset.New[Layer](),
		Messages: make([]string, 0),
	}
	g.Layers.Put(LayerStars)
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ToggleLayer flips a layer and returns its new state
func (g *Game) ToggleLayer(l Layer) bool {
	if g.Layers.Has(l) {
		g.Layers.Remove(l)
		return false
	}
	g.Layers.Put(l)
	return true
}

// LayerOn checks if a layer is shown
func (g *Game) LayerOn(l Layer) bool {
	return g.Layers.Has(l)
}
