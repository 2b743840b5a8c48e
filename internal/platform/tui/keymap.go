package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-arcade/internal/rocket"
)

// GameKeyMap holds the platform-level key bindings. Movement and firing are
// bound inside the input controller; these are the keys the UI itself owns.
type GameKeyMap struct {
	Quit    key.Binding
	Restart key.Binding
}

// DefaultKeyMap returns the standard platform bindings.
func DefaultKeyMap() GameKeyMap {
	return GameKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		// Restart is help-only: once a run ends, any key not bound to
		// quit starts the next one.
		Restart: key.NewBinding(
			key.WithHelp("any key", "restart"),
		),
	}
}

// translateKey converts a Bubble Tea key message into a game key.
// Returns false for keys the simulation does not understand.
func translateKey(msg tea.KeyMsg) (rocket.Key, bool) {
	switch s := msg.String(); s {
	case " ":
		return "space", true
	case "up", "down", "left", "right", "w", "a", "s", "d":
		return rocket.Key(s), true
	}
	return "", false
}
