package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tommynicol/hexflap/internal/core"
)

// ActionBinding ties a key binding to the game action it produces.
type ActionBinding struct {
	Binding key.Binding
	Action  core.Action
}

// KeyMap translates Bubble Tea key messages to game actions.
// Platform keys such as pause and mute never reach the session.
type KeyMap struct {
	Actions    []ActionBinding
	Pause      key.Binding
	Screenshot key.Binding
	Mute       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(k.Actions)+2)
	for _, a := range k.Actions {
		bindings = append(bindings, a.Binding)
	}
	return append(bindings, k.Pause, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	controls := make([]key.Binding, 0, len(k.Actions))
	for _, a := range k.Actions {
		controls = append(controls, a.Binding)
	}
	return [][]key.Binding{
		controls,
		{k.Pause, k.Mute, k.Screenshot, k.Quit},
	}
}

// Action maps a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range k.Actions {
		if key.Matches(msg, a.Binding) {
			return a.Action
		}
	}
	return core.ActionNone
}

func platformKeys() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FlapKeyMap returns the bindings for HEX FLAP.
func FlapKeyMap() KeyMap {
	k := platformKeys()
	k.Actions = []ActionBinding{
		{
			Binding: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
			Action:  core.ActionStart,
		},
		{
			Binding: key.NewBinding(key.WithKeys(" ", "up", "w"), key.WithHelp("space", "flap")),
			Action:  core.ActionJump,
		},
		{
			Binding: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "menu")),
			Action:  core.ActionReset,
		},
	}
	return k
}

// FlightKeyMap returns the bindings for the flight simulator.
func FlightKeyMap() KeyMap {
	k := platformKeys()
	k.Actions = []ActionBinding{
		{
			Binding: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "take off")),
			Action:  core.ActionStart,
		},
		{
			Binding: key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "throttle")),
			Action:  core.ActionForward,
		},
		{
			Binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "brake")),
			Action:  core.ActionBack,
		},
		{
			Binding: key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/d", "turn")),
			Action:  core.ActionLeft,
		},
		{
			Binding: key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d", "turn right")),
			Action:  core.ActionRight,
		},
		{
			Binding: key.NewBinding(key.WithKeys(" ", "up"), key.WithHelp("space", "climb")),
			Action:  core.ActionJump,
		},
		{
			Binding: key.NewBinding(key.WithKeys("x", "down"), key.WithHelp("x", "descend")),
			Action:  core.ActionDown,
		},
		{
			Binding: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "menu")),
			Action:  core.ActionReset,
		},
	}
	return k
}

// KeyMapFor returns the bindings for a game ID. Unknown games get the
// HEX FLAP bindings.
func KeyMapFor(gameID string) KeyMap {
	if gameID == "flight" {
		return FlightKeyMap()
	}
	return FlapKeyMap()
}
