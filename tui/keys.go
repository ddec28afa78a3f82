package tui

import "github.com/charmbracelet/bubbles/key"

// Key builds a binding whose help entry shows its first key.
func Key(help string, keyboardKey ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keyboardKey...), key.WithHelp(keyboardKey[0], help))
}

// keyMap holds the command bindings. Lowercase letters and digits belong to
// the note tables, so commands live on uppercase keys, punctuation, and the
// non-printing keys.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Delete    key.Binding
	Backspace key.Binding
	InstUp    key.Binding
	InstDown  key.Binding
	Export    key.Binding
	Play      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        Key("step up", "up"),
		Down:      Key("step down", "down"),
		Left:      Key("channel left", "left"),
		Right:     Key("channel right", "right"),
		Delete:    Key("delete step", "delete", "X"),
		Backspace: Key("drop last step", "backspace"),
		InstUp:    Key("instrument +", "+", "="),
		InstDown:  Key("instrument -", "-", "_"),
		Export:    Key("write midi", "W"),
		Play:      Key("write + play", "P"),
		Help:      Key("help", "?"),
		Quit:      Key("quit", "Q", "ctrl+c"),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Export, k.Play, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Delete, k.Backspace, k.InstUp, k.InstDown},
		{k.Export, k.Play, k.Help, k.Quit},
	}
}
