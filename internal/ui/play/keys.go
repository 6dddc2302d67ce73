package play

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding; per-state subsets feed the help view.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Difficulty key.Binding
	Count      key.Binding
	Start      key.Binding
	Select     key.Binding
	Advance    key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle category")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Count:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "question count")),
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Select:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"), key.WithHelp("1-4/a-d", "choose")),
		Advance:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "advance")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// stateHelp adapts a binding list to help.KeyMap.
type stateHelp []key.Binding

func (h stateHelp) ShortHelp() []key.Binding { return h }

func (h stateHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

// optionForKey maps 1-4 and a-d to an option index.
func optionForKey(value string) (int, bool) {
	if len(value) != 1 {
		return 0, false
	}
	switch c := value[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}
