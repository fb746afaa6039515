package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Edit      key.Binding
	Commit    key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Percent   key.Binding
	Pixel     key.Binding
	Toggle    key.Binding
	HoverPrev key.Binding
	HoverNext key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Edit:      key.NewBinding(key.WithKeys("tab", "enter", "i"), key.WithHelp("tab", "edit")),
		Commit:    key.NewBinding(key.WithKeys("tab", "enter", "esc"), key.WithHelp("enter", "commit")),
		Inc:       key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+", "step up")),
		Dec:       key.NewBinding(key.WithKeys("-", "_", "left"), key.WithHelp("-", "step down")),
		Percent:   key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Pixel:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pixels")),
		Toggle:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "toggle unit")),
		HoverPrev: key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "hover")),
		HoverNext: key.NewBinding(key.WithKeys("l")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Inc, k.Dec, k.Toggle, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Commit, k.Inc, k.Dec},
		{k.Percent, k.Pixel, k.Toggle},
		{k.HoverPrev, k.Copy, k.Help, k.Quit},
	}
}

// editingHelp is shown while the field has focus.
type editingHelp struct{ keyMap }

func (k editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))}
}
