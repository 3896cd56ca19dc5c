package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by the board views.
// Views read only the bindings they act on.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding
	Back      key.Binding
	Open      key.Binding
	Up        key.Binding
	Down      key.Binding

	// List
	PrevPage   key.Binding // [
	NextPage   key.Binding // ]
	PrevBlock  key.Binding // {
	NextBlock  key.Binding // }
	JumpPage   key.Binding
	Search     key.Binding
	SearchType key.Binding // tab cycles title / contents / both
	NewPost    key.Binding
	Rankings   key.Binding

	// Detail
	Comment       key.Binding
	Reply         key.Binding
	EditComment   key.Binding
	DeleteComment key.Binding
	EditPost      key.Binding
	DeletePost    key.Binding
	Like          key.Binding
	Dislike       key.Binding
	Confirm       key.Binding
	Cancel        key.Binding

	// Forms
	Submit     key.Binding
	OpenEditor key.Binding
	NextField  key.Binding

	// Recovery screen
	Reload key.Binding
	Home   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next page"),
		),
		PrevBlock: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "prev block"),
		),
		NextBlock: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "next block"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SearchType: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "search in"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new post"),
		),
		Rankings: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rankings"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Reply: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "reply"),
		),
		EditComment: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit comment"),
		),
		DeleteComment: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete comment"),
		),
		EditPost: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit post"),
		),
		DeletePost: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete post"),
		),
		Like: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "like"),
		),
		Dislike: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "dislike"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		OpenEditor: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "$EDITOR"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
	}
}

// HelpLine renders "key: desc" pairs separated by bullets.
func HelpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if out != "" {
			out += " • "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
