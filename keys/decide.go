package keys

import "github.com/charmbracelet/bubbles/key"

type binding struct {
	key.Binding
	action Action
}

func bind(action Action, help string, keys ...string) binding {
	return binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		action:  action,
	}
}

var (
	ctrlBindings = []binding{
		bind(First, "first", "ctrl+a"),
		bind(ActionAbort, "abort", "ctrl+c", "ctrl+d"),
		bind(Last, "last", "ctrl+e"),
		bind(Reset, "reset", "ctrl+g"),
	}

	// vi-style movement, only where the prompt is a navigable list
	menuBindings = []binding{
		bind(ActionDown, "down", "j"),
		bind(ActionUp, "up", "k"),
	}

	plainBindings = []binding{
		bind(Submit, "submit", "return", "enter"),
		bind(ActionDelete, "delete", "backspace"),
		bind(DeleteForward, "delete forward", "delete"),
		bind(ActionAbort, "abort", "abort"),
		bind(Exit, "exit", "esc"),
		bind(Next, "next", "tab"),
		bind(PrevPage, "previous page", "pgup"),
		bind(NextPage, "next page", "pgdown"),
		bind(ActionHome, "home", "home"),
		bind(ActionEnd, "end", "end"),
		bind(ActionUp, "up", "up"),
		bind(ActionDown, "down", "down"),
		bind(ActionLeft, "left", "left"),
		bind(ActionRight, "right", "right"),
	}
)

// Decide maps k to the action a prompt should take. The boolean is false
// when the key carries no action and should be treated as literal input.
// menu enables the j/k bindings used by navigable lists.
func Decide(k Key, menu bool) (Action, bool) {
	if k.Meta && k.Name != Escape {
		return 0, false
	}
	if k.Ctrl {
		return lookup(k, ctrlBindings)
	}
	if menu {
		if action, ok := lookup(k, menuBindings); ok {
			return action, true
		}
	}
	return lookup(k, plainBindings)
}

func lookup(k Key, bindings []binding) (Action, bool) {
	for _, b := range bindings {
		if key.Matches(k, b.Binding) {
			return b.action, true
		}
	}
	return 0, false
}
