package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "settings", "confirm"
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionSave, []string{"ctrl+s"}, "save", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},

	// Settings list
	{ActionMoveUp, []string{"k", "up"}, "up", "settings"},
	{ActionMoveDown, []string{"j", "down"}, "down", "settings"},
	{ActionJumpStart, []string{"g", "home"}, "first", "settings"},
	{ActionJumpEnd, []string{"G", "end"}, "last", "settings"},
	{ActionSelect, []string{"enter"}, "open", "settings"},

	// Confirmation dialog
	{ActionConfirm, []string{"enter", "y", "Y"}, "confirm", "confirm"},
	{ActionCancel, []string{"esc", "n", "N", "ctrl+c"}, "cancel", "confirm"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of the given contexts, in context order.
// Keys repeat across contexts, so resolvers are built per screen.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, ctx := range contexts {
		result = append(result, ByContext(ctx)...)
	}
	return result
}

// Help converts a binding into a bubbles key.Binding for help rendering.
func (b Binding) Help() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

// HelpBindings returns the help entries for the given contexts in order.
func HelpBindings(contexts ...string) []key.Binding {
	var result []key.Binding
	for _, b := range ForContexts(contexts...) {
		result = append(result, b.Help())
	}
	return result
}
