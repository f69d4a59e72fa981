package settings

import "github.com/llehouerou/keyvault/internal/ui/action"

// OpenDialog requests the host to open the dialog for a preference.
type OpenDialog struct {
	Key string
}

// ActionType implements action.Action.
func (a OpenDialog) ActionType() string { return "settings.open_dialog" }

// SelectionChanged reports the preference under the cursor.
type SelectionChanged struct {
	Key string
}

// ActionType implements action.Action.
func (a SelectionChanged) ActionType() string { return "settings.selection_changed" }

// ActionMsg creates an action.Msg for a settings action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "settings", Action: a}
}
