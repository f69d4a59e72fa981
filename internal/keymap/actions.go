// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionSave Action = "save"
	ActionHelp Action = "help"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - open the preference dialog

	// Confirmation dialog
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)
