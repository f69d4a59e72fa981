// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// FooterHeight is the space for the help line below the settings list.
	FooterHeight = 2

	// StatusHeight is the space for the status line.
	StatusHeight = 1

	// DialogMaxWidth caps the width of confirmation dialogs so long
	// explanations wrap into a readable column.
	DialogMaxWidth = 64

	// DialogPadding is the horizontal space taken by the popup border and padding.
	DialogPadding = 6
)
