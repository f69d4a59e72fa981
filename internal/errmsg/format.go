// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Database operations
	OpDatabaseOpen  Op = "open database"
	OpDatabaseSave  Op = "save database"
	OpDatabaseStats Op = "read database statistics"

	// Attachment maintenance
	OpRemoveUnlinked  Op = "remove unlinked data"
	OpListAttachments Op = "list attachments"

	// Settings dialogs
	OpDialogOpen    Op = "open settings dialog"
	OpDialogRestore Op = "restore settings dialog"

	// Initialization
	OpConfigLoad  Op = "load configuration"
	OpStringsLoad Op = "load strings"
	OpStateOpen   Op = "open application state"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
