//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpRemoveUnlinked,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpRemoveUnlinked,
			err:      errors.New("database is locked"),
			expected: "Failed to remove unlinked data: database is locked",
		},
		{
			name:     "save operation",
			op:       OpDatabaseSave,
			err:      errors.New("disk full"),
			expected: "Failed to save database: disk full",
		},
		{
			name:     "restore operation",
			op:       OpDialogRestore,
			err:      errors.New("unknown preference"),
			expected: "Failed to restore settings dialog: unknown preference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDialogOpen,
			context:  "remove_unlinked",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpDialogOpen,
			context:  "remove_unlinked",
			err:      errors.New("not registered"),
			expected: "Failed to open settings dialog 'remove_unlinked': not registered",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpDatabaseOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
