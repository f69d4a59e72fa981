package prefdialog

// Strings resolves user-facing messages by identifier.
// *resources.Catalog satisfies it.
type Strings interface {
	String(id string) string
}

// Database is the part of the password database a save dialog borrows
// for the duration of one Close call.
type Database interface {
	RemoveUnlinkedData() error
	Save() error
}

// ExplanationProvider composes the text shown in the dialog body.
type ExplanationProvider interface {
	Explanation(s Strings) string
}

// ExplanationFunc adapts a function to ExplanationProvider.
type ExplanationFunc func(s Strings) string

// Explanation implements ExplanationProvider.
func (f ExplanationFunc) Explanation(s Strings) string { return f(s) }

// ConfirmAction is the mutation run after a positive result.
type ConfirmAction interface {
	Confirm(db Database) error
}

// ConfirmFunc adapts a function to ConfirmAction.
type ConfirmFunc func(db Database) error

// Confirm implements ConfirmAction.
func (f ConfirmFunc) Confirm(db Database) error { return f(db) }
