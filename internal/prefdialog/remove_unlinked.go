package prefdialog

import "github.com/llehouerou/keyvault/internal/resources"

// KeyRemoveUnlinkedData is the settings key of the remove-unlinked-data entry.
const KeyRemoveUnlinkedData = "remove_unlinked"

// NewRemoveUnlinkedData creates the dialog that removes attachments no entry
// links to.
func NewRemoveUnlinkedData(key string, opts ...Option) (*Dialog, error) {
	return New(
		NewArgs(key),
		ExplanationFunc(removeUnlinkedExplanation),
		ConfirmFunc(removeUnlinkedData),
		opts...,
	)
}

func removeUnlinkedExplanation(s Strings) string {
	return s.String(resources.WarningRemoveUnlinkedAttachment) +
		"\n\n" +
		s.String(resources.WarningSureRemoveData)
}

func removeUnlinkedData(db Database) error {
	return db.RemoveUnlinkedData()
}
