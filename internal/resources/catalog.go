// Package resources resolves user-facing strings by stable identifier.
//
// Defaults are embedded; a TOML override file (for translations or wording
// changes) is layered on top, last one wins.
package resources

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed strings.toml
var embedded []byte

// String identifiers.
const (
	SettingsTitle  = "settings_title"
	DialogPositive = "dialog_positive"
	DialogNegative = "dialog_negative"

	WarningRemoveUnlinkedAttachment = "warning_remove_unlinked_attachment"
	WarningSureRemoveData           = "warning_sure_remove_data"

	StatusUnlinkedRemoved = "status_unlinked_removed"
	StatusUnlinkedStaged  = "status_unlinked_staged"
	StatusCancelled       = "status_cancelled"
	StatusNoDatabase      = "status_no_database"
	StatusSaved           = "status_saved"

	StatsEntries     = "stats_entries"
	StatsAttachments = "stats_attachments"
	StatsUnlinked    = "stats_unlinked"
	StatsPending     = "stats_pending"
)

// PreferenceTitle returns the identifier of a preference's title.
func PreferenceTitle(key string) string {
	return "preference." + key + ".title"
}

// PreferenceSummary returns the identifier of a preference's summary line.
func PreferenceSummary(key string) string {
	return "preference." + key + ".summary"
}

// Catalog is a loaded set of strings.
type Catalog struct {
	k *koanf.Koanf
}

// Load reads the embedded defaults and then each override file in order.
// Missing override files are an error; callers decide whether to pass them.
func Load(overrides ...string) (*Catalog, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(embedded), toml.Parser()); err != nil {
		return nil, fmt.Errorf("embedded strings: %w", err)
	}

	for _, path := range overrides {
		if path == "" {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("strings file %s: %w", path, err)
		}
	}

	return &Catalog{k: k}, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the catalog built from the embedded strings only.
func Default() *Catalog {
	return defaultCatalog()
}

// String returns the message for id, or id itself when it is not defined.
func (c *Catalog) String(id string) string {
	if s := c.k.String(id); s != "" {
		return s
	}
	return id
}

// Has reports whether id is defined.
func (c *Catalog) Has(id string) bool {
	return c.k.String(id) != ""
}

// Format resolves id and applies fmt.Sprintf with args.
func (c *Catalog) Format(id string, args ...any) string {
	return fmt.Sprintf(c.String(id), args...)
}
