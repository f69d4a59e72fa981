package prefdialog

import (
	"encoding/json"
	"maps"
)

// ArgKey is the argument name under which a dialog stores its preference key.
const ArgKey = "key"

// Args is the restorable argument set of a dialog. The host persists it
// across a teardown and hands it back to Registry.Restore.
type Args map[string]string

// NewArgs returns an argument set holding only the preference key.
func NewArgs(key string) Args {
	return Args{ArgKey: key}
}

// Key returns the preference key, or "" when the set has none.
func (a Args) Key() string {
	return a[ArgKey]
}

// Clone returns an independent copy.
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Encode serializes the argument set for storage.
func (a Args) Encode() (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeArgs parses an argument set produced by Encode.
func DecodeArgs(s string) (Args, error) {
	var a Args
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil, err
	}
	return a, nil
}
