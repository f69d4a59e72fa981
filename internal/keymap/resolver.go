package keymap

import "slices"

// Resolver maps key strings to actions. When two contexts bind the same key
// to different actions, the later binding wins.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = dedupe(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action, in declaration order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes repeated keys, keeping first occurrences in order.
func dedupe(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
