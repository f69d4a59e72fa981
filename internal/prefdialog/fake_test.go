package prefdialog

import "errors"

var errFake = errors.New("fake failure")

// fakeDatabase records calls in order.
type fakeDatabase struct {
	calls     []string
	removeErr error
	saveErr   error
}

func (f *fakeDatabase) RemoveUnlinkedData() error {
	f.calls = append(f.calls, "remove")
	return f.removeErr
}

func (f *fakeDatabase) Save() error {
	f.calls = append(f.calls, "save")
	return f.saveErr
}

func (f *fakeDatabase) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeStrings resolves from a map, falling back to the id.
type fakeStrings map[string]string

func (f fakeStrings) String(id string) string {
	if s, ok := f[id]; ok {
		return s
	}
	return id
}
