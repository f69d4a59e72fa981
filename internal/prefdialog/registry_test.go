package prefdialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateUnknown(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Create("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = r.Create("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRegistry_Keys(t *testing.T) {
	r := DefaultRegistry()
	r.Register("another", NewRemoveUnlinkedData)

	assert.Equal(t, []string{"another", KeyRemoveUnlinkedData}, r.Keys())
}

// Teardown after create and before bind: the key survives through the
// encoded argument set alone.
func TestRegistry_RestoreAfterTeardown(t *testing.T) {
	r := DefaultRegistry()
	original, err := r.Create("remove_unlinked")
	require.NoError(t, err)

	saved, err := original.Args().Encode()
	require.NoError(t, err)
	original = nil

	args, err := DecodeArgs(saved)
	require.NoError(t, err)
	restored, err := r.Restore(args)
	require.NoError(t, err)

	assert.Equal(t, "remove_unlinked", restored.Key())
	assert.Equal(t, Args{ArgKey: "remove_unlinked"}, restored.Args())
	assert.Equal(t, StateCreated, restored.State())

	db := &fakeDatabase{}
	var v View
	require.NoError(t, restored.BindView(&v))
	require.NoError(t, restored.Close(db, true))
	assert.Equal(t, []string{"remove", "save"}, db.calls)
}

func TestRegistry_RestoreMissingKey(t *testing.T) {
	_, err := DefaultRegistry().Restore(Args{})
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = DefaultRegistry().Restore(nil)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestRegistry_RestorePassesOptions(t *testing.T) {
	d, err := DefaultRegistry().Restore(NewArgs(KeyRemoveUnlinkedData), WithAutoSave(false))
	require.NoError(t, err)

	var v View
	require.NoError(t, d.BindView(&v))
	db := &fakeDatabase{}
	require.NoError(t, d.Close(db, true))
	assert.Equal(t, []string{"remove"}, db.calls)
}

func TestDecodeArgs_Invalid(t *testing.T) {
	_, err := DecodeArgs("{not json")
	assert.Error(t, err)
}

func TestArgs_EncodeRoundTrip(t *testing.T) {
	in := Args{ArgKey: "remove_unlinked", "extra": "kept"}

	s, err := in.Encode()
	require.NoError(t, err)
	out, err := DecodeArgs(s)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}

func TestArgs_CloneNil(t *testing.T) {
	var a Args
	assert.Nil(t, a.Clone())
	assert.Empty(t, a.Key())
}
