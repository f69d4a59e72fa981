package prefdialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/keyvault/internal/resources"
)

func newBoundDialog(t *testing.T, opts ...Option) *Dialog {
	t.Helper()
	d, err := NewRemoveUnlinkedData(KeyRemoveUnlinkedData, opts...)
	require.NoError(t, err)
	var v View
	require.NoError(t, d.BindView(&v))
	return d
}

func TestNewRemoveUnlinkedData_ArgsHoldOnlyKey(t *testing.T) {
	d, err := NewRemoveUnlinkedData("remove_unlinked")
	require.NoError(t, err)

	assert.Equal(t, Args{ArgKey: "remove_unlinked"}, d.Args())
	assert.Equal(t, "remove_unlinked", d.Key())
	assert.Equal(t, StateCreated, d.State())
}

func TestNewRemoveUnlinkedData_EmptyKey(t *testing.T) {
	_, err := NewRemoveUnlinkedData("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestArgs_ReturnsCopy(t *testing.T) {
	d, err := NewRemoveUnlinkedData("remove_unlinked")
	require.NoError(t, err)

	args := d.Args()
	args[ArgKey] = "tampered"

	assert.Equal(t, "remove_unlinked", d.Key())
}

func TestBindView_ComposesExplanation(t *testing.T) {
	strs := fakeStrings{
		resources.WarningRemoveUnlinkedAttachment:    "first",
		resources.WarningSureRemoveData:              "second",
		resources.PreferenceTitle("remove_unlinked"): "Title",
	}
	d, err := NewRemoveUnlinkedData("remove_unlinked", WithStrings(strs))
	require.NoError(t, err)

	var v View
	require.NoError(t, d.BindView(&v))

	assert.Equal(t, "first\n\nsecond", v.ExplanationText)
	assert.Equal(t, "Title", v.Title)
	assert.Equal(t, StateAwaitingChoice, d.State())
}

func TestBindView_DefaultStrings(t *testing.T) {
	d, err := NewRemoveUnlinkedData("remove_unlinked")
	require.NoError(t, err)

	var v View
	require.NoError(t, d.BindView(&v))

	c := resources.Default()
	want := c.String(resources.WarningRemoveUnlinkedAttachment) + "\n\n" + c.String(resources.WarningSureRemoveData)
	assert.Equal(t, want, v.ExplanationText)
	assert.Equal(t, c.String(resources.DialogPositive), v.PositiveLabel)
	assert.Equal(t, c.String(resources.DialogNegative), v.NegativeLabel)
}

func TestBindView_Idempotent(t *testing.T) {
	d, err := NewRemoveUnlinkedData("remove_unlinked")
	require.NoError(t, err)

	var first, second View
	require.NoError(t, d.BindView(&first))
	second.ExplanationText = "stale text from a previous bind"
	require.NoError(t, d.BindView(&second))

	assert.Equal(t, first, second)
	assert.Equal(t, StateAwaitingChoice, d.State())
}

func TestBindView_AfterCloseFails(t *testing.T) {
	d := newBoundDialog(t)
	require.NoError(t, d.Close(nil, false))

	var v View
	assert.ErrorIs(t, d.BindView(&v), ErrClosed)
}

// Positive result with a database: removal then save, each once.
func TestClose_PositiveWithDatabase(t *testing.T) {
	d := newBoundDialog(t)
	db := &fakeDatabase{}

	require.NoError(t, d.Close(db, true))

	assert.Equal(t, []string{"remove", "save"}, db.calls)
	assert.Equal(t, StateClosedPositive, d.State())
	assert.False(t, d.SavePending())
}

func TestClose_NegativeWithDatabase(t *testing.T) {
	d := newBoundDialog(t)
	db := &fakeDatabase{}

	require.NoError(t, d.Close(db, false))

	assert.Zero(t, db.count("remove"))
	assert.Zero(t, db.count("save"))
	assert.Equal(t, StateClosedNegative, d.State())
}

func TestClose_PositiveWithoutDatabase(t *testing.T) {
	d := newBoundDialog(t)

	assert.NotPanics(t, func() {
		require.NoError(t, d.Close(nil, true))
	})
	assert.Equal(t, StateClosedPositive, d.State())
	assert.False(t, d.SavePending())
}

func TestClose_OnlyOnce(t *testing.T) {
	d := newBoundDialog(t)
	db := &fakeDatabase{}

	require.NoError(t, d.Close(db, true))
	assert.ErrorIs(t, d.Close(db, true), ErrClosed)
	assert.ErrorIs(t, d.Close(db, false), ErrClosed)

	assert.Equal(t, 1, db.count("remove"))
	assert.Equal(t, StateClosedPositive, d.State())
}

func TestClose_BeforeBind(t *testing.T) {
	d, err := NewRemoveUnlinkedData("remove_unlinked")
	require.NoError(t, err)
	db := &fakeDatabase{}

	assert.ErrorIs(t, d.Close(db, true), ErrNotBound)
	assert.Empty(t, db.calls)
	assert.Equal(t, StateCreated, d.State())
}

func TestClose_ActionErrorPropagates(t *testing.T) {
	d := newBoundDialog(t)
	db := &fakeDatabase{removeErr: errFake}

	err := d.Close(db, true)

	require.ErrorIs(t, err, errFake)
	assert.Contains(t, err.Error(), "remove_unlinked")
	assert.Zero(t, db.count("save"), "save must not run after a failed action")
	assert.False(t, d.SavePending())
}

func TestClose_SaveErrorPropagates(t *testing.T) {
	d := newBoundDialog(t)
	db := &fakeDatabase{saveErr: errFake}

	err := d.Close(db, true)

	require.ErrorIs(t, err, errFake)
	assert.Equal(t, []string{"remove", "save"}, db.calls)
	assert.True(t, d.SavePending())
}

func TestClose_AutoSaveDisabled(t *testing.T) {
	d := newBoundDialog(t, WithAutoSave(false))
	db := &fakeDatabase{}

	require.NoError(t, d.Close(db, true))

	assert.Equal(t, []string{"remove"}, db.calls)
	assert.True(t, d.SavePending())
}

func TestNew_CustomStrategies(t *testing.T) {
	var ran int
	d, err := New(NewArgs("custom"),
		ExplanationFunc(func(Strings) string { return "custom text" }),
		ConfirmFunc(func(Database) error { ran++; return nil }),
	)
	require.NoError(t, err)

	var v View
	require.NoError(t, d.BindView(&v))
	assert.Equal(t, "custom text", v.ExplanationText)
	assert.Equal(t, resources.PreferenceTitle("custom"), v.Title, "unknown title falls back to its id")

	db := &fakeDatabase{}
	require.NoError(t, d.Close(db, true))
	assert.Equal(t, 1, ran)
	assert.Equal(t, []string{"save"}, db.calls)
}

func TestNew_NilStrategies(t *testing.T) {
	d, err := New(NewArgs("plain"), nil, nil)
	require.NoError(t, err)

	var v View
	require.NoError(t, d.BindView(&v))
	assert.Empty(t, v.ExplanationText)

	db := &fakeDatabase{}
	require.NoError(t, d.Close(db, true))
	assert.Equal(t, []string{"save"}, db.calls)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
		final bool
	}{
		{StateCreated, "created", false},
		{StateBound, "bound", false},
		{StateAwaitingChoice, "awaiting_choice", false},
		{StateClosedPositive, "closed_positive", true},
		{StateClosedNegative, "closed_negative", true},
		{State(42), "unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
			assert.Equal(t, tt.final, tt.state.Closed())
		})
	}
}
