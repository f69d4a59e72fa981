package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/ui/action"
	"github.com/llehouerou/keyvault/internal/ui/popup"
)

// mockPopup is a simple popup implementation for testing the harness.
type mockPopup struct {
	content    string
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

type pressed struct{}

func (pressed) ActionType() string { return "mock.pressed" }

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, func() tea.Msg { return action.Msg{Source: "mock", Action: pressed{}} }
		}
	}
	return m, nil
}

func (m *mockPopup) View() string { return m.content }

func (m *mockPopup) SetSize(int, int) {}

func TestPopupHarness(t *testing.T) {
	mock := &mockPopup{content: "line one\nline\ntwo"}
	h := NewPopupHarness(mock)

	if len(h.Commands()) != 1 {
		t.Fatalf("expected init command, got %d", len(h.Commands()))
	}
	h.ClearCommands()

	h.SendKey("x")
	h.SendEscape()
	if len(h.Commands()) != 0 {
		t.Errorf("expected no commands, got %d", len(h.Commands()))
	}

	h.SendEnter()
	msg, ok := ActionOf(h.LastCommand())
	if !ok || msg.Source != "mock" {
		t.Errorf("ActionOf() = %+v, %v", msg, ok)
	}

	want := []string{"x", "esc", "enter"}
	for i, k := range want {
		if mock.keyHistory[i] != k {
			t.Errorf("key %d = %q, want %q", i, mock.keyHistory[i], k)
		}
	}

	if e := h.AssertViewContains("line two"); e != "" {
		t.Error(e)
	}
	if e := h.AssertViewNotContains("three"); e != "" {
		t.Error(e)
	}
}

func TestKeyMsg(t *testing.T) {
	for _, key := range []string{"enter", "esc", "up", "down", "ctrl+c", "ctrl+s", "y", "N"} {
		if got := KeyMsg(key).String(); got != key {
			t.Errorf("KeyMsg(%q).String() = %q", key, got)
		}
	}
}

func TestFlatten(t *testing.T) {
	in := "\x1b[1mRemove\x1b[0m this\n  data\n\nanyway?"
	if got := Flatten(in); got != "Remove this data anyway?" {
		t.Errorf("Flatten() = %q", got)
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if ExecuteCmd(nil) != nil {
		t.Error("nil command should produce nil message")
	}
	if _, ok := ActionOf(nil); ok {
		t.Error("nil command has no action")
	}
}
