package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/keyvault/internal/app"
	"github.com/llehouerou/keyvault/internal/errmsg"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/state"
)

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("keyvault: stdin and stdout must be a terminal; use the attachments commands in scripts")

// interactive reports whether both ends of the session are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !interactive() {
		return ErrNotTerminal
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpStateOpen, err)
	}
	defer stateMgr.Close()

	m := app.New(app.Options{
		Vault:    e.vault,
		State:    stateMgr,
		Strings:  e.strings,
		Registry: prefdialog.DefaultRegistry(),
		AutoSave: e.cfg.AutoSaveEnabled(),
		Logger:   e.logger,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		e.logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
