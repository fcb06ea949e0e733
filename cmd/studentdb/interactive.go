package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/config"
	"github.com/jeanpaul/studentdb/internal/shell"
	"github.com/jeanpaul/studentdb/internal/tui"
)

// useTUI decides between the full-screen menu and the line shell.
// auto picks the TUI only when both ends are a terminal.
func useTUI(mode string, in, out *os.File) bool {
	switch mode {
	case config.UITUI:
		return true
	case config.UIPlain:
		return false
	}
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runInteractive(cmd *cobra.Command) error {
	st := openStore()

	if !useTUI(cfg.UI, os.Stdin, os.Stdout) {
		logger.Info("Starting line shell", zap.String("data_file", st.Path()))
		return shell.New(st, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
	}

	logger.Info("Starting terminal UI", zap.String("data_file", st.Path()))
	p := tea.NewProgram(tui.NewModel(st, st.Path(), cfg.Theme, logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	// The alternate screen is gone by now; leave the goodbye on the terminal.
	if m, ok := final.(tui.Model); ok {
		fmt.Fprint(cmd.OutOrStdout(), m.View())
	}
	return nil
}
