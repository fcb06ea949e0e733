package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/exchange"
	"github.com/jeanpaul/studentdb/internal/shell"
	"github.com/jeanpaul/studentdb/internal/store"
	"github.com/jeanpaul/studentdb/internal/student"
)

// Store is what the UI needs from the record store: the shell operations
// plus the raw records for table rendering.
type Store interface {
	shell.Manager
	Records() []student.Record
}

type outcome int

const (
	outcomeNone outcome = iota
	outcomeSuccess
	outcomeError
	outcomeTable
)

type Model struct {
	width, height int

	store    Store
	logger   *zap.Logger
	styles   Styles
	menu     MenuModel
	input    textinput.Model
	form     *form
	renderer *glamour.TermRenderer
	dataFile string

	output   string
	kind     outcome
	quitting bool
}

// NewModel builds the UI over st. dataFile is only shown in the status bar.
func NewModel(st Store, dataFile, theme string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := NewStyles(ThemeNamed(theme))

	ti := textinput.New()
	ti.CharLimit = 0
	ti.PromptStyle = styles.Prompt

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Warn("Markdown renderer unavailable, falling back to plain tables", zap.Error(err))
		r = nil
	}

	return Model{
		store:    st,
		logger:   logger,
		styles:   styles,
		menu:     NewMenuModel(styles),
		input:    ti,
		renderer: r,
		dataFile: dataFile,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, 20)
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "enter":
		return m.choose(m.menu.Selected())
	case key == "q":
		return m.quit()
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		return m.choose(key)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) choose(choice string) (tea.Model, tea.Cmd) {
	switch choice {
	case shell.ChoiceAdd, shell.ChoiceUpdate, shell.ChoiceDelete:
		m.form = newForm(choice)
		m.input.Reset()
		m.input.Prompt = m.form.label()
		return m, m.input.Focus()
	case shell.ChoiceList:
		m.showTable()
		return m, nil
	case shell.ChoiceExit:
		return m.quit()
	}
	m.logger.Debug("Invalid menu choice", zap.String("choice", choice))
	m.setOutput(outcomeError, shell.InvalidChoice)
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.input.Blur()
		m.setOutput(outcomeNone, "")
		return m, nil
	case "enter":
		if done := m.form.answer(m.input.Value()); !done {
			m.input.Reset()
			m.input.Prompt = m.form.label()
			return m, nil
		}
		f := m.form
		m.form = nil
		m.input.Blur()
		m.submit(f)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(f *form) {
	a := f.answers
	id := a[0]

	var err error
	var ok string
	switch f.choice {
	case shell.ChoiceAdd:
		err = m.store.Add(id, a[1], a[2])
		ok = shell.Added(a[1])
	case shell.ChoiceUpdate:
		err = m.store.Update(id, student.PatchFromInput(a[1], a[2]))
		ok = shell.Updated(id)
	case shell.ChoiceDelete:
		_, err = m.store.Delete(id)
		ok = shell.Removed(id)
	}

	if err != nil {
		m.setOutput(outcomeError, shell.Describe(id, err))
		return
	}
	m.setOutput(outcomeSuccess, ok)
}

func (m *Model) showTable() {
	records := m.store.Records()
	if len(records) == 0 {
		m.setOutput(outcomeTable, store.EmptyMessage)
		return
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(exchange.MarkdownTable(records)); err == nil {
			m.setOutput(outcomeTable, strings.TrimRight(out, "\n"))
			return
		}
	}
	m.setOutput(outcomeTable, store.FormatTable(records))
}

func (m *Model) setOutput(kind outcome, text string) {
	m.kind = kind
	m.output = text
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.form = nil
	m.setOutput(outcomeNone, shell.Goodbye)
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return m.output + "\n"
	}

	var b strings.Builder

	status := m.styles.StatusBar.Render(fmt.Sprintf(" %s · %d records ", m.dataFile, len(m.store.Records())))
	b.WriteString(status + "\n\n")

	if m.form != nil {
		b.WriteString(m.styles.InputBox.Render(m.input.View()) + "\n")
	} else {
		b.WriteString(m.menu.View() + "\n")
	}

	if m.output != "" {
		var rendered string
		switch m.kind {
		case outcomeSuccess:
			rendered = m.styles.Success.Render(m.output)
		case outcomeError:
			rendered = m.styles.Error.Render(m.output)
		default:
			rendered = m.output
		}
		b.WriteString("\n" + m.styles.Box.Render(rendered) + "\n")
	}

	help := "↑/↓: Navigate | 1-5/Enter: Select | q: Quit"
	if m.form != nil {
		help = "Enter: Next | Esc: Cancel"
	}
	b.WriteString("\n" + m.styles.Help.Render(help))
	return b.String()
}
