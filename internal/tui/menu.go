package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/studentdb/internal/shell"
)

type item struct {
	choice, title, desc string
}

func (i item) Title() string       { return i.choice + ". " + i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

var menuItems = []item{
	{choice: shell.ChoiceAdd, title: "Add Student", desc: "Create a record with a new id"},
	{choice: shell.ChoiceUpdate, title: "Update Student", desc: "Change the name or grade of a record"},
	{choice: shell.ChoiceDelete, title: "Delete Student", desc: "Remove every record with an id"},
	{choice: shell.ChoiceList, title: "List All Students", desc: "Show the records in order"},
	{choice: shell.ChoiceExit, title: "Exit", desc: "Leave the program"},
}

// MenuModel is the five-entry action list.
type MenuModel struct {
	list list.Model
}

func NewMenuModel(styles Styles) MenuModel {
	items := make([]list.Item, len(menuItems))
	for i, it := range menuItems {
		items[i] = it
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = styles.MenuCursor
	d.Styles.SelectedDesc = styles.MenuCursor.Foreground(MidGray)

	l := list.New(items, d, 40, 20)
	l.Title = "Student Management System"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// Leaving is menu choice 5, q or ctrl+c; esc only backs out of a form.
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = styles.Title.MarginLeft(2)

	return MenuModel{list: l}
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the menu choice under the cursor.
func (m MenuModel) Selected() string {
	if it, ok := m.list.SelectedItem().(item); ok {
		return it.choice
	}
	return ""
}

func (m *MenuModel) SetSize(w, h int) {
	m.list.SetSize(w, h)
}

func (m MenuModel) View() string {
	return m.list.View()
}
