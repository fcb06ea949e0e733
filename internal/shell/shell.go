// Package shell runs the line-oriented student menu over any reader/writer
// pair, so it works the same on a terminal, a pipe, or in tests.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jeanpaul/studentdb/internal/student"
)

// Manager is the subset of the record store the shell drives.
type Manager interface {
	Add(id, name, grade string) error
	Update(id string, p student.Patch) error
	Delete(id string) (int, error)
	List() string
}

// Menu choices, as typed by the user.
const (
	ChoiceAdd    = "1"
	ChoiceUpdate = "2"
	ChoiceDelete = "3"
	ChoiceList   = "4"
	ChoiceExit   = "5"
)

const menu = `
--- Student Management System ---
1. Add Student
2. Update Student
3. Delete Student
4. List All Students
5. Exit
`

type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	mgr    Manager
	logger *zap.Logger
}

func New(mgr Manager, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		mgr:    mgr,
		logger: logger,
	}
}

// Run loops over the menu until the user exits or input runs out.
// Store errors are printed and never end the loop.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("\nSelect an option (1-5): ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case ChoiceAdd:
			err = s.add()
		case ChoiceUpdate:
			err = s.update()
		case ChoiceDelete:
			err = s.delete()
		case ChoiceList:
			fmt.Fprintf(s.out, "\n%s\n", s.mgr.List())
		case ChoiceExit:
			fmt.Fprintln(s.out, Goodbye)
			return nil
		default:
			s.logger.Debug("Invalid menu choice", zap.String("choice", choice))
			fmt.Fprintln(s.out, InvalidChoice)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) add() error {
	id, err := s.prompt("Enter ID: ")
	if err != nil {
		return err
	}
	name, err := s.prompt("Enter Name: ")
	if err != nil {
		return err
	}
	grade, err := s.prompt("Enter Grade: ")
	if err != nil {
		return err
	}

	if err := s.mgr.Add(id, name, grade); err != nil {
		s.report(id, err)
		return nil
	}
	fmt.Fprintf(s.out, "\n%s\n", Added(name))
	return nil
}

func (s *Shell) update() error {
	id, err := s.prompt("Enter ID to update: ")
	if err != nil {
		return err
	}
	name, err := s.prompt("Enter new Name (leave blank to skip): ")
	if err != nil {
		return err
	}
	grade, err := s.prompt("Enter new Grade (leave blank to skip): ")
	if err != nil {
		return err
	}

	if err := s.mgr.Update(id, student.PatchFromInput(name, grade)); err != nil {
		s.report(id, err)
		return nil
	}
	fmt.Fprintf(s.out, "\n%s\n", Updated(id))
	return nil
}

func (s *Shell) delete() error {
	id, err := s.prompt("Enter ID to delete: ")
	if err != nil {
		return err
	}

	if _, err := s.mgr.Delete(id); err != nil {
		s.report(id, err)
		return nil
	}
	fmt.Fprintf(s.out, "\n%s\n", Removed(id))
	return nil
}

func (s *Shell) report(id string, err error) {
	fmt.Fprintf(s.out, "\n%s\n", Describe(id, err))
}

// Describe turns a store error into the message shown to the user.
func Describe(id string, err error) string {
	switch {
	case errors.Is(err, student.ErrDuplicateID):
		return fmt.Sprintf("[Error] Student ID %s already exists!", id)
	case errors.Is(err, student.ErrNotFound):
		return fmt.Sprintf("[Error] Student ID %s not found.", id)
	case errors.Is(err, student.ErrInvalidText):
		return fmt.Sprintf("[Error] Input for student ID %s is not valid UTF-8 text.", id)
	default:
		return fmt.Sprintf("[Error] Could not save records: %v", err)
	}
}

// prompt prints label and returns the next input line without its line
// terminator. Nothing else is trimmed.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// finish treats end of input as an exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintf(s.out, "\n%s\n", Goodbye)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
