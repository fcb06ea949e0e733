package tui

import "github.com/jeanpaul/studentdb/internal/shell"

// form walks the prompts of one menu action and collects the answers.
type form struct {
	choice  string
	labels  []string
	answers []string
}

func newForm(choice string) *form {
	var labels []string
	switch choice {
	case shell.ChoiceAdd:
		labels = []string{"Enter ID: ", "Enter Name: ", "Enter Grade: "}
	case shell.ChoiceUpdate:
		labels = []string{
			"Enter ID to update: ",
			"Enter new Name (leave blank to skip): ",
			"Enter new Grade (leave blank to skip): ",
		}
	case shell.ChoiceDelete:
		labels = []string{"Enter ID to delete: "}
	default:
		return nil
	}
	return &form{choice: choice, labels: labels}
}

func (f *form) label() string {
	return f.labels[len(f.answers)]
}

// answer records the current field and reports whether the form is done.
func (f *form) answer(v string) bool {
	f.answers = append(f.answers, v)
	return len(f.answers) == len(f.labels)
}
