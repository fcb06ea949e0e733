package shell

import "fmt"

// Outcome messages shared by the line shell and the terminal UI.

func Added(name string) string {
	return fmt.Sprintf("[Success] Student '%s' added.", name)
}

func Updated(id string) string {
	return fmt.Sprintf("[Success] Student %s updated.", id)
}

func Removed(id string) string {
	return fmt.Sprintf("[Success] Student %s removed.", id)
}

const (
	InvalidChoice = "Invalid input. Please choose 1-5."
	Goodbye       = "Exiting system. Goodbye!"
)
