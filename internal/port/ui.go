// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

// Prompter is a port for operator interaction. The core workflow only ever
// talks to this interface, so it is testable without a terminal.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(question string) (bool, error)

	// Prompt asks for a value, showing def as the default; an empty entry
	// returns def.
	Prompt(label, def string) (string, error)
}
