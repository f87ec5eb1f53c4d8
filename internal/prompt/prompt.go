// Package prompt asks the user for menu selections and field values.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrAborted is returned when the user interrupts a prompt or input ends.
	ErrAborted = errors.New("prompt aborted")
	// ErrInvalidChoice is returned when a typed selection matches no choice.
	ErrInvalidChoice = errors.New("invalid choice")
)

type Choice struct {
	Label string
	Value uint
}

type Prompter interface {
	Select(message string, choices []Choice) (Choice, error)
	Input(message string) (string, error)
}

// Labels builds choices whose values are their positions.
func Labels(labels ...string) []Choice {
	choices := make([]Choice, 0, len(labels))
	for i, label := range labels {
		choices = append(choices, Choice{Label: label, Value: uint(i)})
	}
	return choices
}

func Number(p Prompter, message string) (float64, error) {
	raw, err := p.Input(message)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return value, nil
}

func ID(p Prompter, message string) (uint, error) {
	raw, err := p.Input(message)
	if err != nil {
		return 0, err
	}
	return parseID(raw)
}

// OptionalID returns nil when the answer is blank.
func OptionalID(p Prompter, message string) (*uint, error) {
	raw, err := p.Input(message)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id64 == 0 {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return uint(id64), nil
}
