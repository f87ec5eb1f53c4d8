package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line reads answers one line at a time. It is used when stdin is not a
// terminal, so sessions can be scripted.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select accepts either the 1-based position of a choice or its label.
func (l *Line) Select(message string, choices []Choice) (Choice, error) {
	fmt.Fprintf(l.out, "? %s\n", message)
	for i, c := range choices {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, c.Label)
	}
	fmt.Fprint(l.out, "  Answer: ")

	answer, err := l.readLine()
	if err != nil {
		return Choice{}, err
	}

	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], nil
	}
	for _, c := range choices {
		if strings.EqualFold(c.Label, answer) {
			return c, nil
		}
	}
	return Choice{}, fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}

func (l *Line) Input(message string) (string, error) {
	fmt.Fprintf(l.out, "? %s ", message)
	return l.readLine()
}
