// Package menu runs the interactive action loop.
package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"employee-tracker/internal/output"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

const (
	LabelViewDepartments    = "View all departments"
	LabelViewRoles          = "View all roles"
	LabelViewEmployees      = "View all employees"
	LabelAddDepartment      = "Add a department"
	LabelAddRole            = "Add a role"
	LabelAddEmployee        = "Add an employee"
	LabelUpdateEmployeeRole = "Update an employee role"
	LabelExit               = "Exit"
)

const (
	Welcome       = "Welcome to the Employee Management System!"
	Question      = "What would you like to do?"
	InvalidChoice = "Invalid choice. Please try again."
	Exiting       = "Exiting application..."
)

type action struct {
	label   string
	failure string
	run     func(ctx context.Context) error
}

type Menu struct {
	service  service.Manager
	prompter prompt.Prompter
	printer  *output.Printer
	logger   *log.Logger
	actions  []action
}

func New(svc service.Manager, prompter prompt.Prompter, printer *output.Printer, logger *log.Logger) *Menu {
	m := &Menu{
		service:  svc,
		prompter: prompter,
		printer:  printer,
		logger:   logger,
	}
	m.actions = []action{
		{LabelViewDepartments, "Error viewing departments", m.viewDepartments},
		{LabelViewRoles, "Error viewing roles", m.viewRoles},
		{LabelViewEmployees, "Error viewing employees", m.viewEmployees},
		{LabelAddDepartment, "Error adding department", m.addDepartment},
		{LabelAddRole, "Error adding role", m.addRole},
		{LabelAddEmployee, "Error adding employee", m.addEmployee},
		{LabelUpdateEmployeeRole, "Error updating employee role", m.updateEmployeeRole},
	}
	return m
}

// Labels returns the menu entries in display order, Exit last.
func (m *Menu) Labels() []string {
	labels := make([]string, 0, len(m.actions)+1)
	for _, a := range m.actions {
		labels = append(labels, a.label)
	}
	return append(labels, LabelExit)
}

// Run shows the menu until the user picks Exit or aborts the prompt. Failed
// actions are logged and never end the loop. The caller owns the database
// connection and closes it once Run returns.
func (m *Menu) Run(ctx context.Context) error {
	m.printer.Message(Welcome)
	choices := prompt.Labels(m.Labels()...)

	for {
		choice, err := m.prompter.Select(Question, choices)
		switch {
		case errors.Is(err, prompt.ErrAborted):
			m.printer.Message(Exiting)
			return nil
		case errors.Is(err, prompt.ErrInvalidChoice):
			m.printer.Message(InvalidChoice)
			continue
		case err != nil:
			return fmt.Errorf("menu prompt: %w", err)
		}

		if choice.Label == LabelExit {
			m.printer.Message(Exiting)
			return nil
		}

		// Choices come from Labels, so every value before Exit indexes actions.
		a := m.actions[choice.Value]
		m.logger.Debug("running action", "action", a.label)
		if err := a.run(ctx); err != nil {
			m.logger.Error(a.failure, "err", err)
		}
	}
}
