package menu

import (
	"context"
	"errors"
	"fmt"

	"employee-tracker/internal/output"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

func (m *Menu) viewDepartments(ctx context.Context) error {
	departments, err := m.service.ListDepartments(ctx)
	if err != nil {
		return err
	}
	m.printer.Message("")
	return m.printer.Departments(output.FormatTable, departments)
}

func (m *Menu) viewRoles(ctx context.Context) error {
	roles, err := m.service.ListRoles(ctx)
	if err != nil {
		return err
	}
	m.printer.Message("")
	return m.printer.Roles(output.FormatTable, roles)
}

func (m *Menu) viewEmployees(ctx context.Context) error {
	employees, err := m.service.ListEmployees(ctx)
	if err != nil {
		return err
	}
	m.printer.Message("")
	return m.printer.Employees(output.FormatTable, employees)
}

func (m *Menu) addDepartment(ctx context.Context) error {
	name, err := m.prompter.Input("Enter the name of the new department:")
	if err != nil {
		return err
	}

	department, err := m.service.AddDepartment(ctx, service.CreateDepartmentInput{Name: name})
	if err != nil {
		return err
	}

	m.printer.Success(fmt.Sprintf("The department \"%s\" has been added successfully.", department.Name))
	return nil
}

func (m *Menu) addRole(ctx context.Context) error {
	title, err := m.prompter.Input("Enter the title of the new role:")
	if err != nil {
		return err
	}
	salary, err := prompt.Number(m.prompter, "Enter the salary for the new role:")
	if err != nil {
		return err
	}
	departmentID, err := prompt.ID(m.prompter, "Enter the department ID for the new role:")
	if err != nil {
		return err
	}

	role, err := m.service.AddRole(ctx, service.CreateRoleInput{
		Title:        title,
		Salary:       salary,
		DepartmentID: departmentID,
	})
	if err != nil {
		return err
	}

	m.printer.Success(fmt.Sprintf("The role \"%s\" has been added successfully.", role.Title))
	return nil
}

func (m *Menu) addEmployee(ctx context.Context) error {
	firstName, err := m.prompter.Input("Enter the first name of the new employee:")
	if err != nil {
		return err
	}
	lastName, err := m.prompter.Input("Enter the last name of the new employee:")
	if err != nil {
		return err
	}
	roleID, err := prompt.ID(m.prompter, "Enter the role ID for the new employee:")
	if err != nil {
		return err
	}
	managerID, err := prompt.OptionalID(m.prompter, "Enter the manager ID for the new employee (optional, leave blank if none):")
	if err != nil {
		return err
	}

	employee, err := m.service.AddEmployee(ctx, service.CreateEmployeeInput{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	})
	if err != nil {
		return err
	}

	m.printer.Success(fmt.Sprintf("The employee \"%s\" has been added successfully.", employee.FullName()))
	return nil
}

func (m *Menu) updateEmployeeRole(ctx context.Context) error {
	employees, err := m.service.ListEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		return errors.New("there are no employees to update")
	}

	employeeChoices := make([]prompt.Choice, 0, len(employees))
	for _, e := range employees {
		employeeChoices = append(employeeChoices, prompt.Choice{Label: e.FullName(), Value: e.ID})
	}
	employee, err := m.prompter.Select("Select an employee to update:", employeeChoices)
	if err != nil {
		return err
	}

	roles, err := m.service.ListRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return errors.New("there are no roles to assign")
	}

	roleChoices := make([]prompt.Choice, 0, len(roles))
	for _, r := range roles {
		roleChoices = append(roleChoices, prompt.Choice{Label: r.Title, Value: r.ID})
	}
	role, err := m.prompter.Select("Select a new role for the employee:", roleChoices)
	if err != nil {
		return err
	}

	if err := m.service.UpdateEmployeeRole(ctx, employee.Value, role.Value); err != nil {
		return err
	}

	m.printer.Success("Employee role updated successfully.")
	return nil
}
