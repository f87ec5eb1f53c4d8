package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"employee-tracker/internal/service"
)

func newAddCmd(a *app) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a department, role or employee",
	}

	addCmd.AddCommand(newAddDepartmentCmd(a))
	addCmd.AddCommand(newAddRoleCmd(a))
	addCmd.AddCommand(newAddEmployeeCmd(a))

	return addCmd
}

func newAddDepartmentCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "department",
		Short:   "Add a department",
		Example: `  emptrack add department --name Engineering`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *service.TrackerService) error {
				department, err := svc.AddDepartment(cmd.Context(), service.CreateDepartmentInput{Name: name})
				if err != nil {
					return fmt.Errorf("adding department: %w", err)
				}
				a.printer(cmd).Success(fmt.Sprintf("The department \"%s\" has been added successfully.", department.Name))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAddRoleCmd(a *app) *cobra.Command {
	var (
		title        string
		salary       float64
		departmentID uint
	)

	cmd := &cobra.Command{
		Use:     "role",
		Short:   "Add a role to a department",
		Example: `  emptrack add role --title Engineer --salary 90000 --department-id 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *service.TrackerService) error {
				role, err := svc.AddRole(cmd.Context(), service.CreateRoleInput{
					Title:        title,
					Salary:       salary,
					DepartmentID: departmentID,
				})
				if err != nil {
					return fmt.Errorf("adding role: %w", err)
				}
				a.printer(cmd).Success(fmt.Sprintf("The role \"%s\" has been added successfully.", role.Title))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Role title (required)")
	cmd.Flags().Float64Var(&salary, "salary", 0, "Role salary (required)")
	cmd.Flags().UintVar(&departmentID, "department-id", 0, "Department ID (required)")
	for _, name := range []string{"title", "salary", "department-id"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newAddEmployeeCmd(a *app) *cobra.Command {
	var (
		firstName string
		lastName  string
		roleID    uint
		managerID uint
	)

	cmd := &cobra.Command{
		Use:     "employee",
		Short:   "Add an employee, optionally with a manager",
		Example: `  emptrack add employee --first-name Ashley --last-name Rodriguez --role-id 3 --manager-id 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.CreateEmployeeInput{
				FirstName: firstName,
				LastName:  lastName,
				RoleID:    roleID,
			}
			if cmd.Flags().Changed("manager-id") {
				input.ManagerID = &managerID
			}

			return a.withService(func(svc *service.TrackerService) error {
				employee, err := svc.AddEmployee(cmd.Context(), input)
				if err != nil {
					return fmt.Errorf("adding employee: %w", err)
				}
				a.printer(cmd).Success(fmt.Sprintf("The employee \"%s\" has been added successfully.", employee.FullName()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name (required)")
	cmd.Flags().UintVar(&roleID, "role-id", 0, "Role ID (required)")
	cmd.Flags().UintVar(&managerID, "manager-id", 0, "Manager's employee ID (omit for none)")
	for _, name := range []string{"first-name", "last-name", "role-id"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
