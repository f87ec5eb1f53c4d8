package service

import "context"

type CreateDepartmentInput struct {
	Name string
}

type CreateRoleInput struct {
	Title        string
	Salary       float64
	DepartmentID uint
}

type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	RoleID    uint
	ManagerID *uint
}

type DepartmentDTO struct {
	ID   uint   `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type RoleDTO struct {
	ID           uint    `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	Salary       float64 `json:"salary" yaml:"salary"`
	DepartmentID uint    `json:"department_id" yaml:"department_id"`
}

// EmployeeDTO is one row of the employee listing. Manager is empty for
// employees without one.
type EmployeeDTO struct {
	ID         uint    `json:"id" yaml:"id"`
	FirstName  string  `json:"first_name" yaml:"first_name"`
	LastName   string  `json:"last_name" yaml:"last_name"`
	Title      string  `json:"title" yaml:"title"`
	Department string  `json:"department" yaml:"department"`
	Salary     float64 `json:"salary" yaml:"salary"`
	Manager    string  `json:"manager" yaml:"manager"`
}

func (e EmployeeDTO) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Manager interface {
	ListDepartments(ctx context.Context) ([]DepartmentDTO, error)
	ListRoles(ctx context.Context) ([]RoleDTO, error)
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)
	AddDepartment(ctx context.Context, input CreateDepartmentInput) (DepartmentDTO, error)
	AddRole(ctx context.Context, input CreateRoleInput) (RoleDTO, error)
	AddEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error)
	UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error
}
