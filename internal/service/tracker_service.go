package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/models"

	"gorm.io/gorm"
)

const (
	maxNameLength = 30
	// maxSalary is the first value that no longer fits decimal(12,2).
	maxSalary = 1e10
)

type TrackerService struct {
	db *gorm.DB
}

func NewTrackerService(db *gorm.DB) *TrackerService {
	return &TrackerService{db: db}
}

func departmentsQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Department{}).Order("id ASC")
}

func rolesQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Role{}).Order("id ASC")
}

func employeesQuery(tx *gorm.DB) *gorm.DB {
	return tx.Table("employees AS e").
		Select("e.id, e.first_name, e.last_name, r.title, d.name AS department, r.salary, " +
			"m.first_name AS manager_first_name, m.last_name AS manager_last_name").
		Joins("INNER JOIN roles r ON e.role_id = r.id").
		Joins("INNER JOIN departments d ON r.department_id = d.id").
		Joins("LEFT JOIN employees m ON e.manager_id = m.id").
		Order("e.id ASC")
}

func (s *TrackerService) ListDepartments(ctx context.Context) ([]DepartmentDTO, error) {
	var departments []models.Department
	if err := departmentsQuery(s.db.WithContext(ctx)).Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}

	result := make([]DepartmentDTO, 0, len(departments))
	for _, department := range departments {
		result = append(result, departmentToDTO(department))
	}
	return result, nil
}

func (s *TrackerService) ListRoles(ctx context.Context) ([]RoleDTO, error) {
	var roles []models.Role
	if err := rolesQuery(s.db.WithContext(ctx)).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	result := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		result = append(result, roleToDTO(role))
	}
	return result, nil
}

type employeeRow struct {
	ID               uint
	FirstName        string
	LastName         string
	Title            string
	Department       string
	Salary           float64
	ManagerFirstName *string
	ManagerLastName  *string
}

func (s *TrackerService) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	var rows []employeeRow
	if err := employeesQuery(s.db.WithContext(ctx)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	result := make([]EmployeeDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDTO())
	}
	return result, nil
}

// getEmployee loads a single employee with the same columns ListEmployees shows.
func (s *TrackerService) getEmployee(ctx context.Context, id uint) (EmployeeDTO, error) {
	var rows []employeeRow
	if err := employeesQuery(s.db.WithContext(ctx)).Where("e.id = ?", id).Scan(&rows).Error; err != nil {
		return EmployeeDTO{}, fmt.Errorf("load employee: %w", err)
	}
	if len(rows) == 0 {
		return EmployeeDTO{}, apperror.New(apperror.CodeNotFound, "employee not found")
	}
	return rows[0].toDTO(), nil
}

func (row employeeRow) toDTO() EmployeeDTO {
	return EmployeeDTO{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Title:      row.Title,
		Department: row.Department,
		Salary:     row.Salary,
		Manager:    managerName(row.ManagerFirstName, row.ManagerLastName),
	}
}

func (s *TrackerService) AddDepartment(ctx context.Context, input CreateDepartmentInput) (DepartmentDTO, error) {
	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return DepartmentDTO{}, err
	}

	department := models.Department{Name: name}
	if err := s.db.WithContext(ctx).Create(&department).Error; err != nil {
		return DepartmentDTO{}, mapDatabaseError(err, "insert department")
	}

	return departmentToDTO(department), nil
}

func (s *TrackerService) AddRole(ctx context.Context, input CreateRoleInput) (RoleDTO, error) {
	title, err := normalizeRequiredString(input.Title, "title")
	if err != nil {
		return RoleDTO{}, err
	}
	if err := validateSalary(input.Salary); err != nil {
		return RoleDTO{}, err
	}
	if input.DepartmentID == 0 {
		return RoleDTO{}, apperror.New(apperror.CodeValidation, "department_id must be a positive integer")
	}

	role := models.Role{
		Title:        title,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
	}
	if err := s.db.WithContext(ctx).Create(&role).Error; err != nil {
		return RoleDTO{}, mapDatabaseError(err, "insert role")
	}

	return roleToDTO(role), nil
}

func (s *TrackerService) AddEmployee(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error) {
	firstName, err := normalizeRequiredString(input.FirstName, "first_name")
	if err != nil {
		return EmployeeDTO{}, err
	}

	lastName, err := normalizeRequiredString(input.LastName, "last_name")
	if err != nil {
		return EmployeeDTO{}, err
	}

	if input.RoleID == 0 {
		return EmployeeDTO{}, apperror.New(apperror.CodeValidation, "role_id must be a positive integer")
	}
	if input.ManagerID != nil && *input.ManagerID == 0 {
		return EmployeeDTO{}, apperror.New(apperror.CodeValidation, "manager_id must be a positive integer")
	}

	employee := models.Employee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    input.RoleID,
		ManagerID: input.ManagerID,
	}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return EmployeeDTO{}, mapDatabaseError(err, "insert employee")
	}

	return s.getEmployee(ctx, employee.ID)
}

func (s *TrackerService) UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error {
	if employeeID == 0 || roleID == 0 {
		return apperror.New(apperror.CodeValidation, "employee and role ids must be positive integers")
	}

	result := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("role_id", roleID)
	if result.Error != nil {
		return mapDatabaseError(result.Error, "update employee role")
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "employee not found")
	}

	return nil
}

func departmentToDTO(department models.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}

func roleToDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:           role.ID,
		Title:        role.Title,
		Salary:       role.Salary,
		DepartmentID: role.DepartmentID,
	}
}

func managerName(firstName *string, lastName *string) string {
	if firstName == nil && lastName == nil {
		return ""
	}

	var parts []string
	if firstName != nil {
		parts = append(parts, *firstName)
	}
	if lastName != nil {
		parts = append(parts, *lastName)
	}
	return strings.Join(parts, " ")
}

func normalizeRequiredString(raw string, field string) (string, error) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	if length < 1 || length > maxNameLength {
		return "", apperror.New(apperror.CodeValidation, fmt.Sprintf("%s length must be in range 1..%d", field, maxNameLength))
	}
	return value, nil
}

func validateSalary(salary float64) error {
	if math.IsNaN(salary) || math.IsInf(salary, 0) || salary < 0 {
		return apperror.New(apperror.CodeValidation, "salary must be a non-negative number")
	}
	if salary >= maxSalary {
		return apperror.New(apperror.CodeValidation, "salary must be less than 10000000000")
	}
	cents := salary * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return apperror.New(apperror.CodeValidation, "salary must have at most two decimal places")
	}
	return nil
}

func mapDatabaseError(err error, action string) error {
	mapped := apperror.FromDatabase(err)
	if apperror.GetCode(mapped) != apperror.CodeInternal {
		return mapped
	}
	return fmt.Errorf("%s: %w", action, err)
}
