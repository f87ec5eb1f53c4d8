package service

import (
	"context"
	"strings"
	"testing"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/dbtest"
	"employee-tracker/internal/models"

	"gorm.io/gorm"
)

func uintPtr(v uint) *uint {
	return &v
}

func seedOrg(t *testing.T, svc *TrackerService) {
	t.Helper()
	dbtest.Seed(t, svc.db,
		&models.Department{Name: "Sales"},
		&models.Department{Name: "Engineering"},
		&models.Role{Title: "Sales Lead", Salary: 100000, DepartmentID: 1},
		&models.Role{Title: "Engineer", Salary: 90000, DepartmentID: 2},
		&models.Employee{FirstName: "John", LastName: "Doe", RoleID: 1},
		&models.Employee{FirstName: "Mike", LastName: "Chan", RoleID: 2, ManagerID: uintPtr(1)},
	)
}

func TestListDepartmentsOrderedByID(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	dbtest.Seed(t, svc.db,
		&models.Department{ID: 3, Name: "Legal"},
		&models.Department{ID: 1, Name: "Sales"},
		&models.Department{ID: 2, Name: "Finance"},
	)

	departments, err := svc.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("list departments: %v", err)
	}
	if len(departments) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(departments))
	}
	for i, department := range departments {
		if department.ID != uint(i+1) {
			t.Fatalf("expected ascending ids, got %+v", departments)
		}
	}
}

func TestListQueriesOrderByID(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))

	cases := []struct {
		name  string
		want  string
		query func(tx *gorm.DB) *gorm.DB
	}{
		{"departments", "ORDER BY id ASC", func(tx *gorm.DB) *gorm.DB {
			var departments []models.Department
			return departmentsQuery(tx).Find(&departments)
		}},
		{"roles", "ORDER BY id ASC", func(tx *gorm.DB) *gorm.DB {
			var roles []models.Role
			return rolesQuery(tx).Find(&roles)
		}},
		{"employees", "ORDER BY e.id ASC", func(tx *gorm.DB) *gorm.DB {
			var rows []employeeRow
			return employeesQuery(tx).Find(&rows)
		}},
	}
	for _, tc := range cases {
		if sql := svc.db.ToSQL(tc.query); !strings.Contains(sql, tc.want) {
			t.Errorf("%s: expected %q in %s", tc.name, tc.want, sql)
		}
	}
}

func TestListEmptyTables(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	ctx := context.Background()

	departments, err := svc.ListDepartments(ctx)
	if err != nil || len(departments) != 0 {
		t.Fatalf("expected no departments, got %v (%v)", departments, err)
	}
	roles, err := svc.ListRoles(ctx)
	if err != nil || len(roles) != 0 {
		t.Fatalf("expected no roles, got %v (%v)", roles, err)
	}
	employees, err := svc.ListEmployees(ctx)
	if err != nil || len(employees) != 0 {
		t.Fatalf("expected no employees, got %v (%v)", employees, err)
	}
}

func TestListRolesOrderedByID(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)

	roles, err := svc.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list roles: %v", err)
	}
	if len(roles) != 2 || roles[0].ID != 1 || roles[1].ID != 2 {
		t.Fatalf("unexpected roles: %+v", roles)
	}
	if roles[1].Title != "Engineer" || roles[1].Salary != 90000 || roles[1].DepartmentID != 2 {
		t.Fatalf("unexpected role row: %+v", roles[1])
	}
}

func TestListEmployeesResolvesManager(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)

	employees, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}

	john := employees[0]
	if john.ID != 1 || john.Manager != "" {
		t.Fatalf("expected John without manager, got %+v", john)
	}
	if john.Title != "Sales Lead" || john.Department != "Sales" || john.Salary != 100000 {
		t.Fatalf("unexpected joined columns: %+v", john)
	}

	mike := employees[1]
	if mike.Manager != "John Doe" {
		t.Fatalf("expected manager John Doe, got %q", mike.Manager)
	}
}

func TestAddDepartmentThenList(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	ctx := context.Background()

	created, err := svc.AddDepartment(ctx, CreateDepartmentInput{Name: "  Engineering "})
	if err != nil {
		t.Fatalf("add department: %v", err)
	}
	if created.ID == 0 || created.Name != "Engineering" {
		t.Fatalf("unexpected department: %+v", created)
	}

	departments, err := svc.ListDepartments(ctx)
	if err != nil {
		t.Fatalf("list departments: %v", err)
	}
	if len(departments) != 1 || departments[0].Name != "Engineering" {
		t.Fatalf("expected Engineering in listing, got %+v", departments)
	}
}

func TestAddDepartmentValidation(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))

	_, err := svc.AddDepartment(context.Background(), CreateDepartmentInput{Name: "   "})
	if apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddRole(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	dbtest.Seed(t, svc.db, &models.Department{Name: "Engineering"})
	ctx := context.Background()

	role, err := svc.AddRole(ctx, CreateRoleInput{Title: "Engineer", Salary: 90000, DepartmentID: 1})
	if err != nil {
		t.Fatalf("add role: %v", err)
	}
	if role.ID == 0 || role.Title != "Engineer" {
		t.Fatalf("unexpected role: %+v", role)
	}

	_, err = svc.AddRole(ctx, CreateRoleInput{Title: "Ghost", Salary: 1, DepartmentID: 42})
	if apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected foreign key validation error, got %v", err)
	}

	roles, err := svc.ListRoles(ctx)
	if err != nil {
		t.Fatalf("list roles: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("failed insert must not add a row, got %+v", roles)
	}
}

func TestAddRoleRejectsNegativeSalary(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))

	_, err := svc.AddRole(context.Background(), CreateRoleInput{Title: "Intern", Salary: -1, DepartmentID: 1})
	if apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddRoleRejectsSalaryOutsideColumnScale(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	dbtest.Seed(t, svc.db, &models.Department{Name: "Engineering"})
	ctx := context.Background()

	for _, salary := range []float64{1234.567, 1e10} {
		_, err := svc.AddRole(ctx, CreateRoleInput{Title: "Engineer", Salary: salary, DepartmentID: 1})
		if apperror.GetCode(err) != apperror.CodeValidation {
			t.Fatalf("salary %v: expected validation error, got %v", salary, err)
		}
	}

	if _, err := svc.AddRole(ctx, CreateRoleInput{Title: "Engineer", Salary: 1234.56, DepartmentID: 1}); err != nil {
		t.Fatalf("two decimal places must be accepted: %v", err)
	}
}

func TestAddEmployeeReturnsJoinedColumns(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)

	created, err := svc.AddEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Kevin",
		LastName:  "Tupik",
		RoleID:    2,
		ManagerID: uintPtr(2),
	})
	if err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if created.ID != 3 || created.Title != "Engineer" || created.Department != "Engineering" {
		t.Fatalf("expected role columns on created employee, got %+v", created)
	}
	if created.Salary != 90000 || created.Manager != "Mike Chan" {
		t.Fatalf("expected salary and manager on created employee, got %+v", created)
	}
}

func TestAddEmployeeWithoutManager(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, CreateEmployeeInput{FirstName: "Ashley", LastName: "Rodriguez", RoleID: 2})
	if err != nil {
		t.Fatalf("add employee: %v", err)
	}

	var stored models.Employee
	if err := svc.db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("load employee: %v", err)
	}
	if stored.ManagerID != nil {
		t.Fatalf("expected NULL manager, got %d", *stored.ManagerID)
	}
}

func TestAddEmployeeUnknownReferences(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)
	ctx := context.Background()

	_, err := svc.AddEmployee(ctx, CreateEmployeeInput{FirstName: "A", LastName: "B", RoleID: 99})
	if apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	_, err = svc.AddEmployee(ctx, CreateEmployeeInput{FirstName: "A", LastName: "B", RoleID: 1, ManagerID: uintPtr(99)})
	if apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected validation error for unknown manager, got %v", err)
	}
}

func TestUpdateEmployeeRole(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)
	ctx := context.Background()

	if err := svc.UpdateEmployeeRole(ctx, 1, 2); err != nil {
		t.Fatalf("update employee role: %v", err)
	}

	employees, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if employees[0].Title != "Engineer" || employees[0].Department != "Engineering" {
		t.Fatalf("expected John to hold Engineer, got %+v", employees[0])
	}
}

func TestUpdateEmployeeRoleErrors(t *testing.T) {
	svc := NewTrackerService(dbtest.Open(t))
	seedOrg(t, svc)
	ctx := context.Background()

	if err := svc.UpdateEmployeeRole(ctx, 99, 1); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.UpdateEmployeeRole(ctx, 1, 99); apperror.GetCode(err) != apperror.CodeValidation {
		t.Fatalf("expected foreign key validation error, got %v", err)
	}
}
