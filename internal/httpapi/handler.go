package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/service"
)

type Handler struct {
	service service.Manager
	logger  *log.Logger
}

func NewHandler(svc service.Manager, logger *log.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == "departments":
		switch r.Method {
		case http.MethodGet:
			h.handleListDepartments(w, r)
		case http.MethodPost:
			h.handleCreateDepartment(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 1 && parts[0] == "roles":
		switch r.Method {
		case http.MethodGet:
			h.handleListRoles(w, r)
		case http.MethodPost:
			h.handleCreateRole(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 1 && parts[0] == "employees":
		switch r.Method {
		case http.MethodGet:
			h.handleListEmployees(w, r)
		case http.MethodPost:
			h.handleCreateEmployee(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 3 && parts[0] == "employees" && parts[2] == "role":
		if r.Method != http.MethodPut {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		employeeID, err := parseUintID(parts[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid employee id")
			return
		}

		h.handleUpdateEmployeeRole(w, r, employeeID)
		return
	}

	writeError(w, http.StatusNotFound, "route not found")
}

type createDepartmentRequest struct {
	Name string `json:"name"`
}

type createRoleRequest struct {
	Title        string  `json:"title"`
	Salary       float64 `json:"salary"`
	DepartmentID uint    `json:"department_id"`
}

type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    uint   `json:"role_id"`
	ManagerID *uint  `json:"manager_id"`
}

type updateEmployeeRoleRequest struct {
	RoleID uint `json:"role_id"`
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, departments)
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roles)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.ListEmployees(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req createDepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	department, err := h.service.AddDepartment(r.Context(), service.CreateDepartmentInput{
		Name: req.Name,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, department)
}

func (h *Handler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.service.AddRole(r.Context(), service.CreateRoleInput{
		Title:        req.Title,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, role)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.service.AddEmployee(r.Context(), service.CreateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

func (h *Handler) handleUpdateEmployeeRole(w http.ResponseWriter, r *http.Request, employeeID uint) {
	var req updateEmployeeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateEmployeeRole(r.Context(), employeeID, req.RoleID); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperror.CodeConflict:
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("unexpected error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func parseUintID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}
