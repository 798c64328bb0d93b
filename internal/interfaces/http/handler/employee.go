package handler

import (
	"github.com/gin-gonic/gin"

	workforceapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/workforce"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *workforceapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *workforceapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// PropertyAssignmentRequest assigns an employee to a property
type PropertyAssignmentRequest struct {
	PropertyID uint `json:"property_id" binding:"required"`
	IsPrimary  bool `json:"is_primary"`
}

// CreateEmployeeRequest represents a request to create an employee
type CreateEmployeeRequest struct {
	Name        string                      `json:"name" binding:"required,max=100"`
	Email       string                      `json:"email" binding:"required,email"`
	Phone       string                      `json:"phone" binding:"max=20"`
	Designation string                      `json:"designation" binding:"max=100"`
	Department  string                      `json:"department" binding:"max=100"`
	Salary      float64                     `json:"salary" binding:"gte=0"`
	JoinDate    string                      `json:"join_date" binding:"required"`
	Properties  []PropertyAssignmentRequest `json:"properties" binding:"omitempty,dive"`
}

// UpdateEmployeeRequest represents a request to update an employee.
// Omitting properties leaves the assignments untouched.
type UpdateEmployeeRequest struct {
	Name        *string                     `json:"name" binding:"omitempty,max=100"`
	Phone       *string                     `json:"phone" binding:"omitempty,max=20"`
	Designation *string                     `json:"designation" binding:"omitempty,max=100"`
	Department  *string                     `json:"department" binding:"omitempty,max=100"`
	Salary      *float64                    `json:"salary" binding:"omitempty,gte=0"`
	Status      *string                     `json:"status" binding:"omitempty,oneof=active on_leave terminated"`
	Properties  []PropertyAssignmentRequest `json:"properties" binding:"omitempty,dive"`
}

func toAssignments(in []PropertyAssignmentRequest) []workforceapp.PropertyAssignment {
	if in == nil {
		return nil
	}
	out := make([]workforceapp.PropertyAssignment, len(in))
	for i, a := range in {
		out[i] = workforceapp.PropertyAssignment{
			PropertyID: a.PropertyID,
			IsPrimary:  a.IsPrimary,
		}
	}
	return out
}

// Create creates an employee with optional property assignments
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		h.BadRequest(c, "Invalid join_date")
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), workforceapp.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Designation: req.Designation,
		Department:  req.Department,
		Salary:      toDecimal(req.Salary),
		JoinDate:    joinDate,
		Properties:  toAssignments(req.Properties),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, employee)
}

// GetByID retrieves an employee by ID
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// GetWithProperties retrieves an employee with property assignments
func (h *EmployeeHandler) GetWithProperties(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetWithProperties(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// List returns a paginated list of employees
func (h *EmployeeHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "status", "status")
	filterValue(c, &filter, "department", "department")
	filterValue(c, &filter, "designation", "designation")
	filterValue(c, &filter, "property_id", "property_id")

	employees, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, employees.Items, employees.Total, employees.Page, employees.PageSize)
}

// Update modifies an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	input := workforceapp.UpdateEmployeeInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Designation: req.Designation,
		Department:  req.Department,
		Status:      req.Status,
		Properties:  toAssignments(req.Properties),
	}
	if req.Salary != nil {
		input.Salary = toDecimalPtr(*req.Salary)
	}

	employee, err := h.employeeService.Update(c.Request.Context(), uri.ID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Delete removes an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), uri.ID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
