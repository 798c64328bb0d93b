package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/shubhendumishra2009/arkedia-homes/internal/application/identity"
	"github.com/shubhendumishra2009/arkedia-homes/internal/interfaces/http/dto"
)

// PermissionHandler handles form and user-right endpoints
type PermissionHandler struct {
	BaseHandler
	permissionService *identityapp.PermissionService
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(permissionService *identityapp.PermissionService) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
	}
}

// CreateFormRequest represents a request to register a new form
type CreateFormRequest struct {
	FormName  string `json:"form_name" binding:"required,min=1,max=100"`
	PageURL   string `json:"page_url" binding:"required,min=1,max=200"`
	MenuGroup string `json:"menu_group" binding:"max=100"`
	SortOrder int    `json:"sort_order"`
}

// FormRightRequest is one form-right entry in a bulk replace
type FormRightRequest struct {
	FormID         uint `json:"form_id" binding:"required"`
	HasAddRight    bool `json:"has_add_right"`
	HasUpdateRight bool `json:"has_update_right"`
	HasDeleteRight bool `json:"has_delete_right"`
}

// ReplaceUserRightsRequest replaces a user's form rights wholesale
type ReplaceUserRightsRequest struct {
	Rights []FormRightRequest `json:"rights" binding:"required,dive"`
}

// CheckAccessRequest asks for the caller's rights on a page
type CheckAccessRequest struct {
	PageURL string `form:"page_url" binding:"required"`
}

// ListForms returns all registered forms
func (h *PermissionHandler) ListForms(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filterValue(c, &filter, "menu_group", "menu_group")

	forms, err := h.permissionService.ListForms(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, forms)
}

// CreateForm registers a new form
func (h *PermissionHandler) CreateForm(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	form, err := h.permissionService.CreateForm(c.Request.Context(), req.FormName, req.PageURL, req.MenuGroup, req.SortOrder)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, form)
}

// GetUserRights returns a user's form rights
func (h *PermissionHandler) GetUserRights(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	rights, err := h.permissionService.GetUserRights(c.Request.Context(), uri.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rights)
}

// ReplaceUserRights replaces a user's form rights wholesale
func (h *PermissionHandler) ReplaceUserRights(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ReplaceUserRightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	inputs := make([]identityapp.FormRightInput, 0, len(req.Rights))
	for _, r := range req.Rights {
		inputs = append(inputs, identityapp.FormRightInput{
			FormID:         r.FormID,
			HasAddRight:    r.HasAddRight,
			HasUpdateRight: r.HasUpdateRight,
			HasDeleteRight: r.HasDeleteRight,
		})
	}

	if err := h.permissionService.ReplaceUserRights(c.Request.Context(), uri.ID, inputs); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User rights updated"})
}

// CheckAccess reports the caller's rights on a page URL
func (h *PermissionHandler) CheckAccess(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CheckAccessRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	check, err := h.permissionService.CheckAccess(c.Request.Context(), userID, req.PageURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, check)
}
