package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siakadku/siakad-backend/internal/response"
	"github.com/siakadku/siakad-backend/internal/service"
)

type RoleHandler struct {
	service *service.RoleService
}

func NewRoleHandler(service *service.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// ListRoles gets all roles with their associated permissions.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, roles)
}

// GetRole gets a role and its permissions by ID.
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	role, err := h.service.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		if err.Error() == "no rows in result set" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, role)
}

// CreateUpdateRoleRequest payload for role operations. Validation of
// name and permission set happens in the service so the rules hold for
// every caller, not just HTTP.
type CreateUpdateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// failRoleValidation maps the service's validation errors onto
// field-level error responses. Returns false if err was not one.
func failRoleValidation(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrRoleNameRequired):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRoleNameRequired,
			map[string]string{"name": response.GetMessage(response.ErrRoleNameRequired)})
	case errors.Is(err, service.ErrPermissionsRequired):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrPermissionsEmpty,
			map[string]string{"permissions": response.GetMessage(response.ErrPermissionsEmpty)})
	default:
		return false
	}
	return true
}

// CreateRole creates a new role with given permissions.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateUpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), req.Name, req.Description, req.Permissions)
	if err != nil {
		if failRoleValidation(c, err) {
			return
		}
		if strings.Contains(err.Error(), "duplicate key value") {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, role)
}

// UpdateRole replaces an existing role's name, description, and permission set.
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateUpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	role, err := h.service.UpdateRole(c.Request.Context(), id, req.Name, req.Description, req.Permissions)
	if err != nil {
		if failRoleValidation(c, err) {
			return
		}
		if errors.Is(err, service.ErrSystemRoleImmutable) {
			response.Fail(c, http.StatusForbidden, response.ErrActionForbidden)
			return
		}
		if err.Error() == "no rows in result set" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		if strings.Contains(err.Error(), "duplicate key value") {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, role)
}

// DeleteRole deletes an existing role.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	err = h.service.DeleteRole(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSystemRoleImmutable) {
			response.Fail(c, http.StatusForbidden, response.ErrActionForbidden)
			return
		}
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Role deleted successfully"})
}

// BulkDeleteRequest carries the IDs for a best-effort bulk delete.
type BulkDeleteRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}

// BulkDeleteRoles deletes several roles best-effort and reports
// per-item outcomes. A failing item never aborts the batch.
func (h *RoleHandler) BulkDeleteRoles(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	results := h.service.DeleteRoles(c.Request.Context(), req.IDs)
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// GetPermissions lists the full permission catalog grouped by category.
func (h *RoleHandler) GetPermissions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.GetCatalog())
}

// GetDefaultPermissions returns the default permission codes for a
// built-in role name. Unknown names yield an empty list.
func (h *RoleHandler) GetDefaultPermissions(c *gin.Context) {
	roleName := c.Param("role")
	response.Success(c, http.StatusOK, gin.H{
		"role":        roleName,
		"permissions": h.service.GetDefaultPermissions(roleName),
	})
}

// SummarizeSelectionRequest carries a candidate permission selection.
type SummarizeSelectionRequest struct {
	Permissions []string `json:"permissions"`
}

// SummarizeSelection computes the per-category tri-state status of a
// candidate permission set, for redrawing selection indicators.
func (h *RoleHandler) SummarizeSelection(c *gin.Context) {
	var req SummarizeSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	response.Success(c, http.StatusOK, h.service.SummarizeSelection(req.Permissions))
}
