package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siakadku/siakad-backend/internal/response"
	"github.com/siakadku/siakad-backend/internal/service"
	"github.com/siakadku/siakad-backend/internal/validator"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers gets a paginated staff user list, optionally filtered by role.
func (h *UserHandler) ListUsers(c *gin.Context) {
	roleID, _ := strconv.Atoi(c.DefaultQuery("role_id", "0"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	users, total, err := h.service.ListUsers(c.Request.Context(), roleID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	totalPages := (total + perPage - 1) / perPage

	response.SuccessWithPagination(c, http.StatusOK, users, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// CreateUserRequest payload for creating a staff user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	RoleID   int    `json:"role_id" binding:"required,min=1"`
}

// CreateUser creates a new staff user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Email, req.Name, req.Password, req.RoleID)
	if err != nil {
		if errors.Is(err, service.ErrEmailRegistered) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"role_id": response.GetMessage(response.ErrNotFound)})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// UpdateUserRequest payload for updating a staff user. An empty
// password keeps the current one.
type UpdateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"omitempty,min=6,max=128"`
	RoleID   int    `json:"role_id" binding:"required,min=1"`
}

// UpdateUser updates an existing staff user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req.Email, req.Name, req.Password, req.RoleID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		if errors.Is(err, service.ErrEmailRegistered) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser deletes a staff user.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// BulkDeleteUsers deletes several users best-effort with per-item outcomes.
func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	results := h.service.DeleteUsers(c.Request.Context(), req.IDs)
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// AssignRoleRequest payload for the standalone role assignment write.
type AssignRoleRequest struct {
	RoleID int `json:"role_id" binding:"required,min=1"`
}

// AssignRole would bind a user directly to a role. The backend does not
// support this write yet; it always responds 501 with a fixed error so
// clients treat it as a permanent condition. Role changes go through
// the regular user update instead.
func (h *UserHandler) AssignRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req AssignRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), id, req.RoleID); err != nil {
		if errors.Is(err, service.ErrAssignmentNotSupported) {
			response.Fail(c, http.StatusNotImplemented, response.ErrNotSupported)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Role assigned"})
}
