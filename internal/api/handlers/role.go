package handlers

import (
	"errors"
	"net/http"

	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// RoleHandler handles HTTP requests for the role-label dictionary
type RoleHandler struct {
	store *store.Store
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(st *store.Store) *RoleHandler {
	return &RoleHandler{store: st}
}

// CreateRoleRequest is the body for adding a custom role label
type CreateRoleRequest struct {
	Label string `json:"label" binding:"required"`
}

// RoleResponse is one role dictionary entry
type RoleResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListRoles handles GET /roles
// @Summary List role labels
// @Description Get the full role dictionary, built-in and custom keys alike
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Successfully retrieved roles"
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Roles())
}

// CreateRole handles POST /roles
// @Summary Add a custom role label
// @Description Register a new role label under a generated key
// @Tags roles
// @Accept json
// @Produce json
// @Param role body CreateRoleRequest true "Role label"
// @Success 201 {object} RoleResponse "Successfully created role"
// @Failure 400 {object} ErrorResponse "Empty label"
// @Failure 500 {object} ErrorResponse "Local store failure"
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, err := h.store.AddRole(req.Label)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, RoleResponse{Key: key, Label: req.Label})
}

// DeleteRole handles DELETE /roles/:key
// @Summary Remove a custom role label
// @Description Delete a role label. Built-in roles and roles held by a current user cannot be removed.
// @Tags roles
// @Accept json
// @Produce json
// @Param key path string true "Role key"
// @Success 204 "Successfully deleted role"
// @Failure 400 {object} ErrorResponse "Built-in role or role in use"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Failure 500 {object} ErrorResponse "Local store failure"
// @Router /roles/{key} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	if err := h.store.RemoveRole(c.Param("key")); err != nil {
		if errors.Is(err, apperrors.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
