package handlers

import (
	"net/http"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for personnel operations
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new personnel handler
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// ListUsers handles GET /users
// @Summary List personnel
// @Description Get all personnel records, optionally filtered by zonal
// @Tags users
// @Accept json
// @Produce json
// @Param zonal query string false "Filter by zonal (north, south, east, west)"
// @Success 200 {array} models.User "Successfully retrieved users"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users := h.store.Users()

	zonal := c.Query("zonal")
	if zonal == "" {
		c.JSON(http.StatusOK, users)
		return
	}

	filtered := make([]models.User, 0, len(users))
	for _, user := range users {
		if string(user.Zonal) == zonal {
			filtered = append(filtered, user)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

// CreateUser handles POST /users
// @Summary Create a personnel record
// @Description Register a new team member. Each zonal can have at most one manager.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User data"
// @Success 201 {object} models.User "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body or manager conflict"
// @Failure 409 {object} ErrorResponse "User ID already exists"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.AddUser(c.Request.Context(), user)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateUser handles PUT /users/:id
// @Summary Update a personnel record
// @Description Fully replace an existing personnel record by id
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.User true "Complete user data"
// @Success 200 {object} models.User "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body or manager conflict"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = c.Param("id")

	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a personnel record
// @Description Remove a personnel record. References from requests or zone metadata are left in place and resolve to a placeholder.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "Successfully deleted user"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
