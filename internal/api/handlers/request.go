package handlers

import (
	"net/http"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles HTTP requests for repair request operations
type RequestHandler struct {
	store *store.Store
}

// NewRequestHandler creates a new repair request handler
func NewRequestHandler(st *store.Store) *RequestHandler {
	return &RequestHandler{store: st}
}

// ListRequests handles GET /requests
// @Summary List repair requests
// @Description Get all repair requests, newest first, optionally filtered by status or zonal
// @Tags requests
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (open, in_progress, completed, canceled)"
// @Param zonal query string false "Filter by zonal (north, south, east, west)"
// @Success 200 {array} models.RepairRequest "Successfully retrieved requests"
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests := h.store.Requests()

	status := c.Query("status")
	zonal := c.Query("zonal")
	if status == "" && zonal == "" {
		c.JSON(http.StatusOK, requests)
		return
	}

	filtered := make([]models.RepairRequest, 0, len(requests))
	for _, req := range requests {
		if status != "" && string(req.Status) != status {
			continue
		}
		if zonal != "" && string(req.Zonal) != zonal {
			continue
		}
		filtered = append(filtered, req)
	}
	c.JSON(http.StatusOK, filtered)
}

// CreateRequest handles POST /requests
// @Summary Create a repair request
// @Description Register a new field inspection record. The request is persisted remotely before it becomes visible.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body models.RepairRequest true "Repair request data"
// @Success 201 {object} models.RepairRequest "Successfully created request"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Request ID already exists"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req models.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.AddRequest(c.Request.Context(), req)
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

// UpdateRequest handles PUT /requests/:id
// @Summary Update a repair request
// @Description Fully replace an existing repair request by id
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body models.RepairRequest true "Complete request data"
// @Success 200 {object} models.RepairRequest "Successfully updated request"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var req models.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	if err := h.store.UpdateRequest(c.Request.Context(), req); err != nil {
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

	c.JSON(http.StatusOK, req)
}

// DeleteRequest handles DELETE /requests/:id
// @Summary Delete a repair request
// @Description Remove a repair request by id
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 204 "Successfully deleted request"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.store.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
