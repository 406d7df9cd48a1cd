package handlers

import (
	"net/http"

	"roadworks-backend/internal/store"
	"roadworks-backend/internal/views"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate views shown on the dashboard
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// DashboardResponse bundles the dashboard projections computed from one
// consistent snapshot.
type DashboardResponse struct {
	Status views.StatusCounts `json:"status"`
	ByZone []views.ZoneCount  `json:"by_zone"`
}

// GetDashboard handles GET /dashboard
// @Summary Dashboard summary
// @Description Get the per-status and per-zone request tallies from one consistent snapshot
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} DashboardResponse "Successfully retrieved dashboard"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, DashboardResponse{
		Status: views.CountByStatus(snap),
		ByZone: views.CountByZone(snap),
	})
}
