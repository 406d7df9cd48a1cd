package handlers

import (
	"net/http"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/store"
	"roadworks-backend/internal/views"

	"github.com/gin-gonic/gin"
)

// ZonalHandler handles HTTP requests for zone metadata and zone views
type ZonalHandler struct {
	store *store.Store
}

// NewZonalHandler creates a new zonal handler
func NewZonalHandler(st *store.Store) *ZonalHandler {
	return &ZonalHandler{store: st}
}

// ListZonals handles GET /zonals
// @Summary List zone metadata
// @Description Get the metadata record for each of the four zones
// @Tags zonals
// @Accept json
// @Produce json
// @Success 200 {array} models.ZonalMetadata "Successfully retrieved zonals"
// @Router /zonals [get]
func (h *ZonalHandler) ListZonals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Zonals())
}

// UpdateZonal handles PUT /zonals/:id
// @Summary Update zone metadata
// @Description Replace the metadata record for a zone (name, manager, assistant, description)
// @Tags zonals
// @Accept json
// @Produce json
// @Param id path string true "Zone ID (north, south, east, west)"
// @Param zonal body models.ZonalMetadata true "Zone metadata"
// @Success 200 {object} models.ZonalMetadata "Successfully updated zonal"
// @Failure 400 {object} ErrorResponse "Unknown zone or invalid body"
// @Failure 502 {object} ErrorResponse "Persistence gateway failure"
// @Router /zonals/{id} [put]
func (h *ZonalHandler) UpdateZonal(c *gin.Context) {
	var zonal models.ZonalMetadata
	if err := c.ShouldBindJSON(&zonal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	zonal.ID = models.Zone(c.Param("id"))

	if err := h.store.UpdateZonal(c.Request.Context(), zonal); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, zonal)
}

// GetZoneStats handles GET /zonals/:id/stats
// @Summary Get zone statistics
// @Description Get the management bundle for one zone: resolved manager and assistant names, team size and request tallies
// @Tags zonals
// @Accept json
// @Produce json
// @Param id path string true "Zone ID (north, south, east, west)"
// @Success 200 {object} views.ZoneStats "Successfully retrieved stats"
// @Failure 400 {object} ErrorResponse "Unknown zone"
// @Router /zonals/{id}/stats [get]
func (h *ZonalHandler) GetZoneStats(c *gin.Context) {
	zone := models.Zone(c.Param("id"))
	if !zone.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown zone"})
		return
	}
	c.JSON(http.StatusOK, views.StatsForZone(h.store.Snapshot(), zone))
}

// GetZoneRoster handles GET /zonals/:id/users
// @Summary Get zone roster
// @Description List the personnel assigned to one zone
// @Tags zonals
// @Accept json
// @Produce json
// @Param id path string true "Zone ID (north, south, east, west)"
// @Success 200 {array} models.User "Successfully retrieved roster"
// @Failure 400 {object} ErrorResponse "Unknown zone"
// @Router /zonals/{id}/users [get]
func (h *ZonalHandler) GetZoneRoster(c *gin.Context) {
	zone := models.Zone(c.Param("id"))
	if !zone.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown zone"})
		return
	}
	c.JSON(http.StatusOK, views.ZoneRoster(h.store.Snapshot(), zone))
}

// GetAllZoneStats handles GET /zonals/stats
// @Summary Get statistics for every zone
// @Description Get the management bundle for all four zones in display order
// @Tags zonals
// @Accept json
// @Produce json
// @Success 200 {array} views.ZoneStats "Successfully retrieved stats"
// @Router /zonals/stats [get]
func (h *ZonalHandler) GetAllZoneStats(c *gin.Context) {
	c.JSON(http.StatusOK, views.AllZoneStats(h.store.Snapshot()))
}
