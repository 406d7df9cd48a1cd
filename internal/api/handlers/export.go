package handlers

import (
	"net/http"

	"roadworks-backend/internal/export"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves downloadable reports of the request collection
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler creates a new export handler
func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{store: st}
}

// ExportCSV handles GET /exports/requests.csv
// @Summary Export requests as CSV
// @Description Download the full request collection as a CSV file with references resolved to display names
// @Tags exports
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} ErrorResponse "Export failure"
// @Router /exports/requests.csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="solicitacoes.csv"`)
	if err := export.WriteCSV(c.Writer, h.store.Snapshot()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ExportPDF handles GET /exports/requests.pdf
// @Summary Export requests as PDF
// @Description Download a printable report with one section per request, photos included
// @Tags exports
// @Produce application/pdf
// @Success 200 {string} string "PDF document"
// @Failure 500 {object} ErrorResponse "Export failure"
// @Router /exports/requests.pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="solicitacoes.pdf"`)
	if err := export.WritePDF(c.Writer, h.store.Snapshot()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
