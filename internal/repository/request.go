package repository

import (
	"context"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"

	"gorm.io/gorm"
)

// RequestGateway handles database operations for repair requests
type RequestGateway struct {
	db *gorm.DB
}

// NewRequestGateway creates a new repair request gateway
func NewRequestGateway(db *gorm.DB) *RequestGateway {
	return &RequestGateway{db: db}
}

// List retrieves all repair requests, newest first
func (g *RequestGateway) List(ctx context.Context) ([]models.RepairRequest, error) {
	var requests []models.RepairRequest
	err := g.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list repair requests", err)
	}
	return requests, nil
}

// Create inserts a new repair request. Optional photo fields are written
// as explicit NULL when absent, never omitted.
func (g *RequestGateway) Create(ctx context.Context, req *models.RepairRequest) error {
	if err := g.db.WithContext(ctx).Create(req).Error; err != nil {
		return apperrors.NewPersistenceError("create repair request", err)
	}
	return nil
}

// Update replaces the stored row by id. Partial updates are not
// supported: callers always supply the complete entity, so Save writes
// every column including NULLed optional fields.
func (g *RequestGateway) Update(ctx context.Context, req *models.RepairRequest) error {
	if err := g.db.WithContext(ctx).Save(req).Error; err != nil {
		return apperrors.NewPersistenceError("update repair request", err)
	}
	return nil
}

// Delete removes a repair request by id. Deleting an absent id is not an
// error at this layer.
func (g *RequestGateway) Delete(ctx context.Context, id string) error {
	if err := g.db.WithContext(ctx).Delete(&models.RepairRequest{}, "id = ?", id).Error; err != nil {
		return apperrors.NewPersistenceError("delete repair request", err)
	}
	return nil
}
