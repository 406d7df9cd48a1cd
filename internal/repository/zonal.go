package repository

import (
	"context"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ZonalGateway handles database operations for zone metadata
type ZonalGateway struct {
	db *gorm.DB
}

// NewZonalGateway creates a new zonal gateway
func NewZonalGateway(db *gorm.DB) *ZonalGateway {
	return &ZonalGateway{db: db}
}

// List retrieves metadata rows for all zones
func (g *ZonalGateway) List(ctx context.Context) ([]models.ZonalMetadata, error) {
	var zonals []models.ZonalMetadata
	err := g.db.WithContext(ctx).Find(&zonals).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list zonals", err)
	}
	return zonals, nil
}

// Upsert creates or fully replaces a zone metadata row keyed by the zone
// id. An empty manager or assistant reference is written as NULL so the
// hosted schema never sees a dangling empty-string foreign key.
func (g *ZonalGateway) Upsert(ctx context.Context, zonal *models.ZonalMetadata) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(zonal).Error
	if err != nil {
		return apperrors.NewPersistenceError("save zonal", err)
	}
	return nil
}
