package repository

import (
	"context"

	"roadworks-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RequestGatewayInterface is the storage boundary for repair requests.
// Every write receives a fully-populated entity; the gateway owns the
// field-name translation to the storage schema and reports failures as
// PersistenceError. It holds no cached state and performs no retries.
type RequestGatewayInterface interface {
	List(ctx context.Context) ([]models.RepairRequest, error)
	Create(ctx context.Context, req *models.RepairRequest) error
	Update(ctx context.Context, req *models.RepairRequest) error
	Delete(ctx context.Context, id string) error
}

// UserGatewayInterface is the storage boundary for personnel records.
// Writes are upserts keyed by id, matching the hosted schema.
type UserGatewayInterface interface {
	List(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// ZonalGatewayInterface is the storage boundary for zone metadata. Zones
// are never deleted, so only list and upsert are exposed.
type ZonalGatewayInterface interface {
	List(ctx context.Context) ([]models.ZonalMetadata, error)
	Upsert(ctx context.Context, zonal *models.ZonalMetadata) error
}
