package repository

import (
	"context"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserGateway handles database operations for personnel records
type UserGateway struct {
	db *gorm.DB
}

// NewUserGateway creates a new user gateway
func NewUserGateway(db *gorm.DB) *UserGateway {
	return &UserGateway{db: db}
}

// List retrieves all users
func (g *UserGateway) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := g.db.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("list users", err)
	}
	return users, nil
}

// Upsert creates or fully replaces a user row keyed by id
func (g *UserGateway) Upsert(ctx context.Context, user *models.User) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(user).Error
	if err != nil {
		return apperrors.NewPersistenceError("save user", err)
	}
	return nil
}

// Delete removes a user by id. References to the user from zonals or
// repair requests are left in place; readers resolve them to placeholders.
func (g *UserGateway) Delete(ctx context.Context, id string) error {
	if err := g.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return apperrors.NewPersistenceError("delete user", err)
	}
	return nil
}
