package store

import (
	"context"
	"fmt"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
)

const entityZonal = "zonal"

// UpdateZonal replaces the metadata row for a zone. The zone id set is
// closed, so the only validation is id membership; manager and assistant
// references are not checked against the user collection.
func (s *Store) UpdateZonal(ctx context.Context, zonal models.ZonalMetadata) error {
	if !zonal.ID.IsValid() {
		return s.reject(entityZonal, apperrors.NewValidationError("id", fmt.Sprintf("unknown zonal %q", zonal.ID)))
	}
	if err := s.validate.Struct(&zonal); err != nil {
		return s.reject(entityZonal, apperrors.NewValidationError("", err.Error()))
	}

	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.zonalGW.Upsert(cctx, &zonal); err != nil {
		return s.reject(entityZonal, err)
	}

	s.committed(entityZonal, fmt.Sprintf("Zonal %s atualizada", zonal.Name), func() {
		next := make([]models.ZonalMetadata, len(s.zonals))
		copy(next, s.zonals)
		replaced := false
		for i, existing := range next {
			if existing.ID == zonal.ID {
				next[i] = zonal
				replaced = true
				break
			}
		}
		if !replaced {
			next = append(next, zonal)
		}
		s.zonals = next
	})
	return nil
}
