package store

import (
	"context"
	"fmt"
	"time"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"

	"github.com/google/uuid"
)

const entityRequest = "request"

// AddRequest creates a repair request. The id must be unique among the
// current collection (one is generated when absent), the technician must
// reference an existing user, and the request always starts at OPEN. On
// commit the new request is prepended: display order is most-recent-first.
func (s *Store) AddRequest(ctx context.Context, req models.RepairRequest) (*models.RepairRequest, error) {
	if req.ID == "" {
		req.ID = "req_" + uuid.NewString()
	}
	// The lifecycle entry point is fixed: whatever status the caller sent
	// is discarded.
	req.Status = models.StatusOpen
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}

	if !req.Zonal.IsValid() {
		return nil, s.reject(entityRequest, apperrors.NewValidationError("zonal", fmt.Sprintf("unknown zonal %q", req.Zonal)))
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, s.reject(entityRequest, apperrors.NewValidationError("", err.Error()))
	}

	s.mu.RLock()
	duplicate := false
	for _, existing := range s.requests {
		if existing.ID == req.ID {
			duplicate = true
			break
		}
	}
	technicianKnown := false
	for _, user := range s.users {
		if user.ID == req.TechnicianID {
			technicianKnown = true
			break
		}
	}
	s.mu.RUnlock()

	if duplicate {
		return nil, s.reject(entityRequest, apperrors.ErrRequestExists)
	}
	if !technicianKnown {
		return nil, s.reject(entityRequest, apperrors.NewValidationError("technician_id", fmt.Sprintf("technician %q does not exist", req.TechnicianID)))
	}

	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.requestGW.Create(cctx, &req); err != nil {
		return nil, s.reject(entityRequest, err)
	}

	s.committed(entityRequest, fmt.Sprintf("Solicitação %s criada com sucesso", req.Protocol), func() {
		next := make([]models.RepairRequest, 0, len(s.requests)+1)
		next = append(next, req)
		next = append(next, s.requests...)
		s.requests = next
	})
	return &req, nil
}

// UpdateRequest fully replaces an existing request by id. Field-level
// partial updates are not supported: callers supply the complete entity.
func (s *Store) UpdateRequest(ctx context.Context, req models.RepairRequest) error {
	if !req.Status.IsValid() {
		return s.reject(entityRequest, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status)))
	}
	if err := s.validate.Struct(&req); err != nil {
		return s.reject(entityRequest, apperrors.NewValidationError("", err.Error()))
	}

	s.mu.RLock()
	index := -1
	for i, existing := range s.requests {
		if existing.ID == req.ID {
			index = i
			break
		}
	}
	s.mu.RUnlock()
	if index < 0 {
		return s.reject(entityRequest, apperrors.ErrRequestNotFound)
	}

	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.requestGW.Update(cctx, &req); err != nil {
		return s.reject(entityRequest, err)
	}

	s.committed(entityRequest, fmt.Sprintf("Solicitação %s atualizada", req.Protocol), func() {
		next := make([]models.RepairRequest, len(s.requests))
		copy(next, s.requests)
		for i, existing := range next {
			if existing.ID == req.ID {
				next[i] = req
				break
			}
		}
		s.requests = next
	})
	return nil
}

// DeleteRequest removes a request by id. Absent ids are the gateway's
// concern to report; the in-memory removal is a no-op in that case.
func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.requestGW.Delete(cctx, id); err != nil {
		return s.reject(entityRequest, err)
	}

	s.committed(entityRequest, "Solicitação removida", func() {
		next := make([]models.RepairRequest, 0, len(s.requests))
		for _, existing := range s.requests {
			if existing.ID != id {
				next = append(next, existing)
			}
		}
		s.requests = next
	})
	return nil
}
