package store

import (
	"context"
	"fmt"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"

	"github.com/google/uuid"
)

const entityUser = "user"

// managerConflict scans current users for a manager already bound to the
// zone, excluding the user being edited. Enforced here, ahead of any
// gateway call: this is a fast-path business rule, not a schema
// constraint.
func (s *Store) managerConflict(candidate models.User) *models.User {
	if candidate.Role != models.RoleManager {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == candidate.ID {
			continue
		}
		if user.Role == models.RoleManager && user.Zonal == candidate.Zonal {
			u := user
			return &u
		}
	}
	return nil
}

// AddUser creates a personnel record. At most one user with the Manager
// role may exist per zone; a conflict is rejected before any gateway call
// with an error naming the existing manager.
func (s *Store) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = "u_" + uuid.NewString()
	}
	if !user.Zonal.IsValid() {
		return nil, s.reject(entityUser, apperrors.NewValidationError("zonal", fmt.Sprintf("unknown zonal %q", user.Zonal)))
	}
	if err := s.validate.Struct(&user); err != nil {
		return nil, s.reject(entityUser, apperrors.NewValidationError("", err.Error()))
	}

	s.mu.RLock()
	duplicate := false
	for _, existing := range s.users {
		if existing.ID == user.ID {
			duplicate = true
			break
		}
	}
	s.mu.RUnlock()
	if duplicate {
		return nil, s.reject(entityUser, apperrors.ErrUserExists)
	}

	if conflict := s.managerConflict(user); conflict != nil {
		return nil, s.reject(entityUser, apperrors.NewValidationError("zonal",
			fmt.Sprintf("%s já possui o gerente %s", s.ZonalName(user.Zonal), conflict.Name)))
	}

	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.userGW.Upsert(cctx, &user); err != nil {
		return nil, s.reject(entityUser, err)
	}

	s.committed(entityUser, fmt.Sprintf("Colaborador %s cadastrado", user.Name), func() {
		next := make([]models.User, 0, len(s.users)+1)
		next = append(next, s.users...)
		next = append(next, user)
		s.users = next
	})
	return &user, nil
}

// UpdateUser fully replaces an existing personnel record by id, under the
// same manager-uniqueness rule as AddUser.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	if !user.Zonal.IsValid() {
		return s.reject(entityUser, apperrors.NewValidationError("zonal", fmt.Sprintf("unknown zonal %q", user.Zonal)))
	}
	if err := s.validate.Struct(&user); err != nil {
		return s.reject(entityUser, apperrors.NewValidationError("", err.Error()))
	}

	s.mu.RLock()
	known := false
	for _, existing := range s.users {
		if existing.ID == user.ID {
			known = true
			break
		}
	}
	s.mu.RUnlock()
	if !known {
		return s.reject(entityUser, apperrors.ErrUserNotFound)
	}

	if conflict := s.managerConflict(user); conflict != nil {
		return s.reject(entityUser, apperrors.NewValidationError("zonal",
			fmt.Sprintf("%s já possui o gerente %s", s.ZonalName(user.Zonal), conflict.Name)))
	}

	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.userGW.Upsert(cctx, &user); err != nil {
		return s.reject(entityUser, err)
	}

	s.committed(entityUser, fmt.Sprintf("Colaborador %s atualizado", user.Name), func() {
		next := make([]models.User, len(s.users))
		copy(next, s.users)
		for i, existing := range next {
			if existing.ID == user.ID {
				next[i] = user
				break
			}
		}
		s.users = next
	})
	return nil
}

// DeleteUser removes a personnel record by id. References to the user
// from zone metadata or repair requests are deliberately left dangling;
// read paths resolve them to the unresolved placeholder.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	cctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	if err := s.userGW.Delete(cctx, id); err != nil {
		return s.reject(entityUser, err)
	}

	s.committed(entityUser, "Colaborador removido", func() {
		next := make([]models.User, 0, len(s.users))
		for _, existing := range s.users {
			if existing.ID != id {
				next = append(next, existing)
			}
		}
		s.users = next
	})
	return nil
}
