package store

import (
	"fmt"
	"strings"
	"time"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
)

const entityRole = "role"

// AddRole registers a custom role label under a generated time-based key.
// The dictionary lives in the local store only; no remote gateway call is
// involved.
func (s *Store) AddRole(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", s.reject(entityRole, apperrors.NewValidationError("label", "role label must not be empty"))
	}

	key := fmt.Sprintf("role_%d", time.Now().UnixNano())
	if err := s.roleStore.Save(key, label); err != nil {
		return "", s.reject(entityRole, err)
	}

	s.committed(entityRole, fmt.Sprintf("Função %s adicionada", label), func() {
		next := make(map[string]string, len(s.roles)+1)
		for k, v := range s.roles {
			next[k] = v
		}
		next[key] = label
		s.roles = next
	})
	return key, nil
}

// RemoveRole deletes a custom role label. The three built-in keys are
// permanent, and a key referenced by any current user cannot be removed;
// both cases are rejected before touching the local store.
func (s *Store) RemoveRole(key string) error {
	if models.IsBuiltinRole(key) {
		return s.reject(entityRole, apperrors.NewValidationError("role", apperrors.ErrBuiltinRole.Error()))
	}

	s.mu.RLock()
	_, known := s.roles[key]
	var holder *models.User
	for _, user := range s.users {
		if user.Role == key {
			u := user
			holder = &u
			break
		}
	}
	s.mu.RUnlock()

	if !known {
		return s.reject(entityRole, apperrors.ErrRoleNotFound)
	}
	if holder != nil {
		return s.reject(entityRole, apperrors.NewValidationError("role",
			fmt.Sprintf("função em uso por %s", holder.Name)))
	}

	if err := s.roleStore.Delete(key); err != nil {
		return s.reject(entityRole, err)
	}

	s.committed(entityRole, "Função removida", func() {
		next := make(map[string]string, len(s.roles))
		for k, v := range s.roles {
			if k != key {
				next[k] = v
			}
		}
		s.roles = next
	})
	return nil
}
