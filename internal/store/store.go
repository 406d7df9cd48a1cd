// Package store holds the authoritative in-memory snapshot of every
// entity collection for the running session and mediates all mutations
// through the persistence gateways.
//
// The commit discipline is confirm-then-apply: the in-memory collection
// reference is swapped only after the remote write succeeds, so a reader
// always observes either the fully-pre- or fully-post-mutation collection,
// never a half-applied one. On gateway failure the prior state is left
// untouched. Every mutation outcome emits exactly one toast.
package store

import (
	"context"
	"sync"
	"time"

	"roadworks-backend/internal/database/models"
	"roadworks-backend/internal/logger"
	"roadworks-backend/internal/metrics"
	"roadworks-backend/internal/notify"
	"roadworks-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// UnresolvedName is the placeholder returned when a reference does not
// resolve to a live entity. Dangling references are expected (deleting a
// user does not cascade) and must never fail a read path.
const UnresolvedName = "Não definido"

// RoleStoreInterface is the local key-value boundary for the role-label
// dictionary, persisted independently of the remote gateway.
type RoleStoreInterface interface {
	Load() (map[string]string, error)
	Save(key, label string) error
	Delete(key string) error
}

// Options configures a Store
type Options struct {
	// GatewayTimeout bounds every remote call. Zero means 10s.
	GatewayTimeout time.Duration
}

// Store is the session-wide state container. All collections are swapped
// wholesale under the mutex; elements are never mutated in place.
type Store struct {
	mu       sync.RWMutex
	requests []models.RepairRequest
	users    []models.User
	zonals   []models.ZonalMetadata
	roles    map[string]string

	requestGW repository.RequestGatewayInterface
	userGW    repository.UserGatewayInterface
	zonalGW   repository.ZonalGatewayInterface
	roleStore RoleStoreInterface

	toasts   *notify.Channel
	validate *validator.Validate
	timeout  time.Duration
	log      *logger.Logger
	loaded   bool
}

// New creates a Store wired to its gateways and toast channel
func New(
	requestGW repository.RequestGatewayInterface,
	userGW repository.UserGatewayInterface,
	zonalGW repository.ZonalGatewayInterface,
	roleStore RoleStoreInterface,
	toasts *notify.Channel,
	opts *Options,
) *Store {
	timeout := 10 * time.Second
	if opts != nil && opts.GatewayTimeout > 0 {
		timeout = opts.GatewayTimeout
	}
	return &Store{
		roles:     make(map[string]string),
		requestGW: requestGW,
		userGW:    userGW,
		zonalGW:   zonalGW,
		roleStore: roleStore,
		toasts:    toasts,
		validate:  validator.New(),
		timeout:   timeout,
		log:       logger.WithComponent("store"),
	}
}

// Load populates every collection from the gateways. Zone metadata and
// the role dictionary are seeded with defaults on first run.
func (s *Store) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	requests, err := s.requestGW.List(cctx)
	if err != nil {
		return err
	}
	users, err := s.userGW.List(cctx)
	if err != nil {
		return err
	}
	zonals, err := s.zonalGW.List(cctx)
	if err != nil {
		return err
	}
	if len(zonals) == 0 {
		for _, zonal := range models.DefaultZonals() {
			z := zonal
			if err := s.zonalGW.Upsert(cctx, &z); err != nil {
				return err
			}
			zonals = append(zonals, z)
		}
		s.log.Info("seeded default zonal metadata")
	}

	roles, err := s.roleStore.Load()
	if err != nil {
		return err
	}
	if roles == nil {
		roles = make(map[string]string)
	}
	if len(roles) == 0 {
		for key, label := range models.BuiltinRoles() {
			if err := s.roleStore.Save(key, label); err != nil {
				return err
			}
			roles[key] = label
		}
		s.log.Info("seeded built-in role labels")
	}

	s.mu.Lock()
	s.requests = requests
	s.users = users
	s.zonals = zonals
	s.roles = roles
	s.loaded = true
	s.mu.Unlock()

	s.log.WithFields(map[string]interface{}{
		"requests": len(requests),
		"users":    len(users),
	}).Info("store loaded")
	return nil
}

// Toasts exposes the notification channel
func (s *Store) Toasts() *notify.Channel {
	return s.toasts
}

// Loaded reports whether the collections have been populated from the
// gateways. Readiness probes use this: a server that never completed its
// bootstrap load must not receive traffic.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot is a consistent read of all collections
type Snapshot struct {
	Requests []models.RepairRequest
	Users    []models.User
	Zonals   []models.ZonalMetadata
	Roles    map[string]string
}

// Snapshot returns a copy of every collection taken under a single read
// lock. Derived views are pure functions over this value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Requests: make([]models.RepairRequest, len(s.requests)),
		Users:    make([]models.User, len(s.users)),
		Zonals:   make([]models.ZonalMetadata, len(s.zonals)),
		Roles:    make(map[string]string, len(s.roles)),
	}
	copy(snap.Requests, s.requests)
	copy(snap.Users, s.users)
	copy(snap.Zonals, s.zonals)
	for k, v := range s.roles {
		snap.Roles[k] = v
	}
	return snap
}

// Requests returns a copy of the request collection, newest first
func (s *Store) Requests() []models.RepairRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RepairRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Users returns a copy of the personnel collection
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Zonals returns a copy of the zone metadata collection
func (s *Store) Zonals() []models.ZonalMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ZonalMetadata, len(s.zonals))
	copy(out, s.zonals)
	return out
}

// Roles returns a copy of the role-label dictionary
func (s *Store) Roles() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.roles))
	for k, v := range s.roles {
		out[k] = v
	}
	return out
}

// ZonalName resolves a zone id to its display name. When no metadata row
// exists the raw id is returned unchanged; callers must treat that as an
// "unresolved" signal, not as the canonical name.
func (s *Store) ZonalName(id models.Zone) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, zonal := range s.zonals {
		if zonal.ID == id {
			return zonal.Name
		}
	}
	return string(id)
}

// RoleLabel resolves a role key to its label, falling back to the raw key
func (s *Store) RoleLabel(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if label, ok := s.roles[key]; ok {
		return label
	}
	return key
}

// UserName resolves a user id to the display name, with the unresolved
// placeholder for dangling references.
func (s *Store) UserName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.ID == id {
			return user.Name
		}
	}
	return UnresolvedName
}

// gatewayCtx derives the bounded per-call deadline for a gateway call
func (s *Store) gatewayCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// reject surfaces a failed mutation: one error toast carrying the failure
// reason, state untouched. Returns err for callers that want to inspect it.
func (s *Store) reject(entity string, err error) error {
	s.toasts.Notify(err.Error(), notify.SeverityError)
	metrics.MutationRejected(entity)
	metrics.ToastEmitted(string(notify.SeverityError))
	s.log.WithError(err).WithField("entity", entity).Warn("mutation rejected")
	return err
}

// committed finalizes a successful mutation: the apply function swaps the
// collection reference under the write lock, then one success toast goes
// out.
func (s *Store) committed(entity, message string, apply func()) {
	s.mu.Lock()
	apply()
	s.mu.Unlock()

	s.toasts.Notify(message, notify.SeveritySuccess)
	metrics.MutationCommitted(entity)
	metrics.ToastEmitted(string(notify.SeveritySuccess))
}
