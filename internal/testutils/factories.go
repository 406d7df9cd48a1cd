package testutils

import (
	"fmt"
	"time"

	"roadworks-backend/internal/database/models"

	"github.com/google/uuid"
)

// RequestFactory provides methods to create test RepairRequest data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates a test RepairRequest with default values
func (f *RequestFactory) Create() *models.RepairRequest {
	id := uuid.NewString()
	return &models.RepairRequest{
		ID:          "req_" + id,
		Protocol:    fmt.Sprintf("2024.%s", id[:6]),
		SEINumber:   "SEI-2024/001234",
		Contract:    "CT-2024-17",
		Description: "Buraco na pista junto ao meio-fio",
		Location: models.Location{
			Latitude:  -23.5505,
			Longitude: -46.6333,
			Address:   "Av. Paulista, 1000",
		},
		VisitDate:    "2024-06-10",
		Status:       models.StatusOpen,
		TechnicianID: "u_" + uuid.NewString(),
		Zonal:        models.ZoneNorth,
		CreatedAt:    time.Now(),
	}
}

// WithStatus sets a custom status
func (f *RequestFactory) WithStatus(status models.RequestStatus) *models.RepairRequest {
	req := f.Create()
	req.Status = status
	return req
}

// WithZonal sets a custom zonal
func (f *RequestFactory) WithZonal(zone models.Zone) *models.RepairRequest {
	req := f.Create()
	req.Zonal = zone
	return req
}

// WithTechnician sets a custom technician reference
func (f *RequestFactory) WithTechnician(id string) *models.RepairRequest {
	req := f.Create()
	req.TechnicianID = id
	return req
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	registration := "MAT-" + uuid.NewString()[:8]
	email := "tecnico@prefeitura.test"
	return &models.User{
		ID:                 "u_" + uuid.NewString(),
		Name:               "Ana Oliveira",
		Role:               models.RoleCollaborator,
		Zonal:              models.ZoneNorth,
		RegistrationNumber: &registration,
		Email:              &email,
	}
}

// WithRole sets a custom role key
func (f *UserFactory) WithRole(role string) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithZonal sets a custom zonal
func (f *UserFactory) WithZonal(zone models.Zone) *models.User {
	user := f.Create()
	user.Zonal = zone
	return user
}

// ZonalFactory provides methods to create test ZonalMetadata data
type ZonalFactory struct{}

// NewZonalFactory creates a new ZonalFactory
func NewZonalFactory() *ZonalFactory {
	return &ZonalFactory{}
}

// Create creates test ZonalMetadata for the given zone
func (f *ZonalFactory) Create(zone models.Zone) *models.ZonalMetadata {
	return &models.ZonalMetadata{
		ID:   zone,
		Name: zone.DefaultName(),
	}
}

// WithManager binds a manager reference
func (f *ZonalFactory) WithManager(zone models.Zone, managerID string) *models.ZonalMetadata {
	zonal := f.Create(zone)
	zonal.ManagerID = &managerID
	return zonal
}
