package models

// RequestStatus defines the lifecycle states of a repair request.
// Transitions are unordered: any status may be set from any other.
type RequestStatus string

const (
	StatusOpen       RequestStatus = "open"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCanceled   RequestStatus = "canceled"
)

// statusLabels holds the user-facing labels used by the field teams.
var statusLabels = map[RequestStatus]string{
	StatusOpen:       "Aberta",
	StatusInProgress: "Em andamento",
	StatusCompleted:  "Concluída",
	StatusCanceled:   "Cancelada",
}

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Label returns the display label for the status, falling back to the raw value.
func (s RequestStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// AllStatuses returns every valid status in display order.
func AllStatuses() []RequestStatus {
	return []RequestStatus{StatusOpen, StatusInProgress, StatusCompleted, StatusCanceled}
}

// Zone identifies one of the four fixed operational zones. The set is
// closed: zones are never created or deleted, only their metadata changes.
type Zone string

const (
	ZoneNorth Zone = "north"
	ZoneSouth Zone = "south"
	ZoneEast  Zone = "east"
	ZoneWest  Zone = "west"
)

// zoneDefaultNames holds the seed display names for each zone.
var zoneDefaultNames = map[Zone]string{
	ZoneNorth: "Zonal Norte",
	ZoneSouth: "Zonal Sul",
	ZoneEast:  "Zonal Leste",
	ZoneWest:  "Zonal Oeste",
}

// IsValid checks if the Zone is valid
func (z Zone) IsValid() bool {
	switch z {
	case ZoneNorth, ZoneSouth, ZoneEast, ZoneWest:
		return true
	}
	return false
}

// DefaultName returns the seed display name for the zone, falling back to
// the raw id for unknown values.
func (z Zone) DefaultName() string {
	if name, ok := zoneDefaultNames[z]; ok {
		return name
	}
	return string(z)
}

// AllZones returns the closed set of four zones.
func AllZones() []Zone {
	return []Zone{ZoneNorth, ZoneSouth, ZoneEast, ZoneWest}
}

// Built-in role keys. These three are permanent and cannot be removed from
// the role-label dictionary; custom roles get generated keys at runtime.
const (
	RoleManager      = "manager"
	RoleCollaborator = "collaborator"
	RoleIntern       = "intern"
)

// BuiltinRoles maps the permanent role keys to their default labels.
func BuiltinRoles() map[string]string {
	return map[string]string{
		RoleManager:      "Gerente",
		RoleCollaborator: "Colaborador",
		RoleIntern:       "Estagiário",
	}
}

// IsBuiltinRole reports whether key is one of the three permanent role keys.
func IsBuiltinRole(key string) bool {
	switch key {
	case RoleManager, RoleCollaborator, RoleIntern:
		return true
	}
	return false
}
