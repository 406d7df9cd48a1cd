package models

import (
	"time"
)

// Location is the GPS fix plus the human-readable address captured in the
// field. The store only ever receives a fully-formed value; reverse
// geocoding happens on the capture device.
type Location struct {
	Latitude  float64 `json:"latitude" gorm:"column:latitude"`
	Longitude float64 `json:"longitude" gorm:"column:longitude"`
	Address   string  `json:"address" gorm:"column:address;size:255"`
}

// RepairRequest is a field inspection record for a road or sidewalk repair.
// The id is an opaque string assigned at creation and never reused. Photos
// are stored as data-URL encoded text; nil means "no photo taken yet",
// which is distinct from an empty string.
type RepairRequest struct {
	ID            string        `json:"id" gorm:"primaryKey;size:64" validate:"required"`
	Protocol      string        `json:"protocol" gorm:"size:40;not null" validate:"required,max=40"`
	SEINumber     string        `json:"sei_number" gorm:"column:sei_number;size:40" validate:"max=40"`
	Contract      string        `json:"contract" gorm:"size:40" validate:"max=40"`
	Description   string        `json:"description" gorm:"size:2000" validate:"max=2000"`
	Location      Location      `json:"location" gorm:"embedded"`
	VisitDate     string        `json:"visit_date" gorm:"column:visit_date;size:10"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	TechnicianID  string        `json:"technician_id" gorm:"column:technician_id;size:64" validate:"required"`
	Zonal         Zone          `json:"zonal" gorm:"type:varchar(10);not null;index" validate:"required"`
	PhotoBefore   *string       `json:"photo_before,omitempty" gorm:"column:photo_before"`
	PhotoAfter    *string       `json:"photo_after,omitempty" gorm:"column:photo_after"`
	CreatedAt     time.Time     `json:"created_at"`
}

// TableName returns the table name for RepairRequest
func (RepairRequest) TableName() string {
	return "repair_requests"
}
