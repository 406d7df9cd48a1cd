package models

// ZonalMetadata is the per-zone configuration row. The id set is fixed and
// closed (the four Zone values); the display name is mutable, the id is
// not. Manager and assistant references are optional and may dangle after
// a user deletion: readers must resolve missing references to a safe
// placeholder, never fail.
type ZonalMetadata struct {
	ID          Zone    `json:"id" gorm:"primaryKey;type:varchar(10)" validate:"required"`
	Name        string  `json:"name" gorm:"size:120;not null" validate:"required,max=120"`
	ManagerID   *string `json:"manager_id,omitempty" gorm:"column:manager_id;size:64"`
	AssistantID *string `json:"assistant_id,omitempty" gorm:"column:assistant_id;size:64"`
	Description *string `json:"description,omitempty" gorm:"size:500"`
}

// TableName returns the table name for ZonalMetadata
func (ZonalMetadata) TableName() string {
	return "zonals"
}

// DefaultZonals returns the seed rows written on first run, one per zone
// with its default display name and no manager bound.
func DefaultZonals() []ZonalMetadata {
	zonals := make([]ZonalMetadata, 0, len(AllZones()))
	for _, z := range AllZones() {
		zonals = append(zonals, ZonalMetadata{ID: z, Name: z.DefaultName()})
	}
	return zonals
}
