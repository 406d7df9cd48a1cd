package models

// User is a personnel record: a technician, manager or intern assigned to
// one of the four zones. Role holds a key into the role-label dictionary;
// custom keys are tolerated since the dictionary is extensible at runtime.
// RegistrationNumber and Email are optional: nil means "not provided".
type User struct {
	ID                 string  `json:"id" gorm:"primaryKey;size:64" validate:"required"`
	Name               string  `json:"name" gorm:"size:120;not null" validate:"required,max=120"`
	Role               string  `json:"role" gorm:"size:64;not null" validate:"required"`
	Zonal              Zone    `json:"zonal" gorm:"type:varchar(10);not null;index" validate:"required"`
	RegistrationNumber *string `json:"registration_number,omitempty" gorm:"column:registration_number;size:40"`
	Email              *string `json:"email,omitempty" gorm:"size:255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
