package models

import "time"

// ===============================
// Master onboarding status
// ===============================

const (
	MasterStatusPending  = "pending"
	MasterStatusActive   = "active"
	MasterStatusRejected = "rejected"
)

// Specialization offered by a master (hairdresser, manicurist, etc.)
type Profession struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MasterProfile holds one provider's working window and approval state.
// Only active masters may accept bookings.
type MasterProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ProfessionID uint       `json:"profession_id"`
	Profession   Profession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"profession"`

	Phone string `gorm:"size:32" json:"phone"`
	About string `gorm:"type:text" json:"about"`

	// "HH:MM", work_start < work_end
	WorkStart string `gorm:"size:5;not null" json:"work_start"`
	WorkEnd   string `gorm:"size:5;not null" json:"work_end"`

	Status     string     `gorm:"size:20;default:'pending'" json:"status"`
	ApprovedAt *time.Time `json:"approved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *MasterProfile) IsActive() bool {
	return m.Status == MasterStatusActive
}
