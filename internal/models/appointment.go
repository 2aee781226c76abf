package models

import "time"

// Appointment is a single booked slot in a master's calendar.
// Immutable after commit; a reschedule is modeled as cancel+recreate.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MasterID uint          `gorm:"uniqueIndex:idx_appointments_master_start;not null" json:"master_id"`
	Master   MasterProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	// Denormalized at commit time so the calendar survives later
	// client-record edits.
	ClientName  string `gorm:"size:150" json:"client_name"`
	ClientPhone string `gorm:"size:32" json:"client_phone"`

	StartsAt time.Time `gorm:"uniqueIndex:idx_appointments_master_start;not null" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
