package dto

import "time"

type AppointmentDTO struct {
	ID          uint      `json:"id"`
	MasterID    uint      `json:"master_id"`
	ClientID    uint      `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// DaySlotDTO is one candidate start time of a working day, with
// occupancy resolved against committed appointments.
type DaySlotDTO struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}
