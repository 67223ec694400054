package models

import "time"

type AppointmentType string

const (
	TypeDoctor           AppointmentType = "doctor"
	TypeTherapy          AppointmentType = "therapy"
	TypeSocial           AppointmentType = "social"
	TypeOtherAppointment AppointmentType = "other"
)

func (t AppointmentType) Valid() bool {
	switch t {
	case TypeDoctor, TypeTherapy, TypeSocial, TypeOtherAppointment:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDone      AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled visit with a care provider.
type Appointment struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Duration    int               `json:"duration"` // minutes, positive
	Provider    string            `json:"provider"`
	Location    string            `json:"location"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

// NewAppointment carries the client-supplied fields of an appointment to be
// created. The ID is assigned server-side.
type NewAppointment struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Duration    int               `json:"duration"`
	Provider    string            `json:"provider"`
	Location    string            `json:"location"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

// AppointmentPatch is a partial appointment update.
type AppointmentPatch struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Date        *time.Time         `json:"date,omitempty"`
	Duration    *int               `json:"duration,omitempty"`
	Provider    *string            `json:"provider,omitempty"`
	Location    *string            `json:"location,omitempty"`
	Type        *AppointmentType   `json:"type,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// Apply merges the patch into a field-by-field.
func (p AppointmentPatch) Apply(a *Appointment) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Provider != nil {
		a.Provider = *p.Provider
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
