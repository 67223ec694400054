package session

import (
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// Derived views are pure functions over a snapshot. They are recomputed
// on every call, so there is no cache to invalidate. "Today" means the
// calendar day of now in now's location.

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TodayTasks returns tasks due on the current calendar day.
func TodayTasks(tasks []models.Task, now time.Time) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if sameDay(t.DueDate, now) {
			out = append(out, t)
		}
	}
	return out
}

// PendingTasks returns tasks that are not yet completed.
func PendingTasks(tasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Status == models.StatusPending || t.Status == models.StatusInProgress {
			out = append(out, t)
		}
	}
	return out
}

// CompletedToday returns tasks completed on the current calendar day.
func CompletedToday(tasks []models.Task, now time.Time) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Status == models.StatusCompleted && t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingAppointments returns appointments strictly after the current
// instant.
func UpcomingAppointments(appointments []models.Appointment, now time.Time) []models.Appointment {
	var out []models.Appointment
	for _, a := range appointments {
		if a.Date.After(now) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) TodayTasks() []models.Task {
	return TodayTasks(s.Tasks(), s.clock.Now())
}

func (s *Store) PendingTasks() []models.Task {
	return PendingTasks(s.Tasks())
}

func (s *Store) CompletedToday() []models.Task {
	return CompletedToday(s.Tasks(), s.clock.Now())
}

func (s *Store) UpcomingAppointments() []models.Appointment {
	return UpcomingAppointments(s.Appointments(), s.clock.Now())
}
