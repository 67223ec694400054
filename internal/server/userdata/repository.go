// Package userdata holds each user's task and appointment collections.
// Every task and appointment belongs to exactly one user; the repository
// partitions collections by user id and serializes mutations per user.
package userdata

import (
	"context"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// Repository provides per-user CRUD over tasks and appointments.
//
// List operations on a user with no allocated collections return empty
// slices. Update and Delete return common.ErrorNotFound for an unknown
// user or entity id. Implementations must enforce single-writer-per-user:
// two concurrent mutations of the same user's collection must not
// interleave.
type Repository interface {
	// Allocate creates empty collections for a new user. Calling it for
	// an existing user is a no-op.
	Allocate(ctx context.Context, userID string) error

	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, userID string, nt models.NewTask) (*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error

	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, userID string, na models.NewAppointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, userID, appointmentID string, patch models.AppointmentPatch) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, userID, appointmentID string) error
}
