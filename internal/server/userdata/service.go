package userdata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// Service validates incoming task/appointment payloads and delegates to
// the repository. Empty enum fields get their defaults; invalid enum
// values are rejected before touching storage.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Allocate(ctx context.Context, userID string) error {
	return s.repo.Allocate(ctx, userID)
}

func (s *Service) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repo.ListTasks(ctx, userID)
}

func (s *Service) CreateTask(ctx context.Context, userID string, nt models.NewTask) (*models.Task, error) {
	if nt.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if nt.Priority == "" {
		nt.Priority = models.PriorityMedium
	}
	if nt.Status == "" {
		nt.Status = models.StatusPending
	}
	if nt.Category == "" {
		nt.Category = models.CategoryOther
	}
	if !nt.Priority.Valid() {
		return nil, fmt.Errorf("%w: invalid priority %q", common.ErrorValidation, nt.Priority)
	}
	if !nt.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", common.ErrorValidation, nt.Status)
	}
	if !nt.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", common.ErrorValidation, nt.Category)
	}
	return s.repo.CreateTask(ctx, userID, nt)
}

func (s *Service) UpdateTask(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, fmt.Errorf("%w: invalid priority %q", common.ErrorValidation, *patch.Priority)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", common.ErrorValidation, *patch.Status)
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", common.ErrorValidation, *patch.Category)
	}
	return s.repo.UpdateTask(ctx, userID, taskID, patch)
}

func (s *Service) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.repo.DeleteTask(ctx, userID, taskID)
}

func (s *Service) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.repo.ListAppointments(ctx, userID)
}

func (s *Service) CreateAppointment(ctx context.Context, userID string, na models.NewAppointment) (*models.Appointment, error) {
	if na.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if na.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", common.ErrorValidation)
	}
	if na.Type == "" {
		na.Type = models.TypeOtherAppointment
	}
	if na.Status == "" {
		na.Status = models.StatusScheduled
	}
	if !na.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid type %q", common.ErrorValidation, na.Type)
	}
	if !na.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", common.ErrorValidation, na.Status)
	}
	return s.repo.CreateAppointment(ctx, userID, na)
}

func (s *Service) UpdateAppointment(ctx context.Context, userID, appointmentID string, patch models.AppointmentPatch) (*models.Appointment, error) {
	if patch.Duration != nil && *patch.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", common.ErrorValidation)
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("%w: invalid type %q", common.ErrorValidation, *patch.Type)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", common.ErrorValidation, *patch.Status)
	}
	return s.repo.UpdateAppointment(ctx, userID, appointmentID, patch)
}

func (s *Service) DeleteAppointment(ctx context.Context, userID, appointmentID string) error {
	return s.repo.DeleteAppointment(ctx, userID, appointmentID)
}
