package userdata

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/google/uuid"
)

// collections is one user's data plus its writer lock.
type collections struct {
	mu           sync.Mutex
	tasks        []models.Task
	appointments []models.Appointment
}

// InMemoryRepository keeps all user data in process memory, lost on
// restart. The outer RWMutex only guards the user map; each user's
// collections carry their own mutex so mutations for different users do
// not contend.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*collections
	clock clockx.Clock
}

func NewInMemoryRepository(clock clockx.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*collections),
		clock: clock,
	}
}

func (r *InMemoryRepository) Allocate(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		r.users[userID] = &collections{}
	}
	return nil
}

// get returns the user's collections, or nil when never allocated.
func (r *InMemoryRepository) get(userID string) *collections {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[userID]
}

func (r *InMemoryRepository) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	c := r.get(userID)
	if c == nil {
		return []models.Task{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]models.Task, len(c.tasks))
	copy(result, c.tasks)
	return result, nil
}

func (r *InMemoryRepository) CreateTask(ctx context.Context, userID string, nt models.NewTask) (*models.Task, error) {
	if err := r.Allocate(ctx, userID); err != nil {
		return nil, err
	}
	c := r.get(userID)

	now := r.clock.Now()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       nt.Title,
		Description: nt.Description,
		Priority:    nt.Priority,
		Status:      nt.Status,
		DueDate:     nt.DueDate,
		Category:    nt.Category,
		CreatedAt:   now,
	}
	if task.Status == models.StatusCompleted {
		task.CompletedAt = &now
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tasks = append(c.tasks, task)

	result := task
	return &result, nil
}

func (r *InMemoryRepository) UpdateTask(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	c := r.get(userID)
	if c == nil {
		return nil, common.ErrorNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			patch.Apply(&c.tasks[i], r.clock.Now())
			result := c.tasks[i]
			return &result, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	c := r.get(userID)
	if c == nil {
		return common.ErrorNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *InMemoryRepository) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	c := r.get(userID)
	if c == nil {
		return []models.Appointment{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]models.Appointment, len(c.appointments))
	copy(result, c.appointments)
	return result, nil
}

func (r *InMemoryRepository) CreateAppointment(ctx context.Context, userID string, na models.NewAppointment) (*models.Appointment, error) {
	if err := r.Allocate(ctx, userID); err != nil {
		return nil, err
	}
	c := r.get(userID)

	appointment := models.Appointment{
		ID:          uuid.NewString(),
		Title:       na.Title,
		Description: na.Description,
		Date:        na.Date,
		Duration:    na.Duration,
		Provider:    na.Provider,
		Location:    na.Location,
		Type:        na.Type,
		Status:      na.Status,
		Notes:       na.Notes,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.appointments = append(c.appointments, appointment)

	result := appointment
	return &result, nil
}

func (r *InMemoryRepository) UpdateAppointment(ctx context.Context, userID, appointmentID string, patch models.AppointmentPatch) (*models.Appointment, error) {
	c := r.get(userID)
	if c == nil {
		return nil, common.ErrorNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.appointments {
		if c.appointments[i].ID == appointmentID {
			patch.Apply(&c.appointments[i])
			result := c.appointments[i]
			return &result, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) DeleteAppointment(ctx context.Context, userID, appointmentID string) error {
	c := r.get(userID)
	if c == nil {
		return common.ErrorNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.appointments {
		if c.appointments[i].ID == appointmentID {
			c.appointments = append(c.appointments[:i], c.appointments[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
