// Package session holds the client's authenticated state: the signed-in
// user's profile and the cached task/appointment collections. Each
// mutation calls the server first and merges the returned entity into
// the local snapshot, so the snapshot always reflects acknowledged
// server state.
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/carekeeper/internal/client/api"
	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// TokenStore persists the bearer token and cached user name between
// process runs.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, token, name string) error
	SaveUserName(ctx context.Context, name string) error
	ClearSession(ctx context.Context) error
}

// Store is safe for concurrent use. Reads return copies of the snapshot
// so callers never observe a slice being mutated underneath them.
type Store struct {
	api    api.Client
	tokens TokenStore
	logger logging.Logger
	clock  clockx.Clock

	mu           sync.RWMutex
	user         *models.User
	tasks        []models.Task
	appointments []models.Appointment
}

func NewStore(client api.Client, tokens TokenStore, logger logging.Logger, clock clockx.Clock) *Store {
	return &Store{
		api:    client,
		tokens: tokens,
		logger: logger,
		clock:  clock,
	}
}

// User returns a copy of the signed-in user, or nil when signed out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

func (s *Store) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// refresh fetches the profile and both collections and replaces the
// local snapshot wholesale.
func (s *Store) refresh(ctx context.Context) error {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	appointments, err := s.api.ListAppointments(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.tasks = tasks
	s.appointments = appointments
	s.mu.Unlock()
	return nil
}

// Restore re-establishes a session from a previously persisted token.
// It returns false when no token is stored or the token no longer works;
// a dead token is cleared so the next start does not retry it.
func (s *Store) Restore(ctx context.Context) bool {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load persisted token", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	s.api.SetToken(token)
	if err := s.refresh(ctx); err != nil {
		s.logger.Warn(ctx, "persisted session is no longer valid", "error", err)
		s.api.SetToken("")
		if err := s.tokens.ClearSession(ctx); err != nil {
			s.logger.Warn(ctx, "failed to clear stale session", "error", err)
		}
		return false
	}
	return true
}

// establish installs the authenticated user and token and persists them.
// The collections start empty; Login fills them in afterwards.
func (s *Store) establish(ctx context.Context, resp *models.AuthResponse) {
	s.api.SetToken(resp.Token)
	if err := s.tokens.SaveSession(ctx, resp.Token, resp.User.Name); err != nil {
		s.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.tasks = nil
	s.appointments = nil
	s.mu.Unlock()
}

// Login authenticates against the server. Failures are reported as
// false, whether the credential exchange or the follow-up data fetch
// broke; the caller never sees a session with unknown collections. The
// token stays persisted on a fetch failure so Restore can retry.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "error", err)
		return false
	}
	s.establish(ctx, resp)

	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load tasks", "error", err)
		s.abandon()
		return false
	}
	appointments, err := s.api.ListAppointments(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load appointments", "error", err)
		s.abandon()
		return false
	}

	s.mu.Lock()
	s.tasks = tasks
	s.appointments = appointments
	s.mu.Unlock()
	return true
}

// abandon drops the in-memory user after a failed post-login fetch.
func (s *Store) abandon() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Signup registers a new account and establishes a session for it. A new
// account has no data yet, so no collection fetch is needed.
func (s *Store) Signup(ctx context.Context, req models.SignupRequest) bool {
	resp, err := s.api.Signup(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "signup failed", "error", err)
		return false
	}
	s.establish(ctx, resp)
	return true
}

// Logout notifies the server best-effort, then tears down local state
// unconditionally. A failed server call never leaves the client
// signed in.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn(ctx, "server logout failed", "error", err)
	}

	s.api.SetToken("")
	if err := s.tokens.ClearSession(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear persisted session", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.tasks = nil
	s.appointments = nil
	s.mu.Unlock()
}

func (s *Store) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	user, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if err := s.tokens.SaveUserName(ctx, user.Name); err != nil {
		s.logger.Warn(ctx, "failed to persist user name", "error", err)
	}
	return nil
}

func (s *Store) AddTask(ctx context.Context, nt models.NewTask) (*models.Task, error) {
	task, err := s.api.CreateTask(ctx, nt)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tasks = append([]models.Task{*task}, s.tasks...)
	s.mu.Unlock()
	return task, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.api.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = *task
			break
		}
	}
	s.mu.Unlock()
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	s.mu.Unlock()
	return nil
}

// ToggleTaskStatus flips a task between completed and pending
// (in-progress counts as not completed). Unknown ids are a no-op.
func (s *Store) ToggleTaskStatus(ctx context.Context, id string) error {
	s.mu.RLock()
	var current *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			current = &t
			break
		}
	}
	s.mu.RUnlock()

	if current == nil {
		return nil
	}

	var patch models.TaskPatch
	if current.Status == models.StatusCompleted {
		status := models.StatusPending
		patch.Status = &status
	} else {
		status := models.StatusCompleted
		now := s.clock.Now()
		patch.Status = &status
		patch.CompletedAt = &now
	}

	_, err := s.UpdateTask(ctx, id, patch)
	return err
}

func (s *Store) AddAppointment(ctx context.Context, na models.NewAppointment) (*models.Appointment, error) {
	appointment, err := s.api.CreateAppointment(ctx, na)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.appointments = append([]models.Appointment{*appointment}, s.appointments...)
	s.mu.Unlock()
	return appointment, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	appointment, err := s.api.UpdateAppointment(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i] = *appointment
			break
		}
	}
	s.mu.Unlock()
	return appointment, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.api.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.appointments = slices.DeleteFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	s.mu.Unlock()
	return nil
}
