// Package api defines the client-side view of the CareKeeper REST
// surface. Session and CLI code depend on the Client interface; the
// concrete HTTP implementation lives in http.go.
package api

import (
	"context"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// Client mirrors the REST gateway's endpoint families.
//
// Contract:
//   - Signup/Login: authenticate and return the user plus a bearer token.
//   - Logout: best-effort server notification; the token is not
//     invalidated server-side.
//   - The remaining calls require a token set via SetToken.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	// SetToken installs the bearer token attached to subsequent requests.
	// An empty string clears it.
	SetToken(token string)

	// Token returns the currently installed bearer token.
	Token() string

	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error

	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, nt models.NewTask) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, na models.NewAppointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error

	// Ping checks server liveness via the health endpoint.
	Ping(ctx context.Context) error
}
