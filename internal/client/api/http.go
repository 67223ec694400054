package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// HTTPClient talks JSON to the REST gateway. It is safe for concurrent
// use; the token is guarded separately so SetToken can race with
// in-flight requests without tearing.
var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration, l logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     l.With("module", "api"),
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorResponse is the gateway's uniform error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// statusError maps HTTP statuses to the shared sentinel errors so callers
// can use errors.Is regardless of transport.
func statusError(status int, msg string) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrInvalidToken
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusConflict:
		sentinel = common.ErrorConflict
	default:
		sentinel = common.ErrorInternal
	}
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// do performs one JSON request. When out is non-nil the response body is
// unmarshalled into it.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request", "method", method, "path", path, "status", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		return statusError(resp.StatusCode, er.Error)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

type userEnvelope struct {
	User models.User `json:"user"`
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodPut, "/user/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

type taskEnvelope struct {
	Task models.Task `json:"task"`
}

type tasksEnvelope struct {
	Tasks []models.Task `json:"tasks"`
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var out tasksEnvelope
	if err := c.do(ctx, http.MethodGet, "/user/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, nt models.NewTask) (*models.Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPost, "/user/tasks", nt, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPut, "/user/tasks/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/tasks/"+id, nil, nil)
}

type appointmentEnvelope struct {
	Appointment models.Appointment `json:"appointment"`
}

type appointmentsEnvelope struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (c *HTTPClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out appointmentsEnvelope
	if err := c.do(ctx, http.MethodGet, "/user/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

func (c *HTTPClient) CreateAppointment(ctx context.Context, na models.NewAppointment) (*models.Appointment, error) {
	var out appointmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/user/appointments", na, &out); err != nil {
		return nil, err
	}
	return &out.Appointment, nil
}

func (c *HTTPClient) UpdateAppointment(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	var out appointmentEnvelope
	if err := c.do(ctx, http.MethodPut, "/user/appointments/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out.Appointment, nil
}

func (c *HTTPClient) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/appointments/"+id, nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
