package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/dmitrijs2005/carekeeper/internal/server/config"
	"github.com/dmitrijs2005/carekeeper/internal/server/userdata"
	"github.com/dmitrijs2005/carekeeper/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMailer struct{}

func (noopMailer) SendWelcome(ctx context.Context, email, name string) error { return nil }

func newTestGateway(t *testing.T) (*httptest.Server, *clockx.Mock) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "gateway-test-secret"

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	clock := &clockx.Mock{Instant: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

	dataRepo := userdata.NewInMemoryRepository(clock)
	dataService := userdata.NewService(dataRepo)

	userRepo := users.NewInMemoryRepository()
	userService := users.NewService(userRepo, dataRepo, noopMailer{}, logger, clock, cfg)

	s := NewHTTPServer(cfg.EndpointAddr, logger, userService, dataService, cfg.SecretKey)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts, clock
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func signup(t *testing.T, ts *httptest.Server, email string) models.AuthResponse {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/auth/signup", "", models.SignupRequest{
		Name:     "Jane",
		Email:    email,
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &auth))
	return auth
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"OK"`)
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)

	auth := signup(t, ts, "jane@x.com")
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "Jane", auth.User.Name)
	assert.NotEmpty(t, auth.User.ID)

	// Second signup with the same email conflicts.
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/auth/signup", "", models.SignupRequest{
		Name: "Jane 2", Email: "jane@x.com", Password: "secret2",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Wrong password is unauthorized.
	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", models.LoginRequest{
		Email: "jane@x.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Correct password returns the user.
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", models.LoginRequest{
		Email: "jane@x.com", Password: "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login models.AuthResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, "Jane", login.User.Name)
	assert.NotEmpty(t, login.Token)
}

func TestSignup_MissingFields(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/auth/signup", "", models.SignupRequest{Name: "NoEmail", Password: "secret1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBearerMiddleware(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)

	// No token at all.
	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token.
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/user/profile", "not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProfile_GetAndPatch(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	auth := signup(t, ts, "jane@x.com")

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/user/profile", auth.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got userBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, auth.User.ID, got.User.ID)

	phone := "555-0123"
	resp, body = doJSON(t, http.MethodPut, ts.URL+"/api/user/profile", auth.Token, models.UserPatch{Phone: &phone})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "555-0123", got.User.Phone)
	assert.Equal(t, "Jane", got.User.Name)
}

func TestTasks_CRUDRoundTrip(t *testing.T) {
	t.Parallel()

	ts, clock := newTestGateway(t)
	auth := signup(t, ts, "jane@x.com")

	due := clock.Instant
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/user/tasks", auth.Token, models.NewTask{
		Title:    "Give medication",
		Priority: models.PriorityHigh,
		Status:   models.StatusPending,
		Category: models.CategoryMedication,
		DueDate:  due,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created taskBody
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.Task.ID)
	assert.Equal(t, clock.Instant, created.Task.CreatedAt)

	// Round-trip: the list returns the submitted fields unchanged.
	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/user/tasks", auth.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list tasksBody
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, created.Task, list.Tasks[0])

	// Completing stamps the completion time.
	completed := models.StatusCompleted
	resp, body = doJSON(t, http.MethodPut, ts.URL+"/api/user/tasks/"+created.Task.ID, auth.Token, models.TaskPatch{Status: &completed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated taskBody
	require.NoError(t, json.Unmarshal(body, &updated))
	require.NotNil(t, updated.Task.CompletedAt)
	assert.Equal(t, clock.Instant, *updated.Task.CompletedAt)

	// Unknown ids are 404 and leave the collection unchanged.
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/user/tasks/no-such-id", auth.Token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/user/tasks", auth.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Tasks, 1)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/user/tasks/"+created.Task.ID, auth.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTasks_InvalidPayload(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	auth := signup(t, ts, "jane@x.com")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/user/tasks", auth.Token, models.NewTask{Priority: "urgent"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAppointments_CRUD(t *testing.T) {
	t.Parallel()

	ts, clock := newTestGateway(t)
	auth := signup(t, ts, "jane@x.com")

	date := clock.Instant.Add(48 * time.Hour)
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/user/appointments", auth.Token, models.NewAppointment{
		Title:    "Checkup",
		Date:     date,
		Duration: 30,
		Provider: "Dr. Lee",
		Type:     models.TypeDoctor,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created appointmentBody
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.Appointment.ID)
	assert.Equal(t, models.StatusScheduled, created.Appointment.Status)

	confirmed := models.StatusConfirmed
	resp, body = doJSON(t, http.MethodPut, ts.URL+"/api/user/appointments/"+created.Appointment.ID, auth.Token, models.AppointmentPatch{Status: &confirmed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated appointmentBody
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, models.StatusConfirmed, updated.Appointment.Status)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/user/appointments/"+created.Appointment.ID, auth.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/user/appointments", auth.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list appointmentsBody
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list.Appointments)
}

func TestDataIsolation_BetweenUsers(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	alice := signup(t, ts, "alice@x.com")
	bob := signup(t, ts, "bob@x.com")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/user/tasks", alice.Token, models.NewTask{Title: "alice task"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/user/tasks", bob.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list tasksBody
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list.Tasks, fmt.Sprintf("bob must not see alice's tasks: %s", body))
}

func TestLogout_Acknowledges(t *testing.T) {
	t.Parallel()

	ts, _ := newTestGateway(t)
	auth := signup(t, ts, "jane@x.com")

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/auth/logout", auth.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Logged out")

	// Stateless verification: the token still works after logout.
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/user/profile", auth.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
