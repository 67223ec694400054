package users

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/dmitrijs2005/carekeeper/internal/server/auth"
	"github.com/dmitrijs2005/carekeeper/internal/server/config"
	"github.com/dmitrijs2005/carekeeper/internal/server/userdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records welcome-email calls.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []string
	retErr error
}

func (f *fakeMailer) SendWelcome(ctx context.Context, email, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, email)
	return f.retErr
}

func (f *fakeMailer) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func newTestService(t *testing.T) (*Service, *fakeMailer, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	clock := clockx.Real{}
	fm := &fakeMailer{}

	repo := NewInMemoryRepository()
	data := userdata.NewInMemoryRepository(clock)
	return NewService(repo, data, fm, logger, clock, cfg), fm, cfg
}

func signupRequest() models.SignupRequest {
	return models.SignupRequest{
		Name:     "Jane",
		Email:    "jane@x.com",
		Password: "secret1",
		Phone:    "555-0100",
	}
}

func TestRegister_Success_TokenVerifiable(t *testing.T) {
	t.Parallel()

	svc, _, cfg := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.True(t, user.Preferences.Notifications)
	assert.False(t, user.CreatedAt.IsZero())

	userID, err := auth.GetUserIDFromToken(token, []byte(cfg.SecretKey))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Name = "Other Jane"
	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestRegister_DuplicateEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Email = "JANE@X.COM"
	_, _, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.SignupRequest
	}{
		{name: "missing name", req: models.SignupRequest{Email: "a@x.com", Password: "secret1"}},
		{name: "missing email", req: models.SignupRequest{Name: "A", Password: "secret1"}},
		{name: "missing password", req: models.SignupRequest{Name: "A", Email: "a@x.com"}},
		{name: "short password", req: models.SignupRequest{Name: "A", Email: "a@x.com", Password: "12345"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tc.req)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestRegister_SendsWelcomeEmail(t *testing.T) {
	t.Parallel()

	svc, fm, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)

	// The mailer runs on its own goroutine.
	require.Eventually(t, func() bool {
		return len(fm.sentTo()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"jane@x.com"}, fm.sentTo())
}

func TestRegister_MailerFailureDoesNotFailRegistration(t *testing.T) {
	t.Parallel()

	svc, fm, _ := newTestService(t)
	fm.retErr = errors.New("smtp down")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, signupRequest())
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, _, cfg := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "jane@x.com", "wrong")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "nobody@x.com", "secret1")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Authenticate(ctx, "jane@x.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
		assert.Equal(t, registered.ID, user.ID)

		userID, err := auth.GetUserIDFromToken(token, []byte(cfg.SecretKey))
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
	})
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, signupRequest())
	require.NoError(t, err)

	name := "Jane D."
	contactName := "Bob"
	updated, err := svc.UpdateProfile(ctx, user.ID, models.UserPatch{
		Name:             &name,
		EmergencyContact: &models.EmergencyContactPatch{Name: &contactName},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane D.", updated.Name)
	assert.Equal(t, "Bob", updated.EmergencyContact.Name)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "jane@x.com", updated.Email)

	// The stored record matches what was returned.
	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestGet_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
