// Package users implements the credential store: account records with
// bcrypt password hashes, registration, authentication, and profile
// updates. Authentication hands out bearer tokens via the auth package.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/clockx"
	"github.com/dmitrijs2005/carekeeper/internal/common"
	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/dmitrijs2005/carekeeper/internal/server/auth"
	"github.com/dmitrijs2005/carekeeper/internal/server/config"
	"github.com/dmitrijs2005/carekeeper/internal/server/mailer"
	"github.com/dmitrijs2005/carekeeper/internal/server/userdata"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// bcryptCost matches the work factor the original deployment used.
const bcryptCost = 10

type Service struct {
	repo          Repository
	data          userdata.Repository
	mailer        mailer.Mailer
	logger        logging.Logger
	clock         clockx.Clock
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, data userdata.Repository, m mailer.Mailer, l logging.Logger, clock clockx.Clock, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		data:          data,
		mailer:        m,
		logger:        l.With("module", "users"),
		clock:         clock,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new account, allocates its empty task/appointment
// collections, and issues a bearer token. The welcome email is
// fire-and-forget: a mailer failure is logged, never surfaced.
func (s *Service) Register(ctx context.Context, req models.SignupRequest) (*models.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters long", common.ErrorValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &User{
		User: models.User{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Preferences: models.DefaultPreferences(),
			CreatedAt:   s.clock.Now(),
		},
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, "", common.ErrorConflict
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	if err := s.data.Allocate(ctx, user.ID); err != nil {
		return nil, "", common.ErrorInternal
	}

	go func() {
		if err := s.mailer.SendWelcome(context.WithoutCancel(ctx), user.Email, user.Name); err != nil {
			s.logger.Warn(ctx, "welcome email not sent", "email", user.Email, "error", err.Error())
		}
	}()

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	result := user.User
	return &result, token, nil
}

// Authenticate verifies the email/password pair and issues a bearer token.
// Unknown email and wrong password produce the same error so accounts
// cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	result := user.User
	return &result, token, nil
}

// Get returns the public profile for id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := user.User
	return &result, nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	result := user.User
	return &result, nil
}
