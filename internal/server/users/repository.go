package users

import (
	"context"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

// Repository stores account records keyed by id and by lowercased email.
// Implementations must serialize mutations so concurrent requests cannot
// interleave a read-modify-write.
type Repository interface {
	// Create stores a new user. Returns common.ErrorConflict when the
	// email is already registered.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail looks a user up by email (case-insensitive). Returns
	// common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID looks a user up by id. Returns common.ErrorNotFound when
	// absent.
	GetByID(ctx context.Context, id string) (*User, error)

	// Update applies the patch to the stored user under the repository
	// lock and returns the updated record.
	Update(ctx context.Context, id string, patch models.UserPatch) (*User, error)
}
