package users

import "github.com/dmitrijs2005/carekeeper/internal/models"

// User is the server-side account record: the public profile plus the
// bcrypt password hash. The hash never leaves this package's callers in a
// serialized response.
type User struct {
	models.User
	PasswordHash []byte
}
