// Package mailer sends the registration welcome email. The effect is
// fire-and-forget: registration never blocks on it and never fails because
// of it.
package mailer

import "context"

// Mailer delivers transactional mail for the server.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
}
