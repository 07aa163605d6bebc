package service

import "context"

// Mailer delivers account emails.
type Mailer interface {
	SendValidationCode(ctx context.Context, to, code string) error
	SendPasswordReset(ctx context.Context, to, resetToken string) error
}
