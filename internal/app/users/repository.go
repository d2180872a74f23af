package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository is the account store. Lookups return ErrNotFound when nothing
// matches. The *WithVerification and ConfirmVerification writes are atomic:
// either every row changes or none does.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error

	// CreateWithVerification inserts u and v, pointing v at the new user.
	CreateWithVerification(ctx context.Context, u *User, v *Verification) error
	// UpdateWithVerification saves u and replaces its pending codes with v.
	UpdateWithVerification(ctx context.Context, u *User, v *Verification) error
	FindVerificationByCode(ctx context.Context, code string) (*Verification, error)
	// ConfirmVerification marks v's user verified and consumes v.
	ConfirmVerification(ctx context.Context, v *Verification) error
}

// Mailer delivers the address verification email.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, code string) error
}

// TokenSigner issues session tokens.
type TokenSigner interface {
	Sign(userID int64) (string, error)
}
