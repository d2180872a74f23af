package users

import (
	"time"

	"eats-backend/internal/auth"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string // argon2id encoded hash
	Role      auth.Role
	Verified  bool
}

type Verification struct {
	ID     int64
	Code   string
	UserID int64
}

// Output is the {ok, error} result every account operation returns.
type Output struct {
	OK    bool
	Error string
}

type CreateAccountInput struct {
	Email    string    `validate:"required,email"`
	Password string    `validate:"required"`
	Role     auth.Role `validate:"required"`
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	Output
	Token string
}

type UserProfileOutput struct {
	Output
	User *User
}

// EditProfileInput leaves fields that are nil untouched.
type EditProfileInput struct {
	Email    *string `validate:"omitnil,email"`
	Password *string `validate:"omitnil,min=1"`
}

func ok() Output {
	return Output{OK: true}
}

func fail(msg string) Output {
	return Output{Error: msg}
}
