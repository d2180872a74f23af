package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"eats-backend/internal/auth"
)

const (
	msgEmailTaken       = "There is a user with that email already"
	msgInvalidAccount   = "Invalid account details"
	msgCreateFailed     = "Couldn't create account"
	msgUserNotFound     = "User not found"
	msgWrongPassword    = "Wrong password"
	msgTooManyAttempts  = "Too many login attempts, try again later"
	msgLoginFailed      = "Can't log user in"
	msgProfileFailed    = "Could not update profile"
	msgVerifyNotFound   = "Verification not found"
	msgVerifyFailed     = "Could not verify email"
	defaultLoginRate    = rate.Limit(5.0 / 60.0)
	defaultLoginBurst   = 5
	loginLimiterIdleTTL = time.Hour
)

type Service struct {
	repo     Repository
	mail     Mailer
	tokens   TokenSigner
	argon    auth.ArgonParams
	logins   *keyedLimiter
	validate *validator.Validate
	newCode  func() string
	log      zerolog.Logger
}

type Option func(*Service)

// WithArgonParams overrides the password hashing cost.
func WithArgonParams(p auth.ArgonParams) Option {
	return func(s *Service) {
		s.argon = p
	}
}

// WithLoginRate sets how many login attempts per email are allowed.
func WithLoginRate(limit rate.Limit, burst int) Option {
	return func(s *Service) {
		s.logins = newKeyedLimiter(limit, burst, loginLimiterIdleTTL)
	}
}

func NewService(repo Repository, mail Mailer, tokens TokenSigner, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		mail:     mail,
		tokens:   tokens,
		argon:    auth.DefaultArgon,
		logins:   newKeyedLimiter(defaultLoginRate, defaultLoginBurst, loginLimiterIdleTTL),
		validate: validator.New(),
		newCode:  uuid.NewString,
		log:      log.With().Str("component", "user-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByID is the user directory lookup used by the request guard.
func (s *Service) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) Output {
	in.Email = normalizeEmail(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return fail(msgInvalidAccount)
	}
	if _, err := auth.ParseRole(string(in.Role)); err != nil {
		return fail(msgInvalidAccount)
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return fail(msgEmailTaken)
	case !errors.Is(err, ErrNotFound):
		s.log.Error().Err(err).Msg("lookup email")
		return fail(msgCreateFailed)
	}

	hash, err := auth.HashPassword(s.argon, in.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("hash password")
		return fail(msgCreateFailed)
	}
	user := &User{Email: in.Email, Password: hash, Role: in.Role}
	v := &Verification{Code: s.newCode()}
	if err := s.repo.CreateWithVerification(ctx, user, v); err != nil {
		s.log.Error().Err(err).Msg("create user")
		return fail(msgCreateFailed)
	}
	s.sendVerification(ctx, user, v)
	return ok()
}

func (s *Service) Login(ctx context.Context, in LoginInput) LoginOutput {
	in.Email = normalizeEmail(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return LoginOutput{Output: fail(msgUserNotFound)}
	}
	if !s.logins.allow(in.Email) {
		s.log.Warn().Str("email", in.Email).Msg("login throttled")
		return LoginOutput{Output: fail(msgTooManyAttempts)}
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	if errors.Is(err, ErrNotFound) {
		return LoginOutput{Output: fail(msgUserNotFound)}
	}
	if err != nil {
		s.log.Error().Err(err).Msg("lookup user for login")
		return LoginOutput{Output: fail(msgLoginFailed)}
	}

	match, err := auth.CheckPassword(in.Password, user.Password)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("check password")
		return LoginOutput{Output: fail(msgLoginFailed)}
	}
	if !match {
		return LoginOutput{Output: fail(msgWrongPassword)}
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("sign token")
		return LoginOutput{Output: fail(msgLoginFailed)}
	}
	return LoginOutput{Output: ok(), Token: token}
}

func (s *Service) UserProfile(ctx context.Context, id int64) UserProfileOutput {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error().Err(err).Int64("user_id", id).Msg("load profile")
		}
		return UserProfileOutput{Output: fail(msgUserNotFound)}
	}
	return UserProfileOutput{Output: ok(), User: user}
}

// EditProfile updates the caller's email and/or password. A new email must be
// verified again.
func (s *Service) EditProfile(ctx context.Context, userID int64, in EditProfileInput) Output {
	if err := s.validate.Struct(in); err != nil {
		return fail(msgProfileFailed)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return fail(msgUserNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("load user for edit")
		return fail(msgProfileFailed)
	}

	emailChanged := false
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			other, err := s.repo.FindByEmail(ctx, email)
			if err == nil && other.ID != user.ID {
				return fail(msgEmailTaken)
			}
			if err != nil && !errors.Is(err, ErrNotFound) {
				s.log.Error().Err(err).Msg("lookup email for edit")
				return fail(msgProfileFailed)
			}
			user.Email = email
			user.Verified = false
			emailChanged = true
		}
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(s.argon, *in.Password)
		if err != nil {
			s.log.Error().Err(err).Msg("hash password")
			return fail(msgProfileFailed)
		}
		user.Password = hash
	}

	if !emailChanged {
		if err := s.repo.Update(ctx, user); err != nil {
			s.log.Error().Err(err).Int64("user_id", userID).Msg("update user")
			return fail(msgProfileFailed)
		}
		return ok()
	}

	v := &Verification{Code: s.newCode(), UserID: user.ID}
	if err := s.repo.UpdateWithVerification(ctx, user, v); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("update user")
		return fail(msgProfileFailed)
	}
	s.sendVerification(ctx, user, v)
	return ok()
}

func (s *Service) VerifyEmail(ctx context.Context, code string) Output {
	v, err := s.repo.FindVerificationByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, ErrNotFound) {
		return fail(msgVerifyNotFound)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("lookup verification")
		return fail(msgVerifyFailed)
	}

	if err := s.repo.ConfirmVerification(ctx, v); err != nil {
		s.log.Error().Err(err).Int64("user_id", v.UserID).Msg("confirm verification")
		return fail(msgVerifyFailed)
	}
	return ok()
}

// sendVerification mails a stored code. Delivery failures are logged only.
func (s *Service) sendVerification(ctx context.Context, user *User, v *Verification) {
	if err := s.mail.SendVerificationEmail(ctx, user.Email, v.Code); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("send verification email")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
