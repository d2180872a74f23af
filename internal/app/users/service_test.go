package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"eats-backend/internal/auth"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

// fakeRepo is an in-memory Repository. Setting failWith makes every call fail;
// failVerificationWith fails only the writes that store a verification code,
// leaving the store untouched as a rolled back transaction would.
type fakeRepo struct {
	users                map[int64]*User
	verifications        map[int64]*Verification
	nextID               int64
	failWith             error
	failVerificationWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*User{}, verifications: map[int64]*Verification{}}
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) CreateWithVerification(_ context.Context, u *User, v *Verification) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.failVerificationWith != nil {
		return r.failVerificationWith
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	r.storeVerification(u.ID, v)
	return nil
}

func (r *fakeRepo) UpdateWithVerification(_ context.Context, u *User, v *Verification) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.failVerificationWith != nil {
		return r.failVerificationWith
	}
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	for id, old := range r.verifications {
		if old.UserID == u.ID {
			delete(r.verifications, id)
		}
	}
	r.storeVerification(u.ID, v)
	return nil
}

func (r *fakeRepo) storeVerification(userID int64, v *Verification) {
	r.nextID++
	v.ID, v.UserID = r.nextID, userID
	clone := *v
	r.verifications[v.ID] = &clone
}

func (r *fakeRepo) FindVerificationByCode(_ context.Context, code string) (*Verification, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, v := range r.verifications {
		if v.Code == code {
			clone := *v
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) ConfirmVerification(_ context.Context, v *Verification) error {
	if r.failWith != nil {
		return r.failWith
	}
	u, ok := r.users[v.UserID]
	if !ok {
		return ErrNotFound
	}
	u.Verified = true
	delete(r.verifications, v.ID)
	return nil
}

type sentMail struct{ email, code string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendVerificationEmail(_ context.Context, email, code string) error {
	m.sent = append(m.sent, sentMail{email, code})
	return m.err
}

type fakeSigner struct{ err error }

func (s fakeSigner) Sign(userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("signed-token-%d", userID), nil
}

var testArgon = auth.ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func newTestService(repo *fakeRepo, mail *fakeMailer, opts ...Option) *Service {
	codes := 0
	opts = append([]Option{WithArgonParams(testArgon)}, opts...)
	svc := NewService(repo, mail, fakeSigner{}, zerolog.Nop(), opts...)
	svc.newCode = func() string {
		codes++
		return fmt.Sprintf("code-%d", codes)
	}
	return svc
}

func seedUser(t *testing.T, svc *Service, email, password string, role auth.Role) *User {
	t.Helper()
	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: email, Password: password, Role: role})
	require.True(t, out.OK, out.Error)
	u, err := svc.repo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	return u
}

// ---------------------------------------------------------------------------
// CreateAccount
// ---------------------------------------------------------------------------

func TestCreateAccount_CreatesUserAndSendsVerification(t *testing.T) {
	repo, mail := newFakeRepo(), &fakeMailer{}
	svc := newTestService(repo, mail)

	out := svc.CreateAccount(context.Background(), CreateAccountInput{
		Email: "  Owner@Example.com ", Password: "secret", Role: auth.RoleOwner,
	})
	require.True(t, out.OK, out.Error)

	u, err := repo.FindByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleOwner, u.Role)
	assert.False(t, u.Verified)
	assert.NotEqual(t, "secret", u.Password, "password must be stored hashed")

	require.Len(t, mail.sent, 1)
	assert.Equal(t, sentMail{"owner@example.com", "code-1"}, mail.sent[0])
	require.Len(t, repo.verifications, 1)
}

func TestCreateAccount_FailsIfUserExists(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	seedUser(t, svc, "a@b.com", "pw", auth.RoleClient)

	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: "a@b.com", Password: "x", Role: auth.RoleClient})
	assert.Equal(t, Output{Error: msgEmailTaken}, out)
}

func TestCreateAccount_RejectsWildcardRole(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})

	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: "a@b.com", Password: "x", Role: auth.RoleAny})
	assert.False(t, out.OK)
	assert.Equal(t, msgInvalidAccount, out.Error)
}

func TestCreateAccount_RejectsInvalidEmail(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})

	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: "nope", Password: "x", Role: auth.RoleClient})
	assert.Equal(t, msgInvalidAccount, out.Error)
}

func TestCreateAccount_FailsOnRepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("db down")
	svc := newTestService(repo, &fakeMailer{})

	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: "a@b.com", Password: "x", Role: auth.RoleClient})
	assert.Equal(t, Output{Error: msgCreateFailed}, out)
}

func TestCreateAccount_VerificationFailureLeavesNoUser(t *testing.T) {
	repo, mail := newFakeRepo(), &fakeMailer{}
	repo.failVerificationWith = errors.New("verifications table locked")
	svc := newTestService(repo, mail)
	in := CreateAccountInput{Email: "a@b.com", Password: "x", Role: auth.RoleClient}

	out := svc.CreateAccount(context.Background(), in)
	assert.Equal(t, Output{Error: msgCreateFailed}, out)
	assert.Empty(t, repo.users)
	assert.Empty(t, repo.verifications)
	assert.Empty(t, mail.sent)

	repo.failVerificationWith = nil
	out = svc.CreateAccount(context.Background(), in)
	require.True(t, out.OK, out.Error)
	assert.Len(t, repo.users, 1)
	assert.Len(t, repo.verifications, 1)
}

func TestCreateAccount_MailFailureIsNotFatal(t *testing.T) {
	mail := &fakeMailer{err: errors.New("mailgun down")}
	svc := newTestService(newFakeRepo(), mail)

	out := svc.CreateAccount(context.Background(), CreateAccountInput{Email: "a@b.com", Password: "x", Role: auth.RoleClient})
	assert.True(t, out.OK)
	assert.Len(t, mail.sent, 1)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestLogin_FailsIfUserDoesNotExist(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})

	out := svc.Login(context.Background(), LoginInput{Email: "bs@email.com", Password: "bs.password"})
	assert.Equal(t, LoginOutput{Output: fail(msgUserNotFound)}, out)
}

func TestLogin_FailsIfPasswordIsWrong(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	seedUser(t, svc, "bs@email.com", "right", auth.RoleClient)

	out := svc.Login(context.Background(), LoginInput{Email: "bs@email.com", Password: "wrong"})
	assert.Equal(t, LoginOutput{Output: fail(msgWrongPassword)}, out)
}

func TestLogin_ReturnsTokenIfPasswordCorrect(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	u := seedUser(t, svc, "bs@email.com", "right", auth.RoleClient)

	out := svc.Login(context.Background(), LoginInput{Email: "BS@email.com", Password: "right"})
	assert.Equal(t, LoginOutput{Output: ok(), Token: fmt.Sprintf("signed-token-%d", u.ID)}, out)
}

func TestLogin_SignerFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeMailer{})
	seedUser(t, svc, "bs@email.com", "right", auth.RoleClient)
	svc.tokens = fakeSigner{err: errors.New("boom")}

	out := svc.Login(context.Background(), LoginInput{Email: "bs@email.com", Password: "right"})
	assert.Equal(t, msgLoginFailed, out.Error)
	assert.Empty(t, out.Token)
}

func TestLogin_ThrottlesPerEmail(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{}, WithLoginRate(rate.Limit(0.0001), 2))
	seedUser(t, svc, "bs@email.com", "right", auth.RoleClient)

	for i := 0; i < 2; i++ {
		out := svc.Login(context.Background(), LoginInput{Email: "bs@email.com", Password: "wrong"})
		assert.Equal(t, msgWrongPassword, out.Error)
	}
	out := svc.Login(context.Background(), LoginInput{Email: "bs@email.com", Password: "right"})
	assert.Equal(t, msgTooManyAttempts, out.Error)

	// Other accounts keep their own budget.
	out = svc.Login(context.Background(), LoginInput{Email: "other@email.com", Password: "x"})
	assert.Equal(t, msgUserNotFound, out.Error)
}

// ---------------------------------------------------------------------------
// FindByID / UserProfile
// ---------------------------------------------------------------------------

func TestFindByID(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	u := seedUser(t, svc, "a@b.com", "pw", auth.RoleDelivery)

	got, err := svc.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleDelivery, got.Role)

	_, err = svc.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserProfile(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	u := seedUser(t, svc, "a@b.com", "pw", auth.RoleClient)

	out := svc.UserProfile(context.Background(), u.ID)
	require.True(t, out.OK)
	assert.Equal(t, "a@b.com", out.User.Email)

	out = svc.UserProfile(context.Background(), 999)
	assert.Equal(t, UserProfileOutput{Output: fail(msgUserNotFound)}, out)
}

// ---------------------------------------------------------------------------
// EditProfile
// ---------------------------------------------------------------------------

func TestEditProfile_ChangeEmailResetsVerification(t *testing.T) {
	repo, mail := newFakeRepo(), &fakeMailer{}
	svc := newTestService(repo, mail)
	u := seedUser(t, svc, "old@b.com", "pw", auth.RoleClient)
	require.True(t, svc.VerifyEmail(context.Background(), "code-1").OK)

	newEmail := "new@b.com"
	out := svc.EditProfile(context.Background(), u.ID, EditProfileInput{Email: &newEmail})
	require.True(t, out.OK, out.Error)

	got, _ := repo.FindByID(context.Background(), u.ID)
	assert.Equal(t, "new@b.com", got.Email)
	assert.False(t, got.Verified)
	require.Len(t, repo.verifications, 1)
	assert.Equal(t, sentMail{"new@b.com", "code-2"}, mail.sent[len(mail.sent)-1])
}

func TestEditProfile_VerificationFailureKeepsOldEmail(t *testing.T) {
	repo, mail := newFakeRepo(), &fakeMailer{}
	svc := newTestService(repo, mail)
	u := seedUser(t, svc, "old@b.com", "pw", auth.RoleClient)
	require.True(t, svc.VerifyEmail(context.Background(), "code-1").OK)
	repo.failVerificationWith = errors.New("verifications table locked")

	newEmail := "new@b.com"
	out := svc.EditProfile(context.Background(), u.ID, EditProfileInput{Email: &newEmail})
	assert.Equal(t, fail(msgProfileFailed), out)

	got, _ := repo.FindByID(context.Background(), u.ID)
	assert.Equal(t, "old@b.com", got.Email)
	assert.True(t, got.Verified)
	assert.Len(t, mail.sent, 1)

	repo.failVerificationWith = nil
	require.True(t, svc.EditProfile(context.Background(), u.ID, EditProfileInput{Email: &newEmail}).OK)
	got, _ = repo.FindByID(context.Background(), u.ID)
	assert.Equal(t, "new@b.com", got.Email)
}

func TestEditProfile_ChangePassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeMailer{})
	u := seedUser(t, svc, "a@b.com", "old", auth.RoleClient)

	pw := "new"
	require.True(t, svc.EditProfile(context.Background(), u.ID, EditProfileInput{Password: &pw}).OK)

	assert.Equal(t, msgWrongPassword, svc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "old"}).Error)
	assert.True(t, svc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "new"}).OK)
}

func TestEditProfile_EmailTaken(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})
	u := seedUser(t, svc, "a@b.com", "pw", auth.RoleClient)
	seedUser(t, svc, "taken@b.com", "pw", auth.RoleClient)

	email := "taken@b.com"
	out := svc.EditProfile(context.Background(), u.ID, EditProfileInput{Email: &email})
	assert.Equal(t, fail(msgEmailTaken), out)
}

func TestEditProfile_UnknownUser(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})

	pw := "x"
	assert.Equal(t, fail(msgUserNotFound), svc.EditProfile(context.Background(), 42, EditProfileInput{Password: &pw}))
}

// ---------------------------------------------------------------------------
// VerifyEmail
// ---------------------------------------------------------------------------

func TestVerifyEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeMailer{})
	u := seedUser(t, svc, "a@b.com", "pw", auth.RoleClient)

	require.True(t, svc.VerifyEmail(context.Background(), "code-1").OK)

	got, _ := repo.FindByID(context.Background(), u.ID)
	assert.True(t, got.Verified)
	assert.Empty(t, repo.verifications)
}

func TestVerifyEmail_UnknownCode(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMailer{})

	assert.Equal(t, fail(msgVerifyNotFound), svc.VerifyEmail(context.Background(), "missing"))
}
