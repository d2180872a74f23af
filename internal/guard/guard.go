// Package guard decides, per GraphQL root operation, whether a request may
// proceed and which user it runs as.
package guard

import (
	"context"
	"errors"
	"slices"
	"sort"

	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

// Outcome classifies a decision. Only Public and Granted allow the request.
type Outcome string

const (
	Public            Outcome = "public"
	MissingCredential Outcome = "missing_credential"
	InvalidCredential Outcome = "invalid_credential"
	UnknownSubject    Outcome = "unknown_subject"
	InsufficientRole  Outcome = "insufficient_role"
	Granted           Outcome = "granted"
)

// Verifier checks a raw session token.
type Verifier interface {
	Verify(token string) (auth.Claims, error)
}

// Directory resolves a subject id to its account.
type Directory interface {
	FindByID(ctx context.Context, id int64) (*users.User, error)
}

// Registry maps operation names ("Query.me", "Mutation.login") to the roles
// allowed to run them. Operations without an entry are public.
type Registry map[string][]auth.Role

// Register records the allow-list for operation. A nil or empty roles leaves
// the operation public.
func (r Registry) Register(operation string, roles ...auth.Role) {
	if len(roles) == 0 {
		delete(r, operation)
		return
	}
	r[operation] = slices.Clone(roles)
}

// Roles returns the allow-list for operation and whether one was declared.
func (r Registry) Roles(operation string) ([]auth.Role, bool) {
	roles, ok := r[operation]
	return roles, ok && len(roles) > 0
}

// PublicOf returns, sorted, the names in ops that have no allow-list.
func (r Registry) PublicOf(ops []string) []string {
	var out []string
	for _, op := range ops {
		if _, guarded := r.Roles(op); !guarded {
			out = append(out, op)
		}
	}
	sort.Strings(out)
	return out
}

// Decision is the result of Authorize. User is set whenever the subject was
// resolved, including InsufficientRole denials.
type Decision struct {
	Allowed bool
	User    *users.User
	Outcome Outcome
	// Err is the collaborator failure behind a denial, if any. It is for
	// logging and is never shown to clients.
	Err error
}

// Guard authorizes root operations. It holds no per-request state and is safe
// for concurrent use.
type Guard struct {
	registry  Registry
	verifier  Verifier
	directory Directory
}

func New(registry Registry, verifier Verifier, directory Directory) *Guard {
	if registry == nil {
		registry = Registry{}
	}
	return &Guard{registry: registry, verifier: verifier, directory: directory}
}

// Authorize decides whether token may run operation.
func (g *Guard) Authorize(ctx context.Context, operation, token string) Decision {
	roles, guarded := g.registry.Roles(operation)
	if !guarded {
		return Decision{Allowed: true, Outcome: Public}
	}
	if token == "" {
		return Decision{Outcome: MissingCredential}
	}

	claims, err := g.verifier.Verify(token)
	if err != nil {
		return Decision{Outcome: InvalidCredential, Err: err}
	}
	if claims.ID == nil {
		return Decision{Outcome: InvalidCredential, Err: auth.ErrMissingSubject}
	}

	user, err := g.directory.FindByID(ctx, *claims.ID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			err = nil
		}
		return Decision{Outcome: UnknownSubject, Err: err}
	}
	if user == nil {
		return Decision{Outcome: UnknownSubject}
	}

	d := Decision{User: user}
	if slices.Contains(roles, auth.RoleAny) || slices.Contains(roles, user.Role) {
		d.Allowed = true
		d.Outcome = Granted
		return d
	}
	d.Outcome = InsufficientRole
	return d
}
