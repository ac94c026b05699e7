// Package auth defines the user identity consumed by the navigation shell
// and the capability interfaces the shell expects from whatever
// authentication layer the host application wires in. The package is
// decoupled from any specific auth provider; adapters convert
// provider-specific sessions into User values.
package auth

import (
	"context"
	"net/http"
	"sort"

	"github.com/leadgrid/leadgrid/internal/rbac"
)

// User is an authenticated console user as supplied by the auth layer.
// Roles maps tenant namespace slugs to role strings.
type User struct {
	IsSuperAdmin bool              `json:"is_super_admin"`
	Roles        map[string]string `json:"roles"`
	DisplayName  string            `json:"display_name,omitempty"`
	Email        string            `json:"email,omitempty"`
}

// EffectiveRole resolves the user's single effective role: admin for super
// admins regardless of memberships, otherwise the highest-privileged role
// across all namespace memberships, otherwise viewer.
func (u *User) EffectiveRole() string {
	if u == nil {
		return rbac.RoleViewer
	}
	if u.IsSuperAdmin {
		return rbac.RoleAdmin
	}
	best := rbac.RoleViewer
	for _, r := range u.Roles {
		if rbac.Level(r) > rbac.Level(best) {
			best = r
		}
	}
	return best
}

// Level returns the numeric privilege level of the effective role.
func (u *User) Level() int {
	return rbac.Level(u.EffectiveRole())
}

// Namespaces returns the namespaces the user belongs to, sorted.
func (u *User) Namespaces() []string {
	if u == nil {
		return nil
	}
	out := make([]string, 0, len(u.Roles))
	for ns := range u.Roles {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Name returns the label for the identity slot: display name, falling back
// to email, falling back to empty.
func (u *User) Name() string {
	if u == nil {
		return ""
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Provider exposes the ambient capabilities the navigation shell borrows
// from the auth layer: the resolved tenant namespace, a bearer token for
// backend calls, and where the logout control should point. A nil Provider
// is valid; namespace resolution then falls back to URL parsing.
type Provider interface {
	// Namespace returns the authoritative tenant namespace, or "" when the
	// auth layer does not scope the session to a tenant.
	Namespace() string

	// Token returns the bearer token for authenticated backend calls.
	Token() string

	// LogoutPath returns the path the logout control navigates to.
	LogoutPath() string
}

// StaticProvider is a Provider with fixed values, used in development and
// in tests.
type StaticProvider struct {
	Tenant string
	Bearer string
	Logout string
}

func (p StaticProvider) Namespace() string  { return p.Tenant }
func (p StaticProvider) Token() string      { return p.Bearer }
func (p StaticProvider) LogoutPath() string { return p.Logout }

// Checker validates authentication state from HTTP requests. It returns
// nil (not an error) when the request is unauthenticated; errors are
// reserved for infrastructure failures.
type Checker interface {
	CheckAuth(ctx context.Context, r *http.Request) (*User, error)
}

// CheckerFunc is a function adapter for Checker.
type CheckerFunc func(ctx context.Context, r *http.Request) (*User, error)

// CheckAuth implements Checker.
func (f CheckerFunc) CheckAuth(ctx context.Context, r *http.Request) (*User, error) {
	return f(ctx, r)
}

// TokenChecker authenticates requests carrying a fixed bearer token and
// resolves them all to a single configured user. It exists for development
// and integration tests; production deployments wire a real Checker.
type TokenChecker struct {
	Token string
	User  *User
}

// CheckAuth implements Checker.
func (c TokenChecker) CheckAuth(_ context.Context, r *http.Request) (*User, error) {
	if c.Token == "" || r.Header.Get("Authorization") != "Bearer "+c.Token {
		return nil, nil
	}
	return c.User, nil
}
