package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadgrid/leadgrid/internal/rbac"
)

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{
			name: "super admin ignores memberships",
			user: &User{IsSuperAdmin: true, Roles: map[string]string{"ns1": "viewer"}},
			want: rbac.RoleAdmin,
		},
		{
			name: "super admin with no memberships",
			user: &User{IsSuperAdmin: true},
			want: rbac.RoleAdmin,
		},
		{
			name: "maximum across memberships",
			user: &User{Roles: map[string]string{"ns1": "editor", "ns2": "viewer"}},
			want: rbac.RoleEditor,
		},
		{
			name: "no memberships defaults to viewer",
			user: &User{},
			want: rbac.RoleViewer,
		},
		{
			name: "unknown role strings contribute nothing",
			user: &User{Roles: map[string]string{"ns1": "owner"}},
			want: rbac.RoleViewer,
		},
		{
			name: "nil user",
			user: nil,
			want: rbac.RoleViewer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.EffectiveRole())
		})
	}
}

func TestUserNamespaces(t *testing.T) {
	u := &User{Roles: map[string]string{"zeta": "viewer", "acme": "admin", "mid": "editor"}}
	assert.Equal(t, []string{"acme", "mid", "zeta"}, u.Namespaces())

	var nilUser *User
	assert.Nil(t, nilUser.Namespaces())
}

func TestUserName(t *testing.T) {
	assert.Equal(t, "Ada", (&User{DisplayName: "Ada", Email: "a@x.io"}).Name())
	assert.Equal(t, "a@x.io", (&User{Email: "a@x.io"}).Name())
	assert.Equal(t, "", (&User{}).Name())
	var nilUser *User
	assert.Equal(t, "", nilUser.Name())
}

func TestTokenChecker(t *testing.T) {
	user := &User{DisplayName: "Dev"}
	checker := TokenChecker{Token: "sekrit", User: user}

	r := httptest.NewRequest("GET", "/", nil)
	got, err := checker.CheckAuth(context.Background(), r)
	require.NoError(t, err)
	assert.Nil(t, got, "missing header must be unauthenticated")

	r.Header.Set("Authorization", "Bearer wrong")
	got, err = checker.CheckAuth(context.Background(), r)
	require.NoError(t, err)
	assert.Nil(t, got)

	r.Header.Set("Authorization", "Bearer sekrit")
	got, err = checker.CheckAuth(context.Background(), r)
	require.NoError(t, err)
	assert.Same(t, user, got)

	// An empty configured token never authenticates anything.
	empty := TokenChecker{User: user}
	r.Header.Set("Authorization", "Bearer ")
	got, err = empty.CheckAuth(context.Background(), r)
	require.NoError(t, err)
	assert.Nil(t, got)
}
