package nav

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/tenants"
)

type fakeDirectory struct {
	slugs []string
	err   error
}

func (f fakeDirectory) ActiveSlugs(context.Context) ([]string, error) {
	return f.slugs, f.err
}

func TestSwitchTarget(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		current string
		next    string
		want    string
	}{
		{"carries sub-path", "/acme/contacts", "acme", "globex", "/globex/contacts"},
		{"empty remainder lands on landing page", "/acme", "acme", "globex", "/globex/leads"},
		{"bare index marker lands on landing page", "/acme/index", "acme", "globex", "/globex/leads"},
		{"no current namespace", "/contacts", "", "globex", "/globex/contacts"},
		{"root path", "/", "", "globex", "/globex/leads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SwitchTarget(tt.path, tt.current, tt.next, "leads"))
		})
	}
}

func TestSwitcherSingleNamespaceNonSuper(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{Roles: map[string]string{"acme": "editor"}})

	assert.Nil(t, m.Switcher)
}

func TestSwitcherFromOwnMemberships(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/globex/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{
		Roles: map[string]string{"globex": "editor", "acme": "viewer"},
	})

	require.NotNil(t, m.Switcher)
	opts := m.Switcher.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "acme", opts[0].Slug)
	assert.Equal(t, "globex", opts[1].Slug)
	assert.Equal(t, "/acme/leads", opts[0].Target)
	assert.Equal(t, "globex", m.Switcher.Selected())
}

func TestSwitcherSuperAdminAlwaysGetsOne(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{IsSuperAdmin: true})

	require.NotNil(t, m.Switcher)
	assert.Empty(t, m.Switcher.Options())
}

func TestSwitcherRefreshReplacesOptions(t *testing.T) {
	sw := newSwitcher([]string{"acme"}, "acme", "/acme/contacts", "leads")

	sw.Refresh(context.Background(), fakeDirectory{slugs: []string{"globex", "acme", "initech"}}, nil)

	opts := sw.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, "acme", opts[0].Slug)
	assert.Equal(t, "globex", opts[1].Slug)
	assert.Equal(t, "initech", opts[2].Slug)
	assert.Equal(t, "/initech/contacts", opts[2].Target)
	assert.Equal(t, "acme", sw.Selected(), "current namespace stays pre-selected")
}

func TestSwitcherRefreshFailureKeepsFallback(t *testing.T) {
	sw := newSwitcher([]string{"acme", "globex"}, "acme", "/acme/contacts", "leads")

	sw.Refresh(context.Background(), fakeDirectory{err: errors.New("boom")}, nil)

	opts := sw.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "acme", opts[0].Slug)
	assert.Equal(t, "globex", opts[1].Slug)
}

func TestSwitcherRefreshAgainstFailingBackend(t *testing.T) {
	// The real directory client against a broken tenants API: the user's own
	// namespace list must remain in effect.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sw := newSwitcher([]string{"acme", "globex"}, "acme", "/acme/leads", "leads")
	sw.Refresh(context.Background(), tenants.NewClient(srv.URL, nil), nil)

	opts := sw.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "acme", opts[0].Slug)
}

func TestSwitcherLastWriterWins(t *testing.T) {
	sw := newSwitcher([]string{"acme"}, "acme", "/acme/leads", "leads")

	sw.Refresh(context.Background(), fakeDirectory{slugs: []string{"one"}}, nil)
	sw.Refresh(context.Background(), fakeDirectory{slugs: []string{"two"}}, nil)

	opts := sw.Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "two", opts[0].Slug)
}
