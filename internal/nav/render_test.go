package nav

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadgrid/leadgrid/internal/auth"
)

func renderToString(t *testing.T, m *Model) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Render(m).Render(&sb))
	return sb.String()
}

func TestRenderNil(t *testing.T) {
	assert.Nil(t, Render(nil))
}

func TestRenderSkeleton(t *testing.T) {
	n := New(gatedConfig(), nil)
	m := n.Build("/acme/leads", "pipeline", "leads")

	out := renderToString(t, m)

	assert.Contains(t, out, `href="/acme/leads"`)
	assert.Contains(t, out, `data-pillar="pipeline"`)
	assert.Contains(t, out, `data-min-role="admin"`)
	assert.Contains(t, out, `data-min-role="viewer"`)
	// Empty switcher mount is present before auth.
	assert.Contains(t, out, `id="ns-switcher"`)
	assert.NotContains(t, out, "<select")
}

func TestRenderGearToggleComposition(t *testing.T) {
	n := New(gatedConfig(), nil)
	m := n.Build("/acme/leads", "pipeline", "leads")

	out := renderToString(t, m)

	// The trigger stops propagation so opening cannot fire the
	// outside-click closer in the same dispatch; the dropdown closes on any
	// click outside the control's subtree.
	assert.Contains(t, out, `@click.stop="open = !open"`)
	assert.Contains(t, out, `@click.outside="open = false"`)
	assert.Contains(t, out, `x-cloak`)
}

func TestRenderGating(t *testing.T) {
	n := New(gatedConfig(), nil)
	ctx := context.Background()

	m := n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(ctx, m, &auth.User{Roles: map[string]string{"acme": "viewer"}})
	out := renderToString(t, m)

	// Gear is admin-gated; viewer sees none of it.
	assert.NotContains(t, out, `aria-label="Settings"`)

	m = n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(ctx, m, &auth.User{Roles: map[string]string{"acme": "admin"}})
	out = renderToString(t, m)

	assert.Contains(t, out, `aria-label="Settings"`)
	// The super-only section stays hidden for a plain admin.
	assert.Contains(t, out, `data-super-only="true"`)
	assert.Regexp(t, `class="py-1 hidden"[^>]*data-super-only`, out)
	assert.NotContains(t, out, "super-admin ring-1")
}

func TestRenderSuperAdmin(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{
		IsSuperAdmin: true,
		DisplayName:  "Root",
	})

	out := renderToString(t, m)

	assert.Contains(t, out, ">Super<")
	assert.Contains(t, out, "super-admin ring-1")
	assert.Contains(t, out, "Root")
}

func TestRenderSwitcherSelect(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/globex/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{
		Roles: map[string]string{"globex": "viewer", "acme": "viewer"},
	})

	out := renderToString(t, m)

	assert.Contains(t, out, "<select")
	assert.Contains(t, out, `value="/acme/leads"`)
	// The current namespace is pre-selected.
	assert.Regexp(t, `<option[^>]*value="/globex/leads"[^>]*selected`, out)
}

func TestRenderHiddenClassForGatedLinks(t *testing.T) {
	n := New(gatedConfig(), nil)

	m := n.Build("/acme/leads", "pipeline", "leads")
	n.ApplyAuth(context.Background(), m, &auth.User{Roles: map[string]string{"acme": "viewer"}})

	out := renderToString(t, m)

	// The admin-only sub-link is rendered but hidden.
	assert.Regexp(t, `class="[^"]*hidden"[^>]*data-min-role="admin"`, out)
}
