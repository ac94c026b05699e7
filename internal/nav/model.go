package nav

import (
	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/rbac"
)

// PillarLink is a rendered top-level pillar entry.
type PillarLink struct {
	ID       string
	Label    string
	Subtitle string
	Icon     string
	Href     string
	Active   bool
}

// PageLink is a rendered sub-navigation entry, tagged with its minimum role
// for the gating pass.
type PageLink struct {
	ID      string
	Label   string
	Href    string
	MinRole string
	Active  bool
	Visible bool
}

// GearLink is a rendered settings-dropdown entry.
type GearLink struct {
	ID        string
	Label     string
	Href      string
	MinRole   string
	RootLevel bool
	Visible   bool
}

// GearSectionView is a rendered settings-dropdown section.
type GearSectionView struct {
	Header    string
	SuperOnly bool
	Visible   bool
	Items     []GearLink
}

// Model is the view-model for one render of the navigation shell. Build
// produces the ungated skeleton; ApplyAuth and RewriteHrefs transform it in
// place once identity is known. The renderer consumes the model and is the
// only layer that produces HTML, so everything with real invariants stays
// testable without a browser.
type Model struct {
	Brand     string
	Namespace string
	Path      string

	Pillars []PillarLink
	SubNav  []PageLink // pages of the active pillar; empty unless it has more than one

	Gear        []GearSectionView
	GearVisible bool
	GearMarked  bool // super-admin marker on the settings trigger

	UserName   string
	SuperAdmin bool
	LogoutPath string

	Switcher *Switcher
}

// ApplyAuth applies role gating and identity to the model: per-node
// visibility from the fixed hierarchy, super-only sections, the
// admin-gated settings control, the Super badge, and the identity label.
// Safe to call with a nil user (no-op). Namespace correction and the href
// rewrite are orchestrated by Nav.ApplyAuth, which also builds the
// namespace switcher.
func (m *Model) ApplyAuth(user *auth.User) {
	if m == nil || user == nil {
		return
	}

	level := user.Level()

	for i := range m.SubNav {
		m.SubNav[i].Visible = rbac.Satisfies(level, m.SubNav[i].MinRole)
	}

	for i := range m.Gear {
		sec := &m.Gear[i]
		sec.Visible = !sec.SuperOnly || user.IsSuperAdmin
		for j := range sec.Items {
			sec.Items[j].Visible = rbac.Satisfies(level, sec.Items[j].MinRole)
		}
	}

	m.GearVisible = level >= rbac.LevelAdmin
	m.GearMarked = user.IsSuperAdmin
	m.SuperAdmin = user.IsSuperAdmin
	m.UserName = user.Name()
}

// RewriteHrefs is the corrective pass for links rendered before the
// namespace was resolvable: every pillar and sub-nav link that is not
// already root-absolute is stripped of its extension and prefixed with the
// resolved namespace. Already-absolute links are untouched, so the pass is
// idempotent and safe to invoke repeatedly (including by external callers
// after a client-side route change). No-op without a namespace.
func (m *Model) RewriteHrefs() {
	if m == nil || m.Namespace == "" {
		return
	}
	for i := range m.Pillars {
		m.Pillars[i].Href = rewriteHref(m.Pillars[i].Href, m.Namespace)
	}
	for i := range m.SubNav {
		m.SubNav[i].Href = rewriteHref(m.SubNav[i].Href, m.Namespace)
	}
}
