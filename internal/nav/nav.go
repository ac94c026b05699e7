package nav

import (
	"context"

	"go.uber.org/zap"

	"github.com/leadgrid/leadgrid/internal/auth"
)

const defaultLogoutPath = "/logout"

// Nav builds and authorizes navigation models for requests. The auth
// capabilities and the tenant directory are injected at construction; both
// are optional and their absence only narrows what the shell shows.
type Nav struct {
	cfg      Config
	provider auth.Provider
	resolver Resolver
	tenants  TenantDirectory
	log      *zap.Logger
}

// Option configures a Nav.
type Option func(*Nav)

// WithTenantDirectory wires the directory backing the super-admin tenant
// switcher refresh.
func WithTenantDirectory(dir TenantDirectory) Option {
	return func(n *Nav) { n.tenants = dir }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(n *Nav) { n.log = log }
}

// New creates a Nav for the given configuration. provider may be nil, in
// which case namespace resolution falls back to URL parsing and the logout
// control points at the default logout path.
func New(cfg Config, provider auth.Provider, opts ...Option) *Nav {
	n := &Nav{
		cfg:      cfg,
		provider: provider,
		resolver: Resolver{Provider: provider},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Config returns the navigation tree.
func (n *Nav) Config() Config { return n.cfg }

// Build constructs the ungated skeleton model for a request: pillar links,
// the sub-navigation of the active pillar (only when it has more than one
// page), and the settings dropdown, with hrefs resolved against whatever
// namespace is knowable at build time. pillarID and pageID drive active
// highlighting; ids that match nothing highlight nothing.
func (n *Nav) Build(path, pillarID, pageID string) *Model {
	ns := n.resolver.Resolve(path)

	m := &Model{
		Brand:       n.cfg.Brand,
		Namespace:   ns,
		Path:        path,
		GearVisible: true,
		LogoutPath:  defaultLogoutPath,
	}
	if n.provider != nil && n.provider.LogoutPath() != "" {
		m.LogoutPath = n.provider.LogoutPath()
	}

	for _, p := range n.cfg.Pillars {
		m.Pillars = append(m.Pillars, PillarLink{
			ID:       p.ID,
			Label:    p.Label,
			Subtitle: p.Subtitle,
			Icon:     p.Icon,
			Href:     BuildHref(pillarHref(p), false, ns),
			Active:   p.ID == pillarID,
		})
	}

	if active, ok := n.cfg.Pillar(pillarID); ok && len(active.Pages) > 1 {
		for _, pg := range active.Pages {
			m.SubNav = append(m.SubNav, PageLink{
				ID:      pg.ID,
				Label:   pg.Label,
				Href:    BuildHref(pg.Href, false, ns),
				MinRole: pg.MinRole,
				Active:  pg.ID == pageID,
				Visible: true,
			})
		}
	}

	for _, sec := range n.cfg.Gear {
		view := GearSectionView{
			Header:    sec.Header,
			SuperOnly: sec.SuperOnly,
			Visible:   !sec.SuperOnly,
		}
		for _, it := range sec.Items {
			view.Items = append(view.Items, GearLink{
				ID:        it.ID,
				Label:     it.Label,
				Href:      BuildHref(it.Href, it.RootLevel, ns),
				MinRole:   it.MinRole,
				RootLevel: it.RootLevel,
				Visible:   true,
			})
		}
		m.Gear = append(m.Gear, view)
	}

	return m
}

// ApplyAuth is the post-authentication pass over an already-built model:
// role gating and identity (Model.ApplyAuth), namespace re-resolution (the
// auth layer may know the namespace when the skeleton did not), the tenant
// switcher, and the corrective href rewrite. Callable with a nil user as a
// no-op; never returns an error, missing pieces degrade by omission.
func (n *Nav) ApplyAuth(ctx context.Context, m *Model, user *auth.User) {
	if m == nil || user == nil {
		return
	}

	m.ApplyAuth(user)

	if ns := n.resolver.Resolve(m.Path); ns != "" {
		m.Namespace = ns
	}

	m.Switcher = n.buildSwitcher(ctx, m, user)
	m.RewriteHrefs()
}

// buildSwitcher populates the tenant switcher. Single-namespace users who
// are not super admins get none. Super admins additionally get an
// asynchronous authoritative refresh from the tenant directory. The
// goroutine outlives the request: the synchronous fallback has already
// rendered and the refresh only improves later renders.
func (n *Nav) buildSwitcher(ctx context.Context, m *Model, user *auth.User) *Switcher {
	if !user.IsSuperAdmin && len(user.Roles) < 2 {
		return nil
	}

	sw := newSwitcher(user.Namespaces(), m.Namespace, m.Path, n.cfg.Landing)

	if user.IsSuperAdmin && n.tenants != nil {
		go sw.Refresh(context.WithoutCancel(ctx), n.tenants, n.log)
	}

	return sw
}
