// Package nav implements the console's role-gated, namespace-aware
// navigation shell. The package splits into a declarative configuration
// tree, pure view-model transforms (namespace resolution, href building,
// role gating, the corrective href rewrite), and a gomponents renderer
// that turns a computed model into HTML. Nothing in here performs network
// I/O except the namespace switcher's asynchronous tenant refresh.
package nav

import (
	"fmt"

	"github.com/leadgrid/leadgrid/internal/rbac"
)

// Page is a single navigable page belonging to exactly one pillar.
type Page struct {
	ID      string
	Label   string
	Href    string // relative, extension intact, e.g. "contacts.html"
	MinRole string
}

// Pillar is a top-level navigation section grouping related pages.
type Pillar struct {
	ID          string
	Label       string
	Subtitle    string
	Icon        string
	DefaultPage string // page id the pillar link points at; first page if empty
	Pages       []Page
}

// GearItem is an entry in the settings dropdown. RootLevel items' hrefs are
// never namespace-prefixed.
type GearItem struct {
	ID        string
	Label     string
	Href      string
	MinRole   string
	RootLevel bool
}

// GearSection is a header-labelled group of gear items. SuperOnly sections
// are shown to super admins exclusively.
type GearSection struct {
	Header    string
	SuperOnly bool
	Items     []GearItem
}

// Config is the full navigation tree. It is constructed once at startup and
// treated as immutable afterwards; the renderer and the auth gating pass
// read it but never mutate it.
type Config struct {
	Brand   string
	Landing string // page slug used when a tenant switch has no sub-path
	Pillars []Pillar
	Gear    []GearSection
}

// Default returns the console's navigation tree.
func Default() Config {
	return Config{
		Brand:   "LeadGrid",
		Landing: "leads",
		Pillars: []Pillar{
			{
				ID:       "pipeline",
				Label:    "Pipeline",
				Subtitle: "Leads & accounts",
				Icon:     "users",
				Pages: []Page{
					{ID: "leads", Label: "Leads", Href: "leads.html", MinRole: rbac.RoleViewer},
					{ID: "contacts", Label: "Contacts", Href: "contacts.html", MinRole: rbac.RoleViewer},
					{ID: "companies", Label: "Companies", Href: "companies.html", MinRole: rbac.RoleViewer},
				},
			},
			{
				ID:       "outreach",
				Label:    "Outreach",
				Subtitle: "Campaigns & conversations",
				Icon:     "activity",
				Pages: []Page{
					{ID: "campaigns", Label: "Campaigns", Href: "campaigns.html", MinRole: rbac.RoleEditor},
					{ID: "templates", Label: "Templates", Href: "templates.html", MinRole: rbac.RoleEditor},
					{ID: "inbox", Label: "Inbox", Href: "inbox.html", MinRole: rbac.RoleViewer},
				},
			},
			{
				ID:       "insights",
				Label:    "Insights",
				Subtitle: "Reporting",
				Icon:     "chart-bar",
				Pages: []Page{
					{ID: "reports", Label: "Reports", Href: "reports.html", MinRole: rbac.RoleViewer},
				},
			},
		},
		Gear: []GearSection{
			{
				Header: "Workspace",
				Items: []GearItem{
					{ID: "team", Label: "Team", Href: "team.html", MinRole: rbac.RoleAdmin},
					{ID: "integrations", Label: "Integrations", Href: "integrations.html", MinRole: rbac.RoleAdmin},
				},
			},
			{
				Header:    "System",
				SuperOnly: true,
				Items: []GearItem{
					{ID: "tenants", Label: "Tenants", Href: "admin/tenants.html", MinRole: rbac.RoleAdmin, RootLevel: true},
					{ID: "costs", Label: "Usage & Costs", Href: "admin/costs.html", MinRole: rbac.RoleAdmin, RootLevel: true},
				},
			},
		},
	}
}

// Pillar returns the pillar with the given id.
func (c Config) Pillar(id string) (Pillar, bool) {
	for _, p := range c.Pillars {
		if p.ID == id {
			return p, true
		}
	}
	return Pillar{}, false
}

// FindPage locates a page by its namespace-stripped slug (the href with its
// extension removed) and returns the owning pillar id and page id.
func (c Config) FindPage(slug string) (pillarID, pageID string, ok bool) {
	for _, p := range c.Pillars {
		for _, pg := range p.Pages {
			if stripExt(pg.Href) == slug || pg.ID == slug {
				return p.ID, pg.ID, true
			}
		}
	}
	return "", "", false
}

// pillarHref returns the href a pillar's top-level link points at: the
// default page when set, otherwise the first page.
func pillarHref(p Pillar) string {
	if len(p.Pages) == 0 {
		return ""
	}
	if p.DefaultPage != "" {
		for _, pg := range p.Pages {
			if pg.ID == p.DefaultPage {
				return pg.Href
			}
		}
	}
	return p.Pages[0].Href
}

// Validate reports configuration mistakes that the runtime gating would
// otherwise swallow silently: role strings outside the known hierarchy and
// duplicate ids. Gating itself still hides nodes with unknown requirements;
// Validate exists so misconfiguration fails loudly in tests and at startup.
func (c Config) Validate() error {
	seenPillar := map[string]bool{}
	for _, p := range c.Pillars {
		if seenPillar[p.ID] {
			return fmt.Errorf("duplicate pillar id %q", p.ID)
		}
		seenPillar[p.ID] = true

		seenPage := map[string]bool{}
		for _, pg := range p.Pages {
			if seenPage[pg.ID] {
				return fmt.Errorf("pillar %q: duplicate page id %q", p.ID, pg.ID)
			}
			seenPage[pg.ID] = true
			if !rbac.Known(pg.MinRole) {
				return fmt.Errorf("pillar %q page %q: unknown role %q", p.ID, pg.ID, pg.MinRole)
			}
		}
	}

	seenItem := map[string]bool{}
	for _, s := range c.Gear {
		for _, it := range s.Items {
			if seenItem[it.ID] {
				return fmt.Errorf("gear section %q: duplicate item id %q", s.Header, it.ID)
			}
			seenItem[it.ID] = true
			if !rbac.Known(it.MinRole) {
				return fmt.Errorf("gear section %q item %q: unknown role %q", s.Header, it.ID, it.MinRole)
			}
		}
	}

	return nil
}
