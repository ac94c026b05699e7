package nav

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui"
	"github.com/xraph/forgeui/components/badge"
	"github.com/xraph/forgeui/components/button"
	"github.com/xraph/forgeui/icons"
)

// Render turns a computed model into the two-tier navigation shell. Pages
// that carry no navigation simply never call it; a nil model renders
// nothing.
func Render(m *Model) g.Node {
	if m == nil {
		return nil
	}

	return html.Div(
		html.ID("leadgrid-nav"),
		topBar(m),
		subNav(m),
	)
}

// topBar renders the first tier: brand, pillar links, and the right-hand
// cluster (tenant switcher, identity, settings dropdown, logout).
func topBar(m *Model) g.Node {
	return html.Header(
		html.Class("sticky top-0 z-40 flex h-14 items-center gap-4 border-b bg-background/95 px-4 backdrop-blur"),

		// Brand
		html.A(
			html.Href("/"),
			html.Class("flex items-center gap-2 font-semibold"),
			icons.LayoutDashboard(icons.WithSize(22)),
			html.Span(g.Text(m.Brand)),
		),

		// Pillars
		html.Nav(
			html.Class("flex flex-1 items-center gap-1"),
			g.Group(pillarLinks(m)),
		),

		// Right-hand cluster
		html.Div(
			html.Class("flex items-center gap-2"),
			switcherControl(m.Switcher),
			identity(m),
			gearDropdown(m),
			logoutControl(m),
		),
	)
}

func pillarLinks(m *Model) []g.Node {
	nodes := make([]g.Node, 0, len(m.Pillars))
	for _, p := range m.Pillars {
		cls := "flex flex-col rounded-md px-3 py-1.5 text-sm hover:bg-accent"
		if p.Active {
			cls += " bg-accent font-medium"
		}
		nodes = append(nodes, html.A(
			html.Href(p.Href),
			html.Class(cls),
			g.Attr("data-pillar", p.ID),
			html.Div(
				html.Class("flex items-center gap-2"),
				navIcon(p.Icon),
				g.Text(p.Label),
			),
			g.If(p.Subtitle != "", html.Span(
				html.Class("text-[10px] text-muted-foreground"),
				g.Text(p.Subtitle),
			)),
		))
	}
	return nodes
}

// subNav renders the second tier for the active pillar. The model only
// carries sub-nav entries when the active pillar has more than one page.
func subNav(m *Model) g.Node {
	if len(m.SubNav) == 0 {
		return nil
	}

	links := make([]g.Node, 0, len(m.SubNav))
	for _, l := range m.SubNav {
		cls := "rounded-md px-3 py-1 text-sm hover:bg-accent"
		if l.Active {
			cls += " bg-accent font-medium"
		}
		if !l.Visible {
			cls += " hidden"
		}
		links = append(links, html.A(
			html.Href(l.Href),
			html.Class(cls),
			g.Attr("data-min-role", l.MinRole),
			g.Attr("data-page", l.ID),
			g.Text(l.Label),
		))
	}

	return html.Nav(
		html.Class("flex h-10 items-center gap-1 border-b bg-muted/40 px-4"),
		g.Group(links),
	)
}

// switcherControl renders the tenant-switcher mount. The slot is always
// present; the selector only appears for users with a choice to make.
// Selecting another tenant is a full navigation to the equivalent sub-path
// under the new namespace.
func switcherControl(s *Switcher) g.Node {
	if s == nil {
		return html.Div(html.ID("ns-switcher"))
	}

	selected := s.Selected()
	opts := []g.Node{}
	for _, opt := range s.Options() {
		opts = append(opts, html.Option(
			html.Value(opt.Target),
			g.If(opt.Slug == selected, html.Selected()),
			g.Text(opt.Slug),
		))
	}

	return html.Div(
		html.ID("ns-switcher"),
		html.Select(
			html.Class("h-8 rounded-md border bg-background px-2 text-sm"),
			g.Attr("aria-label", "Switch tenant"),
			g.Attr("@change", "window.location = $event.target.value"),
			g.Attr("x-data", ""),
			g.Group(opts),
		),
	)
}

// identity renders the user-identity slot: name plus the Super badge for
// super admins. Empty until the gating pass has run.
func identity(m *Model) g.Node {
	return html.Div(
		html.ID("nav-identity"),
		html.Class("flex items-center gap-2 text-sm"),
		g.If(m.UserName != "", html.Span(
			html.Class("text-muted-foreground"),
			g.Text(m.UserName),
		)),
		g.If(m.SuperAdmin, badge.Badge(
			"Super",
			badge.WithVariant(forgeui.VariantDestructive),
		)),
	)
}

// gearDropdown renders the settings control and its dropdown. The trigger
// stops click propagation so opening never races the outside-click closer
// in the same dispatch; any click outside the control's subtree closes it.
func gearDropdown(m *Model) g.Node {
	if !m.GearVisible {
		return nil
	}

	triggerOpts := []button.Option{
		button.WithVariant(forgeui.VariantGhost),
		button.WithSize(forgeui.SizeIcon),
		button.WithAttrs(
			g.Attr("@click.stop", "open = !open"),
			g.Attr("aria-label", "Settings"),
		),
	}
	if m.GearMarked {
		triggerOpts = append(triggerOpts, button.WithClass("super-admin ring-1 ring-destructive/40"))
	}

	return html.Div(
		html.Class("relative"),
		g.Attr("x-data", "{ open: false }"),

		button.Button(
			g.Group([]g.Node{icons.Settings(icons.WithSize(18))}),
			triggerOpts...,
		),

		html.Div(
			html.Class("absolute right-0 mt-2 w-56 rounded-md border bg-popover p-1 shadow-md"),
			g.Attr("x-show", "open"),
			g.Attr("x-cloak", ""),
			g.Attr("@click.outside", "open = false"),
			g.Group(gearSections(m.Gear)),
		),
	)
}

func gearSections(sections []GearSectionView) []g.Node {
	nodes := make([]g.Node, 0, len(sections))
	for _, sec := range sections {
		cls := "py-1"
		if !sec.Visible {
			cls += " hidden"
		}

		items := make([]g.Node, 0, len(sec.Items))
		for _, it := range sec.Items {
			itemCls := "block rounded-sm px-2 py-1.5 text-sm hover:bg-accent"
			if !it.Visible {
				itemCls += " hidden"
			}
			items = append(items, html.A(
				html.Href(it.Href),
				html.Class(itemCls),
				g.Attr("data-min-role", it.MinRole),
				g.Attr("data-gear-item", it.ID),
				g.Text(it.Label),
			))
		}

		nodes = append(nodes, html.Div(
			html.Class(cls),
			g.If(sec.SuperOnly, g.Attr("data-super-only", "true")),
			html.Div(
				html.Class("px-2 py-1 text-xs font-semibold text-muted-foreground"),
				g.Text(sec.Header),
			),
			g.Group(items),
		))
	}
	return nodes
}

func logoutControl(m *Model) g.Node {
	return html.A(
		html.Href(m.LogoutPath),
		html.Class("flex h-8 w-8 items-center justify-center rounded-md hover:bg-accent"),
		g.Attr("aria-label", "Log out"),
		icons.LogOut(icons.WithSize(18)),
	)
}
