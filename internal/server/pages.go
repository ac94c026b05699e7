package server

import (
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/nav"
	"github.com/leadgrid/leadgrid/internal/observability"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, s.nav.Config().Landing)
}

// handleOneSegment disambiguates /<seg>: a segment containing a dot is a
// page file served without a tenant namespace; anything else is a tenant
// namespace root, which lands on the landing page.
func (s *Server) handleOneSegment(w http.ResponseWriter, r *http.Request) {
	seg := chi.URLParam(r, "seg")
	if strings.Contains(seg, ".") {
		s.renderPage(w, r, stripPageExt(seg))
		return
	}
	s.renderPage(w, r, s.nav.Config().Landing)
}

func (s *Server) handleNamespacedPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, stripPageExt(chi.URLParam(r, "page")))
}

func stripPageExt(seg string) string {
	for _, ext := range []string{".html", ".htm"} {
		seg = strings.TrimSuffix(seg, ext)
	}
	return seg
}

// renderPage builds the navigation model for the request, applies the
// authenticated user to it, and writes the full page. Unknown slugs still
// render the shell with a not-found content region and a 404 status;
// navigation is never the reason a page fails.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, slug string) {
	cfg := s.nav.Config()
	pillarID, pageID, found := cfg.FindPage(slug)

	m := s.nav.Build(r.URL.Path, pillarID, pageID)
	s.nav.ApplyAuth(r.Context(), m, auth.FromContext(r.Context()))

	pillarLabel := pillarID
	if pillarLabel == "" {
		pillarLabel = "none"
	}
	observability.NavRenders.WithLabelValues(pillarLabel).Inc()

	var content g.Node
	title := cfg.Brand
	if found {
		if p, ok := cfg.Pillar(pillarID); ok {
			for _, pg := range p.Pages {
				if pg.ID == pageID {
					title = pg.Label + " | " + cfg.Brand
					content = pagePlaceholder(pg.Label, p.Subtitle)
				}
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !found {
		w.WriteHeader(http.StatusNotFound)
		content = pagePlaceholder("Not found", "The page you are looking for does not exist.")
	}
	if err := layout(title, pillarID, pageID, nav.Render(m), content).Render(w); err != nil {
		s.log.Warn("page render failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
}

// layout is the document frame. The body carries the current pillar and
// page ids as data attributes, mirroring the contract the navigation's
// active-state highlighting is driven by.
func layout(title, pillarID, pageID string, navigation, content g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(title)),
				html.Script(html.Src("https://cdn.jsdelivr.net/npm/alpinejs@3/dist/cdn.min.js"), html.Defer()),
				html.StyleEl(g.Raw("[x-cloak]{display:none !important}.hidden{display:none !important}")),
			),
			html.Body(
				g.If(pillarID != "", g.Attr("data-pillar", pillarID)),
				g.If(pageID != "", g.Attr("data-page", pageID)),
				navigation,
				html.Main(
					html.Class("p-6"),
					content,
				),
			),
		),
	)
}

func pagePlaceholder(heading, sub string) g.Node {
	return html.Div(
		html.H1(html.Class("text-2xl font-bold"), g.Text(heading)),
		g.If(sub != "", html.P(html.Class("text-sm text-muted-foreground"), g.Text(sub))),
	)
}
