package nav

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/leadgrid/leadgrid/internal/observability"
)

// TenantDirectory lists the slugs of active tenants. The tenants package
// provides the backend-API implementation; tests substitute fakes.
type TenantDirectory interface {
	ActiveSlugs(ctx context.Context) ([]string, error)
}

// SwitchOption is one selectable tenant in the switcher, with the URL a
// selection navigates to.
type SwitchOption struct {
	Slug   string
	Target string
}

// Switcher is the tenant-selection control. It is populated synchronously
// from the user's own namespace memberships so it renders usably at once;
// for super admins an asynchronous refresh replaces the option list with
// the authoritative active-tenant set when it resolves. The last writer
// wins and a failed refresh keeps the fallback, so the refresh is an
// enhancement rather than a correctness requirement.
type Switcher struct {
	mu      sync.Mutex
	options []SwitchOption

	selected string
	path     string
	current  string
	landing  string
}

func newSwitcher(slugs []string, current, path, landing string) *Switcher {
	s := &Switcher{
		path:    path,
		current: current,
		landing: landing,
	}
	s.setOptions(slugs)
	return s
}

func (s *Switcher) setOptions(slugs []string) {
	opts := make([]SwitchOption, 0, len(slugs))
	selected := ""
	for _, slug := range slugs {
		opts = append(opts, SwitchOption{
			Slug:   slug,
			Target: SwitchTarget(s.path, s.current, slug, s.landing),
		})
		if slug == s.current {
			selected = slug
		}
	}
	s.mu.Lock()
	s.options = opts
	s.selected = selected
	s.mu.Unlock()
}

// Options returns a snapshot of the current option list.
func (s *Switcher) Options() []SwitchOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SwitchOption, len(s.options))
	copy(out, s.options)
	return out
}

// Selected returns the pre-selected slug, "" when the current namespace is
// not among the options.
func (s *Switcher) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Refresh replaces the option list with the directory's active tenants.
// Failure is swallowed: the synchronous fallback list stays in effect and
// the error is only logged. No retry.
func (s *Switcher) Refresh(ctx context.Context, dir TenantDirectory, log *zap.Logger) {
	slugs, err := dir.ActiveSlugs(ctx)
	if err != nil {
		observability.TenantFetches.WithLabelValues("error").Inc()
		if log != nil {
			log.Debug("tenant list refresh failed, keeping fallback", zap.Error(err))
		}
		return
	}
	observability.TenantFetches.WithLabelValues("ok").Inc()
	sort.Strings(slugs)
	s.setOptions(slugs)
}

// SwitchTarget computes the URL a tenant switch navigates to: the sub-path
// under the current namespace carried over to the new one. An empty
// remainder, or a bare index marker, defaults to the landing page. The
// result is always a full navigation; no client-side route state survives
// a tenant switch.
func SwitchTarget(path, current, next, landing string) string {
	sub := path
	if current != "" {
		sub = strings.TrimPrefix(sub, "/"+current)
	}
	sub = strings.Trim(sub, "/")
	if sub == "" || sub == "index" {
		sub = landing
	}
	return "/" + next + "/" + sub
}
