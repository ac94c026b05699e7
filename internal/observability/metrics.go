// Package observability holds the console's prometheus collectors and the
// OpenTelemetry tracing bootstrap.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NavRenders counts navigation shell renders by pillar.
	NavRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadgrid_nav_renders_total",
		Help: "Navigation shell renders, labelled by active pillar.",
	}, []string{"pillar"})

	// TenantFetches counts tenant directory fetches by outcome.
	TenantFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadgrid_tenant_fetch_total",
		Help: "Tenant directory fetches, labelled ok or error.",
	}, []string{"outcome"})

	// HTTPRequests counts served HTTP requests by status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadgrid_http_requests_total",
		Help: "Served HTTP requests, labelled by status class.",
	}, []string{"class"})
)
