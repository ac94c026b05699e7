package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHref(t *testing.T) {
	tests := []struct {
		name      string
		href      string
		rootLevel bool
		namespace string
		want      string
	}{
		{"namespaced strips extension", "contacts.html", false, "acme", "/acme/contacts"},
		{"no namespace leaves href untouched", "contacts.html", false, "", "contacts.html"},
		{"root level ignores namespace", "admin.html", true, "acme", "/admin.html"},
		{"root level without namespace", "admin.html", true, "", "/admin.html"},
		{"root level keeps extension and path", "admin/costs.html", true, "acme", "/admin/costs.html"},
		{"htm suffix also stripped", "leads.htm", false, "acme", "/acme/leads"},
		{"extensionless href", "leads", false, "acme", "/acme/leads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildHref(tt.href, tt.rootLevel, tt.namespace))
		})
	}
}

func TestStripExt(t *testing.T) {
	assert.Equal(t, "contacts", stripExt("contacts.html"))
	assert.Equal(t, "contacts", stripExt("contacts.htm"))
	assert.Equal(t, "contacts", stripExt("contacts"))
	assert.Equal(t, "a.b", stripExt("a.b")) // only html-style suffixes
}

func TestRewriteHref(t *testing.T) {
	assert.Equal(t, "/acme/contacts", rewriteHref("contacts.html", "acme"))
	// Root-absolute links are left alone, whatever they contain.
	assert.Equal(t, "/acme/contacts", rewriteHref("/acme/contacts", "other"))
	assert.Equal(t, "/admin.html", rewriteHref("/admin.html", "acme"))
}
