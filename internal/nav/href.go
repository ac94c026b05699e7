package nav

import "strings"

// stripExt removes an ".html"-style suffix from a page href.
func stripExt(href string) string {
	for _, ext := range []string{".html", ".htm"} {
		if strings.HasSuffix(href, ext) {
			return strings.TrimSuffix(href, ext)
		}
	}
	return href
}

// BuildHref computes a page link. Root-level hrefs are made root-absolute
// verbatim and never receive a namespace prefix. Otherwise, with no
// namespace resolved the href is returned unchanged (relative, extension
// intact) and the corrective rewrite pass fixes it up once the namespace is
// known; with a namespace the extension is stripped and the link becomes
// /<namespace>/<page>.
func BuildHref(href string, rootLevel bool, namespace string) string {
	if rootLevel {
		return "/" + href
	}
	if namespace == "" {
		return href
	}
	return "/" + namespace + "/" + stripExt(href)
}

// rewriteHref namespaces a link that is not already root-absolute.
// Root-absolute links are left untouched, which is what makes repeated
// rewrite passes idempotent.
func rewriteHref(href, namespace string) string {
	if strings.HasPrefix(href, "/") {
		return href
	}
	return "/" + namespace + "/" + stripExt(href)
}
