package nav

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"
)

// navIcon maps an icon key from the navigation configuration to its vector
// node.
func navIcon(name string) g.Node {
	size := icons.WithSize(18)

	switch name {
	case "home":
		return icons.Home(size)
	case "user", "users":
		return icons.User(size)
	case "activity":
		return icons.Activity(size)
	case "bar-chart", "chart-bar":
		return icons.ChartBar(size)
	case "chart-line":
		return icons.ChartLine(size)
	case "server":
		return icons.Server(size)
	case "settings":
		return icons.Settings(size)
	case "search":
		return icons.Search(size)
	case "bell":
		return icons.Bell(size)
	case "shield":
		return icons.Shield(size)
	case "file-text":
		return icons.FileText(size)
	case "credit-card":
		return icons.CreditCard(size)
	case "package":
		return icons.Box(size)
	case "log-out", "logout":
		return icons.LogOut(size)
	case "menu":
		return icons.Menu(size)
	default:
		return html.Span(
			html.Class("inline-flex h-[18px] w-[18px] items-center justify-center text-xs"),
			g.Text("•"),
		)
	}
}
