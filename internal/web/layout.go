package web

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ilexagri/website/internal/nav"
)

const siteName = "Ilex Crop Nutrition"

// Page carries what every page needs for the shared layout.
type Page struct {
	Title       string
	Description string
	Path        string
	Nav         []nav.Link
}

func (p Page) fullTitle() string {
	if p.Title == "" {
		return siteName
	}
	return p.Title + " | " + siteName
}

// Layout wraps body in the document shell, header and footer.
func Layout(page Page, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(page.fullTitle())),
				g.If(page.Description != "", Meta(Name("description"), Content(page.Description))),
				g.El("style", g.Raw(stylesheet)),
			),
			Body(
				siteHeader(page.Nav),
				Main(Class("container"), g.Group(body)),
				siteFooter(),
			),
		),
	)
}

// Render writes node to w.
func Render(w io.Writer, node g.Node) error {
	return node.Render(w)
}

func siteHeader(links []nav.Link) g.Node {
	return Header(
		Class("site-header"),
		Div(
			Class("container header-inner"),
			A(Class("brand"), Href("/"), g.Text(siteName)),
			Nav(
				g.Attr("aria-label", "Main"),
				Ul(
					Class("nav"),
					g.Group(g.Map(links, navItem)),
				),
			),
		),
	)
}

func navItem(l nav.Link) g.Node {
	return Li(
		g.If(l.Active, Class("active")),
		A(Href(l.Href), g.If(l.Active, g.Attr("aria-current", "page")), g.Text(l.Label)),
		g.If(len(l.Children) > 0,
			Ul(
				Class("subnav"),
				g.Group(g.Map(l.Children, func(c nav.Link) g.Node {
					return Li(
						g.If(c.Active, Class("active")),
						A(Href(c.Href), g.Text(c.Label)),
					)
				})),
			),
		),
	)
}

func siteFooter() g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container"),
			P(g.Text("Always read the label and product information before use.")),
			P(Small(g.Textf("© %s", siteName))),
		),
	)
}

const stylesheet = `
:root{--green:#2E7D32;--ink:#1b1f1b;--muted:#5f6b5f;--line:#dfe6df}
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,sans-serif;color:var(--ink);line-height:1.5}
a{color:var(--green)}
.container{max-width:1080px;margin:0 auto;padding:0 1rem}
.site-header{background:var(--green)}
.header-inner{display:flex;justify-content:space-between;align-items:center;min-height:64px}
.brand{color:#fff;font-weight:700;text-decoration:none;font-size:1.2rem}
.nav{list-style:none;display:flex;gap:1.25rem;margin:0;padding:0}
.nav>li{position:relative}
.nav>li>a{color:#fff;text-decoration:none}
.nav>li.active>a{text-decoration:underline}
.subnav{display:none;position:absolute;background:#fff;list-style:none;padding:.5rem;margin:0;min-width:240px;box-shadow:0 4px 12px rgba(0,0,0,.15)}
.nav>li:hover .subnav{display:block}
.subnav li.active a{font-weight:700}
.site-footer{border-top:1px solid var(--line);margin-top:3rem;padding:1rem 0;color:var(--muted)}
.hero{padding:3rem 0 1rem}
.tabs{display:flex;flex-wrap:wrap;gap:.5rem;list-style:none;padding:0;border-bottom:2px solid var(--line)}
.tabs a{display:block;padding:.5rem 1rem;text-decoration:none;border-radius:4px 4px 0 0}
.tabs li.active a{background:var(--green);color:#fff}
.grid{display:grid;grid-template-columns:repeat(3,1fr);gap:1rem;margin-bottom:1rem}
.card{border:1px solid var(--line);border-radius:6px;padding:1rem}
.breadcrumbs{list-style:none;display:flex;gap:.5rem;padding:0;color:var(--muted)}
.breadcrumbs li+li:before{content:"/";margin-right:.5rem}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid var(--line);padding:.4rem .6rem;text-align:left}
.analysis{display:flex;flex-wrap:wrap;gap:2rem;align-items:flex-start}
.legend{list-style:none;padding:0}
.swatch{display:inline-block;width:.9rem;height:.9rem;border-radius:2px;margin-right:.5rem;vertical-align:middle}
.field{margin-bottom:1rem}
.field label{display:block;font-weight:600}
.field input,.field textarea{width:100%;padding:.5rem;border:1px solid var(--line);border-radius:4px}
.field .error{color:#C62828}
.alert{padding:.75rem 1rem;border-radius:4px;margin-bottom:1rem}
.alert-error{background:#fdecea;color:#8a1c1c}
.alert-success{background:#e8f5e9;color:#1b5e20}
button{background:var(--green);color:#fff;border:0;padding:.6rem 1.4rem;border-radius:4px;cursor:pointer}
`
