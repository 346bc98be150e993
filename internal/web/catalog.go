package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ilexagri/website/internal/catalog"
	"github.com/ilexagri/website/internal/common"
	"github.com/ilexagri/website/internal/nav"
)

// ProductIndex lists every range with its products.
func ProductIndex(page Page, tabs []ShowcaseTab) g.Node {
	return Layout(page,
		H1(g.Text("Products")),
		g.Group(g.Map(tabs, func(t ShowcaseTab) g.Node {
			return Section(
				H2(A(Href(t.Category.URL()), g.Text(t.Category.Name))),
				P(g.Text(t.Category.Summary)),
				Ul(g.Group(g.Map(t.Products, func(p catalog.Product) g.Node {
					return Li(A(Href(p.URL()), g.Text(p.Name)), g.Text(" - "+p.Tagline))
				}))),
			)
		})),
	)
}

// CategoryPage renders one product range.
func CategoryPage(page Page, crumbs []nav.Crumb, cat catalog.Category, products []catalog.Product) g.Node {
	return Layout(page,
		breadcrumbs(crumbs),
		H1(g.Text(cat.Name)),
		P(g.Text(cat.Summary)),
		g.If(len(products) == 0, P(g.Text("New products for this range are coming soon."))),
		g.Group(g.Map(common.Chunk(products, showcaseColumns), productRow)),
	)
}

func breadcrumbs(crumbs []nav.Crumb) g.Node {
	return Nav(
		g.Attr("aria-label", "Breadcrumb"),
		Ul(
			Class("breadcrumbs"),
			g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
				return Li(A(Href(c.Href), g.Text(c.Label)))
			})),
		),
	)
}
