package web

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ilexagri/website/internal/catalog"
	"github.com/ilexagri/website/internal/common"
)

const showcaseColumns = 3

// ShowcaseTab is one range in the tabbed product showcase.
type ShowcaseTab struct {
	Category catalog.Category
	Products []catalog.Product
}

// Home renders the landing page. current is the slug of the open tab; an
// unknown slug opens the first tab.
func Home(page Page, tabs []ShowcaseTab, current string) g.Node {
	return Layout(page,
		Section(
			Class("hero"),
			H1(g.Text("Crop nutrition that works with the plant")),
			P(g.Text("Phosphites, trace elements, biostimulants and foliar feeds, formulated for UK growers and backed by agronomic support.")),
			A(Href("/contact"), g.Text("Talk to an agronomist")),
		),
		showcase(tabs, current),
	)
}

func showcase(tabs []ShowcaseTab, current string) g.Node {
	if len(tabs) == 0 {
		return nil
	}
	open := tabs[0]
	for _, t := range tabs {
		if t.Category.Slug == current {
			open = t
			break
		}
	}
	return Section(
		ID("showcase"),
		H2(g.Text("Our products")),
		Ul(
			Class("tabs"),
			g.Attr("role", "tablist"),
			g.Group(g.Map(tabs, func(t ShowcaseTab) g.Node {
				active := t.Category.Slug == open.Category.Slug
				return Li(
					g.If(active, Class("active")),
					A(
						Href("/?tab="+url.QueryEscape(t.Category.Slug)+"#showcase"),
						g.Attr("role", "tab"),
						g.Attr("aria-selected", boolAttr(active)),
						g.Text(t.Category.Name),
					),
				)
			})),
		),
		Div(
			g.Attr("role", "tabpanel"),
			P(g.Text(open.Category.Summary)),
			g.Group(g.Map(common.Chunk(open.Products, showcaseColumns), productRow)),
			A(Href(open.Category.URL()), g.Textf("View the %s", open.Category.Name)),
		),
	)
}

func productRow(row []catalog.Product) g.Node {
	return Div(Class("grid"), g.Group(g.Map(row, productCard)))
}

func productCard(p catalog.Product) g.Node {
	return Article(
		Class("card"),
		H3(A(Href(p.URL()), g.Text(p.Name))),
		P(g.Text(p.Tagline)),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
