package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ilexagri/website/internal/analysis"
	"github.com/ilexagri/website/internal/catalog"
	"github.com/ilexagri/website/internal/nav"
)

// ProductView is everything a product page shows.
type ProductView struct {
	Product catalog.Product
	Crumbs  []nav.Crumb
	Chart   []analysis.ChartEntry
	Rows    []analysis.Row
	Contact ContactState
}

// ProductPage renders the single template shared by every product.
func ProductPage(page Page, v ProductView) g.Node {
	p := v.Product
	return Layout(page,
		breadcrumbs(v.Crumbs),
		H1(g.Text(p.Name)),
		g.If(p.Tagline != "", P(Class("tagline"), Strong(g.Text(p.Tagline)))),
		g.Group(g.Map(p.Description, func(para string) g.Node { return P(g.Text(para)) })),
		g.If(len(p.Benefits) > 0,
			Section(
				H2(g.Text("Benefits")),
				Ul(g.Group(g.Map(p.Benefits, func(b string) g.Node { return Li(g.Text(b)) }))),
			),
		),
		applicationTable(p.Application),
		analysisSection(p, v.Chart, v.Rows),
		Section(
			ID("enquire"),
			H2(g.Textf("Enquire about %s", p.Name)),
			ContactForm(v.Contact),
		),
	)
}

func applicationTable(t catalog.ApplicationTable) g.Node {
	if len(t.Rows) == 0 {
		return nil
	}
	return Section(
		H2(g.Text("Application rates")),
		Table(
			THead(Tr(g.Group(g.Map(t.Columns, func(c string) g.Node { return Th(g.Text(c)) })))),
			TBody(g.Group(g.Map(t.Rows, func(row []string) g.Node {
				return Tr(g.Group(g.Map(row, func(cell string) g.Node { return Td(g.Text(cell)) })))
			}))),
		),
		g.If(t.Notes != "", P(Small(g.Text(t.Notes)))),
	)
}

func analysisSection(p catalog.Product, entries []analysis.ChartEntry, rows []analysis.Row) g.Node {
	if len(rows) == 0 {
		return nil
	}
	return Section(
		ID("analysis"),
		H2(g.Text("Typical analysis")),
		Div(
			Class("analysis"),
			g.If(len(entries) > 0,
				Img(
					Src(p.URL()+"/analysis.svg"),
					Alt("Nutrient analysis of "+p.Name),
					g.Attr("width", "320"),
					g.Attr("height", "320"),
				),
			),
			g.If(len(entries) > 0, legend(entries)),
		),
		Table(
			Class("analysis-table"),
			THead(Tr(Th(g.Text("Nutrient")), Th(g.Text("Content")))),
			TBody(g.Group(g.Map(rows, func(r analysis.Row) g.Node {
				return Tr(Td(g.Text(r.Label)), Td(g.Text(r.Amount)))
			}))),
		),
	)
}

func legend(entries []analysis.ChartEntry) g.Node {
	return Ul(
		Class("legend"),
		g.Group(g.Map(entries, func(e analysis.ChartEntry) g.Node {
			return Li(
				g.Attr("title", e.FullLabel),
				Span(Class("swatch"), g.Attr("style", "background:"+e.Color())),
				g.Text(e.DisplayLabel+" "),
				Strong(g.Text(analysis.FormatPercent(e.Value))),
			)
		})),
		Li(Small(g.Textf("Total %s w/w", analysis.FormatPercent(analysis.Total(entries))))),
	)
}
