package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFound(page Page) g.Node {
	return Layout(page,
		H1(g.Text("Page not found")),
		P(g.Text("We couldn't find that page. It may have moved when we reorganised our product ranges.")),
		A(Href("/products"), g.Text("Browse all products")),
	)
}

func ServerError(page Page) g.Node {
	return Layout(page,
		H1(g.Text("Something went wrong")),
		P(g.Text("Please try again in a moment.")),
	)
}
