package nav

import (
	"strings"

	"github.com/ilexagri/website/internal/catalog"
)

// Link is one entry of the shared site header.
type Link struct {
	Label    string
	Href     string
	Active   bool
	Children []Link
}

// Build returns the header links for path, marking the section it belongs to.
func Build(path string, cats []catalog.Category) []Link {
	products := Link{Label: "Products", Href: "/products"}
	for _, c := range cats {
		href := c.URL()
		products.Children = append(products.Children, Link{
			Label:  c.Name,
			Href:   href,
			Active: within(path, href),
		})
	}
	products.Active = within(path, products.Href)

	return []Link{
		{Label: "Home", Href: "/", Active: path == "/"},
		products,
		{Label: "Contact", Href: "/contact", Active: within(path, "/contact")},
	}
}

func within(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Label string
	Href  string
}

// Breadcrumbs returns Home > Products > range > product; an empty product
// stops the trail at the range.
func Breadcrumbs(cat catalog.Category, product *catalog.Product) []Crumb {
	crumbs := []Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Products", Href: "/products"},
		{Label: cat.Name, Href: cat.URL()},
	}
	if product != nil {
		crumbs = append(crumbs, Crumb{Label: product.Name, Href: product.URL()})
	}
	return crumbs
}
