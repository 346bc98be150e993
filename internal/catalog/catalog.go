package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ilexagri/website/internal/analysis"
	"github.com/ilexagri/website/internal/common"
)

var ErrNotFound = errors.New("not found")

// Category is a product range.
type Category struct {
	Name    string `yaml:"name" json:"name"`
	Summary string `yaml:"summary" json:"summary"`
	Slug    string `yaml:"-" json:"slug"`
}

func (c Category) URL() string {
	return common.GenerateCategoryURL(c.Name)
}

// ApplicationTable holds the recommended rates printed on a product page.
type ApplicationTable struct {
	Columns []string   `yaml:"columns" json:"columns"`
	Rows    [][]string `yaml:"rows" json:"rows"`
	Notes   string     `yaml:"notes" json:"notes,omitempty"`
}

// Product is the data behind one product page.
type Product struct {
	Name        string            `yaml:"name" json:"name"`
	Category    string            `yaml:"category" json:"category"`
	Tagline     string            `yaml:"tagline" json:"tagline"`
	Description []string          `yaml:"description" json:"description"`
	Benefits    []string          `yaml:"benefits" json:"benefits"`
	Application ApplicationTable  `yaml:"application" json:"application"`
	Analysis    analysis.Analysis `yaml:"analysis" json:"analysis"`
	Order       int               `yaml:"order" json:"-"`

	Slug         string `yaml:"-" json:"slug"`
	CategorySlug string `yaml:"-" json:"categorySlug"`
}

func (p Product) URL() string {
	return common.GenerateProductURL(p.Category, p.Name)
}

// Chart derives the pie chart entries for the product.
func (p Product) Chart() []analysis.ChartEntry {
	return analysis.Derive(p.Analysis)
}

// Catalog is the read-only set of ranges and products.
type Catalog struct {
	categories []Category
	products   map[string][]Product
}

type categoriesFile struct {
	Categories []Category `yaml:"categories"`
}

// Load reads categories.yaml and every products/*.yaml file from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, "categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	var cf categoriesFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if len(cf.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	c := &Catalog{products: make(map[string][]Product, len(cf.Categories))}
	byName := make(map[string]string, len(cf.Categories))
	for _, cat := range cf.Categories {
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Slug = common.Slug(cat.Name)
		if cat.Slug == "" {
			return nil, fmt.Errorf("category %q has no usable name", cat.Name)
		}
		if _, dup := c.products[cat.Slug]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Slug)
		}
		c.products[cat.Slug] = nil
		byName[cat.Name] = cat.Slug
		c.categories = append(c.categories, cat)
	}

	files, err := fs.Glob(fsys, "products/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	sort.Strings(files)
	seen := make(map[string]string, len(files))
	for _, file := range files {
		p, err := loadProduct(fsys, file)
		if err != nil {
			return nil, err
		}
		catSlug, ok := byName[p.Category]
		if !ok {
			return nil, fmt.Errorf("%s: unknown category %q", file, p.Category)
		}
		p.CategorySlug = catSlug
		key := catSlug + "/" + p.Slug
		if other, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s: product %q already defined in %s", file, key, other)
		}
		seen[key] = file
		c.products[catSlug] = append(c.products[catSlug], p)
	}

	for slug := range c.products {
		ps := c.products[slug]
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Order < ps[j].Order })
	}
	return c, nil
}

func loadProduct(fsys fs.FS, file string) (Product, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Product{}, fmt.Errorf("read %s: %w", file, err)
	}
	var p Product
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Product{}, fmt.Errorf("decode %s: %w", file, err)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Slug = common.Slug(p.Name)
	if p.Slug == "" {
		return Product{}, fmt.Errorf("%s: product has no usable name", path.Base(file))
	}
	cols := len(p.Application.Columns)
	for i, row := range p.Application.Rows {
		if len(row) != cols {
			return Product{}, fmt.Errorf("%s: application row %d has %d cells, want %d", file, i+1, len(row), cols)
		}
	}
	return p, nil
}

// Categories returns the ranges in authored order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

func (c *Catalog) Category(slug string) (Category, error) {
	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("category %q: %w", slug, ErrNotFound)
}

// Products lists the products of one range.
func (c *Catalog) Products(categorySlug string) ([]Product, error) {
	ps, ok := c.products[categorySlug]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", categorySlug, ErrNotFound)
	}
	return append([]Product(nil), ps...), nil
}

// All lists every product, range by range.
func (c *Catalog) All() []Product {
	var out []Product
	for _, cat := range c.categories {
		out = append(out, c.products[cat.Slug]...)
	}
	return out
}

func (c *Catalog) Product(categorySlug, productSlug string) (Product, error) {
	ps, ok := c.products[categorySlug]
	if !ok {
		return Product{}, fmt.Errorf("category %q: %w", categorySlug, ErrNotFound)
	}
	for _, p := range ps {
		if p.Slug == productSlug {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %q in %q: %w", productSlug, categorySlug, ErrNotFound)
}
