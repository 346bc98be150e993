package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/ilexagri/website/internal/analysis"
	"github.com/ilexagri/website/internal/catalog"
	"github.com/ilexagri/website/internal/chart"
	"github.com/ilexagri/website/internal/contact"
	"github.com/ilexagri/website/internal/nav"
	"github.com/ilexagri/website/internal/web"
)

// Handlers serves the site pages and the small JSON API.
type Handlers struct {
	catalog *catalog.Catalog
	tabs    nav.Store
	contact *contact.Service
	charts  *chart.Cache
	logger  *zap.Logger
}

func NewHandlers(cat *catalog.Catalog, tabs nav.Store, contactSvc *contact.Service, charts *chart.Cache, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		catalog: cat,
		tabs:    tabs,
		contact: contactSvc,
		charts:  charts,
		logger:  logger,
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if tab := r.URL.Query().Get("tab"); tab != "" {
		if _, err := h.catalog.Category(tab); err == nil {
			h.tabs.Set(tab)
		}
	}
	page := h.page(r, "", "Phosphite, trace element, biostimulant and foliar crop nutrition products.")
	h.render(w, r, http.StatusOK, web.Home(page, h.showcaseTabs(), h.tabs.Current()))
}

func (h *Handlers) ProductIndex(w http.ResponseWriter, r *http.Request) {
	page := h.page(r, "Products", "All Ilex crop nutrition product ranges.")
	h.render(w, r, http.StatusOK, web.ProductIndex(page, h.showcaseTabs()))
}

func (h *Handlers) Category(w http.ResponseWriter, r *http.Request) {
	cat, err := h.catalog.Category(chi.URLParam(r, "category"))
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	products, err := h.catalog.Products(cat.Slug)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	page := h.page(r, cat.Name, cat.Summary)
	h.render(w, r, http.StatusOK, web.CategoryPage(page, nav.Breadcrumbs(cat, nil), cat, products))
}

func (h *Handlers) Product(w http.ResponseWriter, r *http.Request) {
	cat, p, err := h.lookupProduct(r)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	view := web.ProductView{
		Product: p,
		Crumbs:  nav.Breadcrumbs(cat, &p),
		Chart:   p.Chart(),
		Rows:    analysis.Rows(p.Analysis),
	}
	page := h.page(r, p.Name, p.Tagline)
	h.render(w, r, http.StatusOK, web.ProductPage(page, view))
}

func (h *Handlers) AnalysisChart(w http.ResponseWriter, r *http.Request) {
	_, p, err := h.lookupProduct(r)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}
	svg, err := h.charts.SVG(p.URL(), p.Chart())
	if errors.Is(err, chart.ErrNothingToPlot) {
		http.Error(w, "No chartable analysis for this product", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("render analysis chart", zap.String("product", p.URL()), zap.Error(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (h *Handlers) ContactPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(r, "Contact", "Get in touch with the Ilex agronomy team.")
	h.render(w, r, http.StatusOK, web.ContactPage(page, web.ContactState{}))
}

func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	form := contact.Form{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	res := h.contact.Handle(r.Context(), form)
	page := h.page(r, "Contact", "Get in touch with the Ilex agronomy team.")
	h.render(w, r, contactStatus(res), web.ContactPage(page, web.StateFromResult(res)))
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	page := h.page(r, "Not found", "")
	h.render(w, r, http.StatusNotFound, web.NotFound(page))
}

func (h *Handlers) APIProducts(w http.ResponseWriter, r *http.Request) {
	type productJSON struct {
		Name    string `json:"name"`
		Slug    string `json:"slug"`
		Tagline string `json:"tagline"`
		URL     string `json:"url"`
	}
	type categoryJSON struct {
		Name     string        `json:"name"`
		Slug     string        `json:"slug"`
		URL      string        `json:"url"`
		Products []productJSON `json:"products"`
	}
	data := []categoryJSON{}
	for _, t := range h.showcaseTabs() {
		c := categoryJSON{Name: t.Category.Name, Slug: t.Category.Slug, URL: t.Category.URL(), Products: []productJSON{}}
		for _, p := range t.Products {
			c.Products = append(c.Products, productJSON{Name: p.Name, Slug: p.Slug, Tagline: p.Tagline, URL: p.URL()})
		}
		data = append(data, c)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Products retrieved successfully",
		"data":    data,
	})
}

func (h *Handlers) APIAnalysis(w http.ResponseWriter, r *http.Request) {
	_, p, err := h.lookupProduct(r)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Product not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Failed to load product"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Analysis retrieved successfully",
		"data": map[string]any{
			"name":     p.Name,
			"url":      p.URL(),
			"analysis": p.Analysis,
			"chart":    p.Chart(),
		},
	})
}

func (h *Handlers) APIContact(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid JSON body"})
		return
	}
	res := h.contact.Handle(r.Context(), form)
	status := contactStatus(res)
	switch {
	case len(res.Errors) > 0:
		writeJSON(w, status, map[string]any{"message": "Please correct the highlighted fields", "errors": res.Errors})
	case res.Failed:
		writeJSON(w, status, map[string]any{"message": contact.FailureNotice})
	default:
		writeJSON(w, status, map[string]any{"message": "Message sent successfully"})
	}
}

func contactStatus(res contact.Result) int {
	switch {
	case len(res.Errors) > 0:
		return http.StatusUnprocessableEntity
	case res.Failed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

func (h *Handlers) lookupProduct(r *http.Request) (catalog.Category, catalog.Product, error) {
	cat, err := h.catalog.Category(chi.URLParam(r, "category"))
	if err != nil {
		return catalog.Category{}, catalog.Product{}, err
	}
	p, err := h.catalog.Product(cat.Slug, chi.URLParam(r, "product"))
	if err != nil {
		return catalog.Category{}, catalog.Product{}, err
	}
	return cat, p, nil
}

func (h *Handlers) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.logger.Error("catalog lookup", zap.String("path", r.URL.Path), zap.Error(err))
	h.render(w, r, http.StatusInternalServerError, web.ServerError(h.page(r, "Error", "")))
}

func (h *Handlers) showcaseTabs() []web.ShowcaseTab {
	cats := h.catalog.Categories()
	tabs := make([]web.ShowcaseTab, 0, len(cats))
	for _, c := range cats {
		products, _ := h.catalog.Products(c.Slug)
		tabs = append(tabs, web.ShowcaseTab{Category: c, Products: products})
	}
	return tabs
}

func (h *Handlers) page(r *http.Request, title, description string) web.Page {
	return web.Page{
		Title:       title,
		Description: description,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path, h.catalog.Categories()),
	}
}

// render buffers the page so a failed render never leaves half a document.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := web.Render(&buf, node); err != nil {
		h.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
