package services

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/HSouheill/barrim_storefront/models"
)

//go:embed content/pages.yaml content/page.html
var content embed.FS

// ErrPageNotFound is returned for an unknown page slug.
var ErrPageNotFound = errors.New("page not found")

type pageDocument struct {
	Pages []models.Page `yaml:"pages"`
}

// Pages serves the fixed informational pages.
type Pages struct {
	order  []models.Page
	bySlug map[string]models.Page
	tmpl   *template.Template
}

func LoadPages() (*Pages, error) {
	raw, err := content.ReadFile("content/pages.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}
	return ParsePages(raw)
}

// ParsePages parses a pages document and the built-in page template.
func ParsePages(raw []byte) (*Pages, error) {
	var doc pageDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pages: %w", err)
	}

	tmpl, err := template.ParseFS(content, "content/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	p := &Pages{bySlug: make(map[string]models.Page, len(doc.Pages)), tmpl: tmpl}
	for _, page := range doc.Pages {
		if page.Slug == "" {
			return nil, fmt.Errorf("page %q has no slug", page.Title)
		}
		if _, dup := p.bySlug[page.Slug]; dup {
			return nil, fmt.Errorf("duplicate page slug %q", page.Slug)
		}
		p.bySlug[page.Slug] = page
		p.order = append(p.order, page)
	}
	return p, nil
}

func (p *Pages) List() []models.Page {
	out := make([]models.Page, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Pages) Get(slug string) (models.Page, error) {
	page, ok := p.bySlug[slug]
	if !ok {
		return models.Page{}, ErrPageNotFound
	}
	return page, nil
}

// Render writes the HTML rendition of a page.
func (p *Pages) Render(w io.Writer, slug string) error {
	page, err := p.Get(slug)
	if err != nil {
		return err
	}
	return p.tmpl.Execute(w, struct {
		Page  models.Page
		Pages []models.Page
	}{page, p.order})
}
