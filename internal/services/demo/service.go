package demo

import (
	"fmt"
	"log/slog"

	"copilot_demo/internal/assembler"
	"copilot_demo/internal/binder"
	"copilot_demo/internal/config"
	"copilot_demo/internal/fields"
	"copilot_demo/internal/pages"
	"copilot_demo/internal/widget"
)

type Service struct {
	catalog *pages.Catalog
	seeds   pages.Seeds
	logger  *slog.Logger
}

type Page = pages.Page
type Instance = pages.Instance

type Summary struct {
	Slug     string              `json:"slug"`
	Path     string              `json:"path"`
	Title    string              `json:"title"`
	Variant  widget.Variant      `json:"variant,omitempty"`
	Fields   []fields.Definition `json:"fields"`
	Watched  []fields.ID         `json:"watched"`
	Selected bool                `json:"user_selected_variant"`
}

func NewService(catalog *pages.Catalog, cfg config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		catalog: catalog,
		seeds: pages.Seeds{
			widget.CredentialPublicAPIKey: cfg.PublicAPIKey,
			widget.CredentialRuntimeURL:   cfg.RuntimeURL,
		},
		logger: logger,
	}
}

func (s *Service) Pages() []Page {
	return append([]Page(nil), s.catalog.Pages...)
}

func (s *Service) Page(slug string) (Page, error) {
	return s.catalog.Page(slug)
}

func (s *Service) Summaries() []Summary {
	summaries := make([]Summary, 0, len(s.catalog.Pages))
	for _, page := range s.catalog.Pages {
		summaries = append(summaries, Summary{
			Slug:     page.Slug,
			Path:     page.Path,
			Title:    page.Title,
			Variant:  page.Widget.Variant,
			Fields:   page.Fields,
			Watched:  page.Watched(),
			Selected: page.UserSelectedVariant(),
		})
	}
	return summaries
}

// NewInstance starts a fresh page session seeded with the startup
// credentials.
func (s *Service) NewInstance(slug string, opts ...binder.Option) (*Instance, error) {
	page, err := s.catalog.Page(slug)
	if err != nil {
		return nil, err
	}
	return pages.NewInstance(page, s.seeds, s.logger, opts...)
}

// Render assembles a page once from its defaults overlaid with values. It
// keeps no session; unknown field ids are rejected.
func (s *Service) Render(slug string, values map[string]string) (widget.RenderOutput, error) {
	page, err := s.catalog.Page(slug)
	if err != nil {
		return widget.RenderOutput{}, err
	}
	store := page.NewStore(s.seeds)
	for id, value := range values {
		if !store.Has(fields.ID(id)) {
			return widget.RenderOutput{}, fmt.Errorf("page %s: %w: %s", slug, fields.ErrUnknownField, id)
		}
		store.Set(fields.ID(id), value)
	}
	asm, err := assembler.New(page.Widget)
	if err != nil {
		return widget.RenderOutput{}, err
	}
	output, err := asm.Assemble(store.Snapshot())
	if err != nil {
		s.logger.Debug("render rejected", "page", slug, "error", err)
		return widget.RenderOutput{}, err
	}
	return output, nil
}
