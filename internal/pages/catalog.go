package pages

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"copilot_demo/internal/assembler"
	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

var ErrUnknownPage = errors.New("unknown page")

//go:embed catalog.yaml
var catalogFS embed.FS

type UseCase struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// Page is one demo page: its chrome, its input fields and the assembler spec
// that turns those fields into a widget configuration.
type Page struct {
	Slug     string              `yaml:"slug"`
	Path     string              `yaml:"path"`
	Nav      string              `yaml:"nav"`
	Title    string              `yaml:"title"`
	Icon     string              `yaml:"icon"`
	Summary  string              `yaml:"summary"`
	Lead     string              `yaml:"lead"`
	Info     string              `yaml:"info"`
	Hint     *widget.Notice      `yaml:"hint"`
	Echo     bool                `yaml:"echo"`
	Fields   []fields.Definition `yaml:"fields"`
	Widget   assembler.Spec      `yaml:"widget"`
	UseCases []UseCase           `yaml:"use_cases"`
	Example  string              `yaml:"example"`
}

func (p Page) Field(id fields.ID) (fields.Definition, error) {
	for _, def := range p.Fields {
		if def.ID == id {
			return def, nil
		}
	}
	return fields.Definition{}, fmt.Errorf("page %s: %w: %s", p.Slug, fields.ErrUnknownField, id)
}

// Watched is the fixed list of fields whose changes recompute the widget.
func (p Page) Watched() []fields.ID {
	return p.Widget.Watched()
}

// UserSelectedVariant reports whether the variant comes from a field rather
// than being fixed by the page.
func (p Page) UserSelectedVariant() bool {
	return p.Widget.VariantField != ""
}

func (p Page) Validate() error {
	if p.Slug == "" {
		return errors.New("page without slug")
	}
	if p.Path == "" {
		return fmt.Errorf("page %s: path is required", p.Slug)
	}
	seen := map[fields.ID]struct{}{}
	for _, def := range p.Fields {
		if def.ID == "" {
			return fmt.Errorf("page %s: field without id", p.Slug)
		}
		if _, ok := seen[def.ID]; ok {
			return fmt.Errorf("page %s: duplicate field %q", p.Slug, def.ID)
		}
		seen[def.ID] = struct{}{}
		switch def.Kind {
		case fields.KindText, fields.KindPassword, fields.KindTextarea:
		case fields.KindSelect:
			if len(def.Options) == 0 {
				return fmt.Errorf("page %s: select %q has no options", p.Slug, def.ID)
			}
			if def.Default != "" && !def.HasOption(def.Default) {
				return fmt.Errorf("page %s: select %q default %q is not an option", p.Slug, def.ID, def.Default)
			}
		default:
			return fmt.Errorf("page %s: field %q has unknown kind %q", p.Slug, def.ID, def.Kind)
		}
	}
	if err := p.Widget.Validate(); err != nil {
		return fmt.Errorf("page %s: %w", p.Slug, err)
	}
	if p.UserSelectedVariant() {
		def, err := p.Field(p.Widget.VariantField)
		if err != nil {
			return err
		}
		for _, option := range def.Options {
			if !widget.IsVariant(option.Value) {
				return fmt.Errorf("page %s: variant option %q is not a widget variant", p.Slug, option.Value)
			}
		}
	}
	if p.Hint != nil {
		if _, err := widget.ParseTone(string(p.Hint.Tone)); err != nil {
			return fmt.Errorf("page %s: hint: %w", p.Slug, err)
		}
	}
	for _, id := range p.Watched() {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("page %s: watched %w: %s", p.Slug, fields.ErrUnknownField, id)
		}
	}
	return nil
}

type Catalog struct {
	Pages []Page `yaml:"pages"`
}

func (c *Catalog) Page(slug string) (Page, error) {
	for _, page := range c.Pages {
		if page.Slug == slug {
			return page, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %s", ErrUnknownPage, slug)
}

func (c *Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c.Pages))
	for _, page := range c.Pages {
		slugs = append(slugs, page.Slug)
	}
	return slugs
}

func (c *Catalog) Validate() error {
	if len(c.Pages) == 0 {
		return errors.New("catalog has no pages")
	}
	slugs := map[string]struct{}{}
	paths := map[string]struct{}{}
	for _, page := range c.Pages {
		if err := page.Validate(); err != nil {
			return err
		}
		if _, ok := slugs[page.Slug]; ok {
			return fmt.Errorf("duplicate page slug %q", page.Slug)
		}
		if _, ok := paths[page.Path]; ok {
			return fmt.Errorf("duplicate page path %q", page.Path)
		}
		slugs[page.Slug] = struct{}{}
		paths[page.Path] = struct{}{}
	}
	return nil
}

func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var catalog Catalog
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &catalog, nil
}

func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the embedded catalog. It panics if the embedded file
// is invalid, which the package tests rule out.
func DefaultCatalog() *Catalog {
	catalog, err := LoadCatalog(catalogFS, "catalog.yaml")
	if err != nil {
		panic(err)
	}
	return catalog
}
