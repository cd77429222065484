package pages

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

func TestDefaultCatalogPages(t *testing.T) {
	catalog := DefaultCatalog()

	got := strings.Join(catalog.Slugs(), ",")
	if got != "chat,popup,sidebar,textarea,usage" {
		t.Fatalf("Slugs() = %q", got)
	}
	for _, page := range catalog.Pages {
		if page.Widget.Notice.Message == "" {
			t.Fatalf("page %s has no placeholder notice", page.Slug)
		}
		if len(page.Watched()) == 0 {
			t.Fatalf("page %s watches no fields", page.Slug)
		}
	}
}

func TestCatalogPageLookup(t *testing.T) {
	catalog := DefaultCatalog()

	page, err := catalog.Page("sidebar")
	if err != nil {
		t.Fatalf("Page(sidebar) error = %v", err)
	}
	if page.Widget.Variant != widget.VariantSidebar {
		t.Fatalf("Widget.Variant = %q, want sidebar", page.Widget.Variant)
	}

	if _, err := catalog.Page("missing"); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("Page(missing) error = %v, want ErrUnknownPage", err)
	}
	if _, err := page.Field("nope"); !errors.Is(err, fields.ErrUnknownField) {
		t.Fatalf("Field(nope) error = %v, want ErrUnknownField", err)
	}
}

func TestUsagePageVariantIsUserSelected(t *testing.T) {
	catalog := DefaultCatalog()
	usage, err := catalog.Page("usage")
	if err != nil {
		t.Fatalf("Page(usage) error = %v", err)
	}
	if !usage.UserSelectedVariant() {
		t.Fatalf("UserSelectedVariant() = false, want true")
	}
	chat, _ := catalog.Page("chat")
	if chat.UserSelectedVariant() {
		t.Fatalf("chat UserSelectedVariant() = true, want false")
	}
}

const validCatalog = `
pages:
  - slug: demo
    path: /demo
    fields:
      - {id: key, kind: password}
      - {id: title, kind: text, default: Hello}
    widget:
      variant: chat
      credentials:
        - {field: key, kind: public_api_key}
      bindings:
        - {field: title, target: labels.title}
      notice:
        message: need a key
`

func TestLoadCatalogFromFS(t *testing.T) {
	fsys := fstest.MapFS{"pages.yaml": {Data: []byte(validCatalog)}}

	catalog, err := LoadCatalog(fsys, "pages.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(catalog.Pages) != 1 || catalog.Pages[0].Slug != "demo" {
		t.Fatalf("Pages = %+v", catalog.Pages)
	}

	if _, err := LoadCatalog(fsys, "missing.yaml"); err == nil {
		t.Fatalf("LoadCatalog(missing) error = nil")
	}
}

func TestParseCatalogRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{name: "unknown variant", replace: [2]string{"variant: chat", "variant: banner"}},
		{name: "unknown target", replace: [2]string{"target: labels.title", "target: labels.subtitle"}},
		{name: "watched field without definition", replace: [2]string{"{field: title, target", "{field: subtitle, target"}},
		{name: "duplicate field", replace: [2]string{"{id: title,", "{id: key,"}},
		{name: "unknown field kind", replace: [2]string{"kind: text", "kind: slider"}},
		{name: "unknown key", replace: [2]string{"path: /demo", "path: /demo\n    colour: blue"}},
		{name: "missing notice", replace: [2]string{"message: need a key", "message: \"\""}},
		{name: "unknown notice tone", replace: [2]string{"message: need a key", "message: need a key\n        tone: loud"}},
		{name: "unknown constant position", replace: [2]string{"      notice:", "      constants:\n        position: top\n      notice:"}},
		{name: "unknown preset position", replace: [2]string{"      notice:", "      presets:\n        sidebar:\n          position: top\n      notice:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(validCatalog, tt.replace[0], tt.replace[1], 1)
			if data == validCatalog {
				t.Fatalf("replacement %q not applied", tt.replace[0])
			}
			if _, err := ParseCatalog([]byte(data)); err == nil {
				t.Fatalf("ParseCatalog() error = nil, want error")
			}
		})
	}
}

func TestParseCatalogUnknownVariantIsEnumError(t *testing.T) {
	data := strings.Replace(validCatalog, "variant: chat", "variant: banner", 1)
	_, err := ParseCatalog([]byte(data))

	var enumErr *widget.EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("ParseCatalog() error = %v, want EnumError", err)
	}
	if enumErr.Value != "banner" {
		t.Fatalf("EnumError.Value = %q, want banner", enumErr.Value)
	}
}

func TestParseCatalogVariantOptions(t *testing.T) {
	data := strings.Replace(validCatalog, "      variant: chat", "      variant: chat\n      variant_field: ui", 1)
	data = strings.Replace(data, "      - {id: title, kind: text, default: Hello}", `      - {id: title, kind: text, default: Hello}
      - id: ui
        kind: select
        options:
          - {label: Chat, value: chat}
          - {label: Popup, value: popup}`, 1)
	if _, err := ParseCatalog([]byte(data)); err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	data = strings.Replace(data, "{label: Popup, value: popup}", "{label: Modal, value: modal}", 1)
	if _, err := ParseCatalog([]byte(data)); err == nil {
		t.Fatalf("ParseCatalog() error = nil for a non-variant option")
	}
}

func TestParseCatalogRejectsDuplicateSlug(t *testing.T) {
	page := validCatalog[strings.Index(validCatalog, "  - slug"):]
	if _, err := ParseCatalog([]byte(validCatalog + page)); err == nil {
		t.Fatalf("ParseCatalog() error = nil, want duplicate slug error")
	}
}

func TestSelectDefaultsAreOptions(t *testing.T) {
	for _, page := range DefaultCatalog().Pages {
		for _, def := range page.Fields {
			if def.Kind == fields.KindSelect && !def.HasOption(def.Default) {
				t.Fatalf("page %s select %s default %q is not an option", page.Slug, def.ID, def.Default)
			}
		}
	}
}
