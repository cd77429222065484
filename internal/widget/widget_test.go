package widget

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVariantAcceptsKnownKinds(t *testing.T) {
	for _, value := range []string{"chat", "popup", "sidebar", "textarea"} {
		got, err := ParseVariant(value)
		if err != nil {
			t.Fatalf("ParseVariant(%q) error = %v", value, err)
		}
		if string(got) != value {
			t.Fatalf("ParseVariant(%q) = %q", value, got)
		}
	}
}

func TestParseVariantRejectsUnknownValue(t *testing.T) {
	for _, value := range []string{"", "Chat", "modal", " chat"} {
		_, err := ParseVariant(value)
		var enumErr *EnumError
		if !errors.As(err, &enumErr) {
			t.Fatalf("ParseVariant(%q) error = %v, want *EnumError", value, err)
		}
		if enumErr.Field != "variant" {
			t.Fatalf("enumErr.Field = %q, want variant", enumErr.Field)
		}
		if enumErr.Value != value {
			t.Fatalf("enumErr.Value = %q, want %q", enumErr.Value, value)
		}
	}
}

func TestParsePositionErrorNamesField(t *testing.T) {
	_, err := ParsePosition("bottom-right")
	if err == nil {
		t.Fatalf("ParsePosition() expected error")
	}
	want := `invalid position "bottom-right": must be one of left, right`
	if err.Error() != want {
		t.Fatalf("err = %q, want %q", err.Error(), want)
	}
}

func TestVariantTitle(t *testing.T) {
	if got := VariantTextarea.Title(); got != "Textarea" {
		t.Fatalf("Title() = %q, want Textarea", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Configuration{
		Variant:    VariantSidebar,
		Credential: Credential{Kind: CredentialPublicAPIKey, Value: "k"},
		Position:   PositionLeft,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	missing := valid
	missing.Credential = Credential{Kind: CredentialPublicAPIKey}
	if err := missing.Validate(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("Validate() error = %v, want ErrMissingCredential", err)
	}

	badPosition := valid
	badPosition.Position = "top"
	var enumErr *EnumError
	if err := badPosition.Validate(); !errors.As(err, &enumErr) || enumErr.Field != "position" {
		t.Fatalf("Validate() error = %v, want position EnumError", err)
	}

	badVariant := valid
	badVariant.Variant = "modal"
	if err := badVariant.Validate(); !errors.As(err, &enumErr) || enumErr.Field != "variant" {
		t.Fatalf("Validate() error = %v, want variant EnumError", err)
	}
}

func TestCredentialJSONCarriesSingleKey(t *testing.T) {
	raw, err := json.Marshal(Credential{Kind: CredentialRuntimeURL, Value: "http://localhost:3000/api/copilotkit"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"runtime_url":"http://localhost:3000/api/copilotkit"}`
	if string(raw) != want {
		t.Fatalf("Marshal() = %s, want %s", raw, want)
	}

	var decoded Credential
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Kind != CredentialRuntimeURL {
		t.Fatalf("decoded.Kind = %q, want runtime_url", decoded.Kind)
	}
}

func TestConfigurationJSONKeys(t *testing.T) {
	raw, err := json.Marshal(Configuration{
		Variant:    VariantChat,
		Credential: Credential{Kind: CredentialPublicAPIKey, Value: "abc123"},
		Labels:     Labels{Title: "Y", Initial: "Z"},
		Height:     "500px",
		Width:      "100%",
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{`"variant":"chat"`, `"public_api_key":"abc123"`, `"labels":{"title":"Y","initial":"Z"}`, `"height":"500px"`, `"show_initially":false`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("Marshal() = %s, missing %s", raw, key)
		}
	}
	if strings.Contains(string(raw), `"position"`) {
		t.Fatalf("Marshal() = %s, position should be omitted", raw)
	}
}

func TestPropsForSidebar(t *testing.T) {
	props := Configuration{
		Variant:       VariantSidebar,
		Credential:    Credential{Kind: CredentialPublicAPIKey, Value: "k"},
		Instructions:  "help",
		Labels:        Labels{Title: "T", Initial: "I"},
		Width:         "350px",
		Position:      PositionRight,
		ShowInitially: true,
	}.Props()

	want := map[string]any{
		"uiType":       "sidebar",
		"publicApiKey": "k",
		"instructions": "help",
		"labels":       map[string]string{"title": "T", "initial": "I"},
		"disabled":     false,
		"width":        "350px",
		"defaultOpen":  true,
		"position":     "right",
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("Props() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsTextarea(t *testing.T) {
	defaults := Defaults(VariantTextarea)
	if defaults.Height != "100px" {
		t.Fatalf("Height = %q, want 100px", defaults.Height)
	}
	if defaults.Placeholder != "Type your message here..." {
		t.Fatalf("Placeholder = %q", defaults.Placeholder)
	}
}

func TestRenderOutputState(t *testing.T) {
	if got := Placeholder(Notice{Message: "x"}).State(); got != StateUnconfigured {
		t.Fatalf("State() = %q, want unconfigured", got)
	}
	if got := Configured(Configuration{Variant: VariantChat}).State(); got != StateConfigured {
		t.Fatalf("State() = %q, want configured", got)
	}
}
