package routes

import (
	"strings"
	"testing"
	"unicode/utf8"

	"copilot_demo/internal/widget"
)

func TestPreviewJSONMasksCredential(t *testing.T) {
	out := widget.Configured(widget.Configuration{
		Variant:    widget.VariantChat,
		Credential: widget.Credential{Kind: widget.CredentialPublicAPIKey, Value: "ck_pub_secret"},
	})

	preview, err := previewJSON(out)
	if err != nil {
		t.Fatalf("previewJSON() error = %v", err)
	}
	if strings.Contains(preview, "secret") {
		t.Fatalf("previewJSON() leaked the credential: %s", preview)
	}
	if !strings.Contains(preview, `"public_api_key": "ck_p****"`) {
		t.Fatalf("previewJSON() = %s, want masked public_api_key", preview)
	}
}

func TestPreviewJSONPlaceholder(t *testing.T) {
	preview, err := previewJSON(widget.Placeholder(widget.Notice{Message: "need key"}))
	if err != nil {
		t.Fatalf("previewJSON() error = %v", err)
	}
	if preview != "{}" {
		t.Fatalf("previewJSON() = %q, want %q", preview, "{}")
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "****"},
		{in: "abcd", want: "****"},
		{in: "abcdef", want: "abcd****"},
		{in: "ключ", want: "****"},
		{in: "ключ-123", want: "ключ****"},
		{in: "日本語キー5", want: "日本語キ****"},
	}
	for _, tt := range tests {
		got := maskSecret(tt.in)
		if got != tt.want {
			t.Fatalf("maskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("maskSecret(%q) = %q is not valid UTF-8", tt.in, got)
		}
	}
}
