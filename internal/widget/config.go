package widget

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingCredential = errors.New("widget: credential is required")

type CredentialKind string

const (
	CredentialAPIKey       CredentialKind = "api_key"
	CredentialPublicAPIKey CredentialKind = "public_api_key"
	CredentialRuntimeURL   CredentialKind = "runtime_url"
)

func ParseCredentialKind(value string) (CredentialKind, error) {
	switch CredentialKind(value) {
	case CredentialAPIKey, CredentialPublicAPIKey, CredentialRuntimeURL:
		return CredentialKind(value), nil
	}
	return "", &EnumError{
		Field:   "credential kind",
		Value:   value,
		Allowed: []string{string(CredentialAPIKey), string(CredentialPublicAPIKey), string(CredentialRuntimeURL)},
	}
}

// Credential authorises the widget's backend calls. Exactly one kind is
// carried at a time: a direct key, a cloud public key or a self-hosted
// runtime URL.
type Credential struct {
	Kind  CredentialKind
	Value string
}

func (c Credential) IsZero() bool {
	return c.Value == ""
}

type credentialJSON struct {
	APIKey       string `json:"api_key,omitempty"`
	PublicAPIKey string `json:"public_api_key,omitempty"`
	RuntimeURL   string `json:"runtime_url,omitempty"`
}

func (c Credential) MarshalJSON() ([]byte, error) {
	var out credentialJSON
	switch c.Kind {
	case CredentialAPIKey:
		out.APIKey = c.Value
	case CredentialPublicAPIKey:
		out.PublicAPIKey = c.Value
	case CredentialRuntimeURL:
		out.RuntimeURL = c.Value
	}
	return json.Marshal(out)
}

func (c *Credential) UnmarshalJSON(data []byte) error {
	var in credentialJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.APIKey != "":
		*c = Credential{Kind: CredentialAPIKey, Value: in.APIKey}
	case in.PublicAPIKey != "":
		*c = Credential{Kind: CredentialPublicAPIKey, Value: in.PublicAPIKey}
	case in.RuntimeURL != "":
		*c = Credential{Kind: CredentialRuntimeURL, Value: in.RuntimeURL}
	default:
		*c = Credential{}
	}
	return nil
}

type Labels struct {
	Title   string `json:"title"`
	Initial string `json:"initial"`
}

// Configuration is the object handed to the embedded chat widget. Each field
// maps to one recognised widget key; Value only applies to the textarea
// variant, Position and ShowInitially only to popup and sidebar.
type Configuration struct {
	Variant       Variant    `json:"variant"`
	Credential    Credential `json:"credential"`
	Instructions  string     `json:"instructions"`
	Labels        Labels     `json:"labels"`
	Placeholder   string     `json:"placeholder,omitempty"`
	Value         string     `json:"value"`
	Width         string     `json:"width,omitempty"`
	Height        string     `json:"height,omitempty"`
	Position      Position   `json:"position,omitempty"`
	ShowInitially bool       `json:"show_initially"`
	Disabled      bool       `json:"disabled"`
}

func (c Configuration) Validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.Credential.IsZero() {
		return ErrMissingCredential
	}
	if _, err := ParseCredentialKind(string(c.Credential.Kind)); err != nil {
		return err
	}
	if c.Position != "" {
		if _, err := ParsePosition(string(c.Position)); err != nil {
			return err
		}
	}
	return nil
}

// Defaults mirrors the property defaults the widget applies on its own when a
// key is omitted.
func Defaults(variant Variant) Configuration {
	defaults := Configuration{
		Variant:      variant,
		Instructions: "You are a helpful AI assistant.",
		Labels: Labels{
			Title:   "AI Assistant",
			Initial: "Hi! 👋 How can I assist you today?",
		},
		Placeholder: "Type your message here...",
		Width:       "100%",
		Height:      "400px",
		Position:    PositionRight,
	}
	if variant == VariantTextarea {
		defaults.Instructions = "Help the user write better content."
		defaults.Height = "100px"
	}
	return defaults
}

// Props returns the property map the client island mounts the widget with.
func (c Configuration) Props() map[string]any {
	props := map[string]any{
		"uiType":       string(c.Variant),
		"instructions": c.Instructions,
		"labels": map[string]string{
			"title":   c.Labels.Title,
			"initial": c.Labels.Initial,
		},
		"disabled": c.Disabled,
	}
	switch c.Credential.Kind {
	case CredentialAPIKey:
		props["apiKey"] = c.Credential.Value
	case CredentialPublicAPIKey:
		props["publicApiKey"] = c.Credential.Value
	case CredentialRuntimeURL:
		props["runtimeUrl"] = c.Credential.Value
	}
	if c.Width != "" {
		props["width"] = c.Width
	}
	if c.Height != "" {
		props["height"] = c.Height
	}
	if c.Variant.Floating() {
		props["defaultOpen"] = c.ShowInitially
		if c.Position != "" {
			props["position"] = string(c.Position)
		}
	}
	if c.Variant == VariantTextarea {
		props["placeholder"] = c.Placeholder
		props["value"] = c.Value
	}
	return props
}

func (c Configuration) String() string {
	return fmt.Sprintf("%s widget (%s)", c.Variant, c.Credential.Kind)
}
