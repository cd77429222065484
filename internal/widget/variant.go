package widget

import (
	"fmt"
	"strings"
)

type Variant string

const (
	VariantChat     Variant = "chat"
	VariantPopup    Variant = "popup"
	VariantSidebar  Variant = "sidebar"
	VariantTextarea Variant = "textarea"
)

var Variants = []Variant{
	VariantChat,
	VariantPopup,
	VariantSidebar,
	VariantTextarea,
}

type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var Positions = []Position{
	PositionLeft,
	PositionRight,
}

// EnumError reports a value outside one of the closed enumerations the widget
// accepts. It is a programming error on the caller's side.
type EnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func ParseVariant(value string) (Variant, error) {
	for _, candidate := range Variants {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", &EnumError{Field: "variant", Value: value, Allowed: variantNames()}
}

func IsVariant(value string) bool {
	_, err := ParseVariant(value)
	return err == nil
}

func ParsePosition(value string) (Position, error) {
	for _, candidate := range Positions {
		if value == string(candidate) {
			return candidate, nil
		}
	}
	return "", &EnumError{Field: "position", Value: value, Allowed: positionNames()}
}

// Title returns the display form used in labels, e.g. "Chat".
func (v Variant) Title() string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// Floating reports whether the variant is rendered over the host page and
// therefore honours position and show_initially.
func (v Variant) Floating() bool {
	return v == VariantPopup || v == VariantSidebar
}

func variantNames() []string {
	names := make([]string, 0, len(Variants))
	for _, variant := range Variants {
		names = append(names, string(variant))
	}
	return names
}

func positionNames() []string {
	names := make([]string, 0, len(Positions))
	for _, position := range Positions {
		names = append(names, string(position))
	}
	return names
}
