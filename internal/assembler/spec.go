package assembler

import (
	"fmt"

	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

// Target names the configuration key a field or constant is copied into.
type Target string

const (
	TargetInstructions  Target = "instructions"
	TargetTitle         Target = "labels.title"
	TargetInitial       Target = "labels.initial"
	TargetPlaceholder   Target = "placeholder"
	TargetValue         Target = "value"
	TargetWidth         Target = "width"
	TargetHeight        Target = "height"
	TargetPosition      Target = "position"
	TargetShowInitially Target = "show_initially"
	TargetDisabled      Target = "disabled"
)

var targets = []Target{
	TargetInstructions,
	TargetTitle,
	TargetInitial,
	TargetPlaceholder,
	TargetValue,
	TargetWidth,
	TargetHeight,
	TargetPosition,
	TargetShowInitially,
	TargetDisabled,
}

func IsTarget(value string) bool {
	for _, target := range targets {
		if string(target) == value {
			return true
		}
	}
	return false
}

// CredentialSource reads one credential kind from a field. Sources are tried
// in order; the first non-empty one wins.
type CredentialSource struct {
	Field fields.ID             `yaml:"field"`
	Kind  widget.CredentialKind `yaml:"kind"`
}

// Binding copies a field into a configuration key. An empty field value
// falls back to Fallback, or to the widget default when Fallback is empty.
type Binding struct {
	Field    fields.ID `yaml:"field"`
	Target   Target    `yaml:"target"`
	Fallback string    `yaml:"fallback"`
}

// Spec describes how one page turns its fields into a widget configuration.
//
// Variant is fixed for the dedicated pages. When VariantField is set the
// variant is read from that field instead and Variant is used while the field
// is empty, so Variant is always required. Constants and Presets may reference {variant} and
// {Variant}, expanded to the variant name and its title form.
type Spec struct {
	Variant      widget.Variant                       `yaml:"variant"`
	VariantField fields.ID                            `yaml:"variant_field"`
	Credentials  []CredentialSource                   `yaml:"credentials"`
	Bindings     []Binding                            `yaml:"bindings"`
	Constants    map[Target]string                    `yaml:"constants"`
	Presets      map[widget.Variant]map[Target]string `yaml:"presets"`
	Notice       widget.Notice                        `yaml:"notice"`
}

func (s Spec) Validate() error {
	if _, err := widget.ParseVariant(string(s.Variant)); err != nil {
		return err
	}
	if len(s.Credentials) == 0 {
		return fmt.Errorf("assembler: no credential field configured")
	}
	for _, source := range s.Credentials {
		if source.Field == "" {
			return fmt.Errorf("assembler: credential source without field")
		}
		if _, err := widget.ParseCredentialKind(string(source.Kind)); err != nil {
			return err
		}
	}
	for _, binding := range s.Bindings {
		if binding.Field == "" {
			return fmt.Errorf("assembler: binding for %q without field", binding.Target)
		}
		if !IsTarget(string(binding.Target)) {
			return fmt.Errorf("assembler: unknown binding target %q", binding.Target)
		}
	}
	for target, value := range s.Constants {
		if !IsTarget(string(target)) {
			return fmt.Errorf("assembler: unknown constant target %q", target)
		}
		if err := validateValue(target, value); err != nil {
			return fmt.Errorf("assembler: constant: %w", err)
		}
	}
	for variant, preset := range s.Presets {
		if _, err := widget.ParseVariant(string(variant)); err != nil {
			return fmt.Errorf("assembler: preset: %w", err)
		}
		for target, value := range preset {
			if !IsTarget(string(target)) {
				return fmt.Errorf("assembler: unknown preset target %q for %s", target, variant)
			}
			if err := validateValue(target, value); err != nil {
				return fmt.Errorf("assembler: preset %s: %w", variant, err)
			}
		}
	}
	if s.Notice.Message == "" {
		return fmt.Errorf("assembler: placeholder notice message is required")
	}
	if _, err := widget.ParseTone(string(s.Notice.Tone)); err != nil {
		return fmt.Errorf("assembler: notice: %w", err)
	}
	return nil
}

// validateValue rejects fixed values that could never assemble. Only the
// position target is a closed enumeration.
func validateValue(target Target, value string) error {
	if target != TargetPosition {
		return nil
	}
	_, err := widget.ParsePosition(value)
	return err
}

// Watched lists every field the assembled output depends on, in declaration
// order and without duplicates.
func (s Spec) Watched() []fields.ID {
	seen := map[fields.ID]struct{}{}
	watched := []fields.ID{}
	add := func(id fields.ID) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		watched = append(watched, id)
	}
	add(s.VariantField)
	for _, source := range s.Credentials {
		add(source.Field)
	}
	for _, binding := range s.Bindings {
		add(binding.Field)
	}
	return watched
}
