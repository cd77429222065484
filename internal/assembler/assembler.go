package assembler

import (
	"strings"

	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

// Assembler maps a field snapshot to exactly one render output. It holds no
// state besides its spec and never performs I/O.
type Assembler struct {
	spec Spec
}

func New(spec Spec) (*Assembler, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Assembler{spec: spec}, nil
}

func (a *Assembler) Assemble(snapshot fields.Snapshot) (widget.RenderOutput, error) {
	variant, err := a.variant(snapshot)
	if err != nil {
		return widget.RenderOutput{}, err
	}

	credential := a.credential(snapshot)
	if credential.IsZero() {
		return widget.Placeholder(a.spec.Notice), nil
	}

	defaults := widget.Defaults(variant)
	config := widget.Configuration{
		Variant:    variant,
		Credential: credential,
	}
	expand := variantReplacer(variant)

	for target, value := range a.spec.Presets[variant] {
		if err := apply(&config, target, expand.Replace(value)); err != nil {
			return widget.RenderOutput{}, err
		}
	}
	for target, value := range a.spec.Constants {
		if err := apply(&config, target, expand.Replace(value)); err != nil {
			return widget.RenderOutput{}, err
		}
	}
	for _, binding := range a.spec.Bindings {
		value := snapshot.Get(binding.Field)
		if value == "" {
			value = binding.Fallback
		}
		if value == "" {
			value = defaultFor(defaults, binding.Target)
		}
		if err := apply(&config, binding.Target, value); err != nil {
			return widget.RenderOutput{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return widget.RenderOutput{}, err
	}
	return widget.Configured(config), nil
}

func (a *Assembler) variant(snapshot fields.Snapshot) (widget.Variant, error) {
	if a.spec.VariantField == "" {
		return a.spec.Variant, nil
	}
	value := snapshot.Get(a.spec.VariantField)
	if value == "" && a.spec.Variant != "" {
		return a.spec.Variant, nil
	}
	return widget.ParseVariant(value)
}

func (a *Assembler) credential(snapshot fields.Snapshot) widget.Credential {
	for _, source := range a.spec.Credentials {
		if value := snapshot.Get(source.Field); value != "" {
			return widget.Credential{Kind: source.Kind, Value: value}
		}
	}
	return widget.Credential{}
}

func apply(config *widget.Configuration, target Target, value string) error {
	switch target {
	case TargetInstructions:
		config.Instructions = value
	case TargetTitle:
		config.Labels.Title = value
	case TargetInitial:
		config.Labels.Initial = value
	case TargetPlaceholder:
		config.Placeholder = value
	case TargetValue:
		config.Value = value
	case TargetWidth:
		config.Width = value
	case TargetHeight:
		config.Height = value
	case TargetPosition:
		position, err := widget.ParsePosition(value)
		if err != nil {
			return err
		}
		config.Position = position
	case TargetShowInitially:
		config.ShowInitially = fields.ParseFlag(value)
	case TargetDisabled:
		config.Disabled = fields.ParseFlag(value)
	}
	return nil
}

func defaultFor(defaults widget.Configuration, target Target) string {
	switch target {
	case TargetInstructions:
		return defaults.Instructions
	case TargetTitle:
		return defaults.Labels.Title
	case TargetInitial:
		return defaults.Labels.Initial
	case TargetPlaceholder:
		return defaults.Placeholder
	case TargetValue:
		return defaults.Value
	case TargetWidth:
		return defaults.Width
	case TargetHeight:
		return defaults.Height
	case TargetPosition:
		return string(defaults.Position)
	case TargetShowInitially:
		return fields.FormatFlag(defaults.ShowInitially)
	case TargetDisabled:
		return fields.FormatFlag(defaults.Disabled)
	}
	return ""
}

func variantReplacer(variant widget.Variant) *strings.Replacer {
	return strings.NewReplacer("{variant}", string(variant), "{Variant}", variant.Title())
}
