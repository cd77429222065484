package widget

type State string

const (
	StateUnconfigured State = "unconfigured"
	StateConfigured   State = "configured"
)

type Tone string

const (
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
)

// ParseTone accepts the alert tones a notice may use. An empty tone renders
// as a warning.
func ParseTone(value string) (Tone, error) {
	switch Tone(value) {
	case "", ToneWarning:
		return ToneWarning, nil
	case ToneInfo:
		return ToneInfo, nil
	}
	return "", &EnumError{Field: "tone", Value: value, Allowed: []string{string(ToneWarning), string(ToneInfo)}}
}

// Notice is shown in place of the widget while no credential is present.
type Notice struct {
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
	Icon    string `json:"icon,omitempty"`
}

// RenderOutput is either a widget configuration or a placeholder notice,
// never both.
type RenderOutput struct {
	Config *Configuration `json:"config,omitempty"`
	Notice *Notice        `json:"notice,omitempty"`
}

func Configured(config Configuration) RenderOutput {
	return RenderOutput{Config: &config}
}

func Placeholder(notice Notice) RenderOutput {
	return RenderOutput{Notice: &notice}
}

func (o RenderOutput) State() State {
	if o.Config != nil {
		return StateConfigured
	}
	return StateUnconfigured
}

func (o RenderOutput) Configured() bool {
	return o.Config != nil
}
