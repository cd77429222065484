package fields

// InputMode is the HTML input type used to display a credential field.
type InputMode string

const (
	InputMasked   InputMode = "password"
	InputRevealed InputMode = "text"
)

// ModeForClicks maps the reveal button's click counter to the display mode:
// odd counts reveal the value, even counts (including zero) mask it.
func ModeForClicks(clicks int) InputMode {
	if clicks > 0 && clicks%2 == 1 {
		return InputRevealed
	}
	return InputMasked
}

func (m InputMode) Icon() string {
	if m == InputRevealed {
		return "fas fa-eye-slash"
	}
	return "fas fa-eye"
}

func (m InputMode) Revealed() bool {
	return m == InputRevealed
}
