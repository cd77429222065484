package fields

import "errors"

var ErrUnknownField = errors.New("unknown field")

type ID string

type Kind string

const (
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
)

type Option struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Definition describes one labelled input control on a page.
type Definition struct {
	ID          ID       `yaml:"id" json:"id"`
	Label       string   `yaml:"label" json:"label"`
	Kind        Kind     `yaml:"kind" json:"kind"`
	Default     string   `yaml:"default" json:"default"`
	Placeholder string   `yaml:"placeholder" json:"placeholder,omitempty"`
	Help        string   `yaml:"help" json:"help,omitempty"`
	Options     []Option `yaml:"options" json:"options,omitempty"`
	Rows        int      `yaml:"rows" json:"rows,omitempty"`
}

func (d Definition) HasOption(value string) bool {
	for _, option := range d.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}
