package binder

// Echo carries values reported by the widget back to the host page, such as
// the textarea content. It has no path into the Field Store, so a published
// value never triggers a recompute.
type Echo struct {
	value     string
	listeners []func(string)
}

func (e *Echo) Publish(value string) {
	if value == e.value {
		return
	}
	e.value = value
	for _, listener := range e.listeners {
		listener(value)
	}
}

func (e *Echo) Value() string {
	return e.value
}

func (e *Echo) OnValue(listener func(string)) {
	if listener == nil {
		return
	}
	e.listeners = append(e.listeners, listener)
}
