package binder

import (
	"log/slog"

	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

type RecomputeFunc func(fields.Snapshot) (widget.RenderOutput, error)

type Option func(*Binder)

func WithTarget(target func(widget.RenderOutput)) Option {
	return func(b *Binder) {
		b.target = target
	}
}

func WithErrorHandler(handler func(error)) Option {
	return func(b *Binder) {
		b.onError = handler
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Binder re-runs one recompute function whenever a watched field changes and
// hands the result to its render target. The watched set is fixed when the
// binder is built. Every change triggers a full, synchronous recompute from
// the latest snapshot.
type Binder struct {
	store     *fields.Store
	watched   []fields.ID
	recompute RecomputeFunc
	target    func(widget.RenderOutput)
	onError   func(error)
	logger    *slog.Logger

	output      widget.RenderOutput
	err         error
	revision    int
	unsubscribe func()
}

func New(store *fields.Store, watched []fields.ID, recompute RecomputeFunc, opts ...Option) *Binder {
	b := &Binder{
		store:     store,
		watched:   append([]fields.ID(nil), watched...),
		recompute: recompute,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start evaluates the current snapshot once and subscribes to the watched
// fields. Calling Start on a running binder is a no-op.
func (b *Binder) Start() {
	if b.unsubscribe != nil {
		return
	}
	b.unsubscribe = b.store.Subscribe(b.watched, b.changed)
	b.evaluate("")
}

func (b *Binder) Stop() {
	if b.unsubscribe == nil {
		return
	}
	b.unsubscribe()
	b.unsubscribe = nil
}

func (b *Binder) Output() widget.RenderOutput {
	return b.output
}

func (b *Binder) State() widget.State {
	return b.output.State()
}

func (b *Binder) Err() error {
	return b.err
}

// Revision counts completed recomputations, successful or not.
func (b *Binder) Revision() int {
	return b.revision
}

func (b *Binder) changed(id fields.ID) {
	b.evaluate(id)
}

func (b *Binder) evaluate(cause fields.ID) {
	previous := b.output.State()
	output, err := b.recompute(b.store.Snapshot())
	b.revision++

	if err != nil {
		b.err = err
		b.logger.Warn("recompute failed", "field", cause, "revision", b.revision, "error", err)
		if b.onError != nil {
			b.onError(err)
		}
		return
	}

	b.err = nil
	b.output = output
	if next := output.State(); next != previous {
		b.logger.Debug("render state changed", "field", cause, "from", previous, "to", next, "revision", b.revision)
	}
	if b.target != nil {
		b.target(output)
	}
}
