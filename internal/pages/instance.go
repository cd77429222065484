package pages

import (
	"log/slog"

	"github.com/google/uuid"

	"copilot_demo/internal/assembler"
	"copilot_demo/internal/binder"
	"copilot_demo/internal/fields"
	"copilot_demo/internal/widget"
)

// Seeds are startup credential values keyed by the kind they supply. A page
// field reading that kind starts out with the seed as its default.
type Seeds map[widget.CredentialKind]string

// Definitions returns the page's field definitions with credential defaults
// taken from seeds. Fields that already declare a default keep it.
func (p Page) Definitions(seeds Seeds) []fields.Definition {
	defs := append([]fields.Definition(nil), p.Fields...)
	for _, source := range p.Widget.Credentials {
		seed := seeds[source.Kind]
		if seed == "" {
			continue
		}
		for i := range defs {
			if defs[i].ID == source.Field && defs[i].Default == "" {
				defs[i].Default = seed
			}
		}
	}
	return defs
}

func (p Page) NewStore(seeds Seeds) *fields.Store {
	return fields.NewStore(p.Definitions(seeds))
}

// Instance is one live session of a page. It owns its own field store and
// binder; nothing is shared with other instances of the same page.
type Instance struct {
	id         string
	page       Page
	store      *fields.Store
	assembler  *assembler.Assembler
	binder     *binder.Binder
	echo       binder.Echo
	maskClicks int
	logger     *slog.Logger
}

// NewInstance wires a store, assembler and binder for page and performs the
// initial evaluation. Binder options such as the render target are applied
// before that first evaluation.
func NewInstance(page Page, seeds Seeds, logger *slog.Logger, opts ...binder.Option) (*Instance, error) {
	asm, err := assembler.New(page.Widget)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	inst := &Instance{
		id:        uuid.NewString(),
		page:      page,
		store:     page.NewStore(seeds),
		assembler: asm,
	}
	inst.logger = logger.With("page", page.Slug, "instance", inst.id)

	binderOpts := append([]binder.Option{binder.WithLogger(inst.logger)}, opts...)
	inst.binder = binder.New(inst.store, page.Watched(), asm.Assemble, binderOpts...)
	inst.binder.Start()
	inst.logger.Debug("page instance started", "state", inst.binder.State())
	return inst, nil
}

func (i *Instance) ID() string {
	return i.id
}

func (i *Instance) Page() Page {
	return i.page
}

func (i *Instance) Get(id fields.ID) string {
	return i.store.Get(id)
}

// Set writes a field value. Writes to watched fields recompute the widget
// before Set returns.
func (i *Instance) Set(id fields.ID, value string) {
	i.store.Set(id, value)
}

func (i *Instance) Values() map[fields.ID]string {
	return i.store.Snapshot().Values()
}

func (i *Instance) Output() widget.RenderOutput {
	return i.binder.Output()
}

func (i *Instance) State() widget.State {
	return i.binder.State()
}

func (i *Instance) Err() error {
	return i.binder.Err()
}

func (i *Instance) Revision() int {
	return i.binder.Revision()
}

// ToggleMask flips the credential input between masked and revealed and
// returns the new mode.
func (i *Instance) ToggleMask() fields.InputMode {
	i.maskClicks++
	return fields.ModeForClicks(i.maskClicks)
}

func (i *Instance) MaskMode() fields.InputMode {
	return fields.ModeForClicks(i.maskClicks)
}

// Echo records a value reported back by the widget, such as textarea
// content. It never reaches the field store.
func (i *Instance) Echo(value string) {
	i.echo.Publish(value)
}

func (i *Instance) Echoed() string {
	return i.echo.Value()
}

func (i *Instance) OnEcho(fn func(string)) {
	i.echo.OnValue(fn)
}

func (i *Instance) Close() {
	i.binder.Stop()
	i.logger.Debug("page instance closed", "revision", i.binder.Revision())
}
