package routes

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/vango-go/vango"
	. "github.com/vango-go/vango/el"
	corevango "github.com/vango-go/vango/pkg/vango"
	"github.com/vango-go/vango/setup"

	"copilot_demo/internal/binder"
	"copilot_demo/internal/fields"
	"copilot_demo/internal/pages"
	demosvc "copilot_demo/internal/services/demo"
	"copilot_demo/internal/widget"
)

const (
	widgetIslandID     = "copilotkit"
	widgetIslandModule = "/js/islands/copilotkit.js"
)

type DemoProps struct {
	Slug string
}

// widgetEvent is what the widget island posts back, e.g. textarea content.
type widgetEvent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func DemoPage(slug string) func(vango.Ctx) *vango.VNode {
	return func(ctx vango.Ctx) *vango.VNode {
		return Div(DemoRoot(DemoProps{Slug: slug}))
	}
}

func DemoRoot(props DemoProps) vango.Component {
	return vango.Setup(props, func(s vango.SetupCtx[DemoProps]) vango.RenderFn {
		demoService := getDeps().Demo
		slug := s.Props().Peek().Slug

		// The binder evaluates once inside NewInstance, before the signals
		// exist; that first output is read back below as their initial value.
		var (
			output    *corevango.Signal[widget.RenderOutput]
			errorText *corevango.Signal[string]
		)
		instance, startErr := demoService.NewInstance(slug,
			binder.WithTarget(func(out widget.RenderOutput) {
				if output == nil {
					return
				}
				output.Set(out)
				errorText.Set("")
			}),
			binder.WithErrorHandler(func(err error) {
				if errorText == nil {
					return
				}
				errorText.Set(err.Error())
			}),
		)

		initialOutput := widget.RenderOutput{}
		initialError := ""
		initialValues := map[fields.ID]string{}
		initialMask := fields.InputMasked
		initialEcho := ""
		var page demosvc.Page
		if startErr != nil {
			slog.Error("failed to start page instance", "page", slug, "error", startErr)
			initialError = startErr.Error()
		} else {
			page = instance.Page()
			initialOutput = instance.Output()
			initialValues = instance.Values()
			initialMask = instance.MaskMode()
			initialEcho = instance.Echoed()
			if err := instance.Err(); err != nil {
				initialError = err.Error()
			}
		}

		output = setup.Signal(&s, initialOutput)
		errorText = setup.Signal(&s, initialError)
		values := setup.Signal(&s, initialValues)
		mask := setup.Signal(&s, initialMask)
		echoed := setup.Signal(&s, initialEcho)

		s.OnMount(func() vango.Cleanup {
			if instance == nil {
				return nil
			}
			instance.OnEcho(func(value string) {
				echoed.Set(value)
			})
			return func() {
				instance.Close()
			}
		})

		onField := func(id fields.ID) func(string) {
			return func(value string) {
				if instance == nil {
					return
				}
				instance.Set(id, value)
				values.Set(instance.Values())
			}
		}

		onToggleMask := func() {
			if instance == nil {
				return
			}
			mask.Set(instance.ToggleMask())
		}

		onWidgetMessage := func(msg corevango.IslandMessage) {
			if instance == nil {
				return
			}
			var event widgetEvent
			if err := json.Unmarshal(msg.Raw, &event); err != nil {
				slog.Warn("ignoring widget message", "page", slug, "instance", instance.ID(), "error", err)
				return
			}
			if event.Type == "value" {
				instance.Echo(event.Value)
			}
		}

		return func() *vango.VNode {
			if startErr != nil {
				return Div(Class("container py-5"),
					Div(Class("alert alert-danger"), Role("alert"), Text(errorText.Get())),
				)
			}

			current := output.Get()
			return Div(
				pageHeader(page),
				Div(Class("container pb-5"),
					configurationPanel(page, values.Get(), mask.Get(), onField, onToggleMask),
					liveDemo(page, current, errorText.Get(), echoed.Get(), onWidgetMessage),
					If(len(page.UseCases) > 0, useCases(page.UseCases)),
					configurationPreview(current),
					codeExample(page),
				),
			)
		}
	})
}

func pageHeader(page demosvc.Page) *vango.VNode {
	return Div(Class("container py-4"),
		H1(Class("display-5 fw-bold mb-3"),
			I(Class(page.Icon+" me-3 text-primary")),
			Text(page.Title),
		),
		P(Class("lead text-muted mb-4"), Text(page.Lead)),
		If(page.Info != "",
			Div(Class("alert alert-info mb-4"), Role("alert"),
				I(Class("fas fa-info-circle me-2")),
				Text(page.Info),
			),
		),
	)
}

func configurationPanel(page demosvc.Page, values map[fields.ID]string, mode fields.InputMode, onField func(fields.ID) func(string), onToggleMask func()) *vango.VNode {
	return Div(Class("card mb-4"),
		Div(Class("card-header"),
			H5(Class("mb-0"), I(Class("fas fa-cog me-2")), Text("Configuration")),
		),
		Div(Class("card-body"),
			Div(Class("row g-3"),
				RangeKeyed(page.Fields,
					func(def fields.Definition) any { return string(def.ID) },
					func(def fields.Definition) *vango.VNode {
						return fieldControl(def, values[def.ID], mode, onField(def.ID), onToggleMask)
					},
				),
			),
		),
	)
}

func fieldControl(def fields.Definition, value string, mode fields.InputMode, onInput func(string), onToggleMask func()) *vango.VNode {
	id := string(def.ID)
	column := "col-md-4"
	var control *vango.VNode

	switch def.Kind {
	case fields.KindPassword:
		column = "col-md-6"
		control = Div(Class("input-group"),
			Input(ID(id), Class("form-control"), Type(string(mode)), Placeholder(def.Placeholder), Value(value), OnInput(onInput)),
			Button(Class("btn btn-outline-secondary"), Type("button"), AriaLabel("Toggle visibility"), OnClick(onToggleMask),
				I(Class(mode.Icon())),
			),
		)
	case fields.KindTextarea:
		column = "col-md-6"
		rows := def.Rows
		if rows == 0 {
			rows = 3
		}
		control = Textarea(ID(id), Class("form-control"), Rows(rows), Placeholder(def.Placeholder), Value(value), OnInput(onInput))
	case fields.KindSelect:
		control = Select(ID(id), Class("form-select"), Value(value), OnInput(onInput),
			RangeKeyed(def.Options,
				func(option fields.Option) any { return option.Value },
				func(option fields.Option) *vango.VNode {
					return Option(Value(option.Value), Selected(option.Value == value), Text(option.Label))
				},
			),
		)
	default:
		control = Input(ID(id), Class("form-control"), Type("text"), Placeholder(def.Placeholder), Value(value), OnInput(onInput))
	}

	return Div(Class(column),
		Label(For(id), Class("form-label fw-bold"), Text(def.Label)),
		control,
		If(def.Help != "", Small(Class("text-muted"), Text(def.Help))),
	)
}

func liveDemo(page demosvc.Page, out widget.RenderOutput, errorMessage, echoed string, onWidgetMessage func(corevango.IslandMessage)) *vango.VNode {
	var hint, body *vango.VNode
	if page.Hint != nil && page.Hint.Message != "" {
		hint = hintAlert(*page.Hint)
	}
	switch {
	case errorMessage != "":
		body = Div(Class("alert alert-danger text-center"), Role("alert"),
			I(Class("fas fa-exclamation-circle me-2")),
			Text(errorMessage),
		)
	case out.Notice != nil:
		body = noticeAlert(*out.Notice)
	case out.Config != nil:
		body = widgetIsland(*out.Config, onWidgetMessage)
	}

	return Div(Class("card"),
		Div(Class("card-header"),
			H5(Class("mb-0"), I(Class("fas fa-play me-2")), Text("Live Demo")),
		),
		Div(Class("card-body"),
			hint,
			Div(Class("position-relative border rounded p-3 demo-stage"), TestID("demo-stage"), body),
			If(page.Echo, echoPanel(echoed)),
		),
	)
}

func hintAlert(hint widget.Notice) *vango.VNode {
	return Div(Class("alert alert-success mb-3"),
		I(Class(hint.Icon+" me-2")),
		Text(hint.Message),
	)
}

func noticeAlert(notice widget.Notice) *vango.VNode {
	tone := notice.Tone
	if tone == "" {
		tone = widget.ToneWarning
	}
	return Div(Class("alert alert-"+string(tone)+" text-center"), Role("alert"), TestID("widget-notice"),
		If(notice.Icon != "", I(Class(notice.Icon+" me-2"))),
		Text(notice.Message),
	)
}

func widgetIsland(config widget.Configuration, onWidgetMessage func(corevango.IslandMessage)) *vango.VNode {
	return Div(
		Class("copilotkit-host"),
		TestID("widget"),
		Data("module", widgetIslandModule),
		JSIsland(widgetIslandID, config.Props()),
		OnIslandMessage(onWidgetMessage),
		IslandPlaceholder(
			Div(Class("text-muted small"),
				I(Class("fas fa-spinner fa-spin me-2")),
				Textf("Loading %s widget...", config.Variant),
			),
		),
	)
}

func echoPanel(value string) *vango.VNode {
	content := value
	if content == "" {
		content = "No content yet..."
	}
	return Div(Class("mt-4"),
		H6(Class("fw-bold mb-2"), Text("Current Content:")),
		Pre(Class("border rounded p-3 bg-light mb-0 echo-output"), Text(content)),
	)
}

func useCases(cases []pages.UseCase) *vango.VNode {
	return Div(Class("card mt-4"),
		Div(Class("card-header"),
			H5(Class("mb-0"), I(Class("fas fa-lightbulb me-2")), Text("Use Cases")),
		),
		Div(Class("card-body"),
			Div(Class("row"),
				RangeKeyed(cases,
					func(useCase pages.UseCase) any { return useCase.Title },
					func(useCase pages.UseCase) *vango.VNode {
						return Div(Class("col-md-6 col-lg-3 mb-3 text-center"),
							I(Class(useCase.Icon+" fa-2x text-primary mb-3")),
							H6(Class("fw-bold mb-2"), Text(useCase.Title)),
							P(Class("text-muted mb-0"), Text(useCase.Description)),
						)
					},
				),
			),
		),
	)
}

func configurationPreview(out widget.RenderOutput) *vango.VNode {
	preview, err := previewJSON(out)
	if err != nil {
		preview = err.Error()
	}
	return Div(Class("card mt-4"),
		Div(Class("card-header d-flex justify-content-between"),
			H5(Class("mb-0"), I(Class("fas fa-sliders-h me-2")), Text("Configuration")),
			Span(Class("badge bg-secondary align-self-center"), Text(string(out.State()))),
		),
		Div(Class("card-body"),
			Pre(Class("bg-light rounded p-3 mb-0"), Code(Text(preview))),
		),
	)
}

// previewJSON shows the boundary object with the credential value masked.
func previewJSON(out widget.RenderOutput) (string, error) {
	if out.Config == nil {
		return "{}", nil
	}
	config := *out.Config
	config.Credential.Value = maskSecret(config.Credential.Value)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return "", errors.New("configuration preview unavailable")
	}
	return string(data), nil
}

func maskSecret(value string) string {
	runes := []rune(value)
	if len(runes) <= 4 {
		return "****"
	}
	return string(runes[:4]) + "****"
}

func codeExample(page demosvc.Page) *vango.VNode {
	return Div(Class("card mt-4"),
		Div(Class("card-header"),
			H5(Class("mb-0"), I(Class("fas fa-code me-2")), Text("Code Example")),
		),
		Div(Class("card-body"),
			Pre(Class("bg-light rounded p-3 mb-0"), Code(Class("language-go"), Text(page.Example))),
		),
	)
}
