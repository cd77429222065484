package routes

import (
	"github.com/vango-go/vango"
	. "github.com/vango-go/vango/el"

	demosvc "copilot_demo/internal/services/demo"
)

const (
	bootstrapCSS   = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	fontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"
	repositoryURL  = "https://github.com/dash-copilotkit/dash-copilitkit"
)

func Layout(ctx vango.Ctx, children vango.Slot) *vango.VNode {
	pageList := getDeps().Demo.Pages()

	return Html(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Title(Text("CopilotKit Components")),
			LinkEl(Rel("stylesheet"), Href(bootstrapCSS)),
			LinkEl(Rel("stylesheet"), Href(fontAwesomeCSS)),
			LinkEl(Rel("stylesheet"), Href(ctx.Asset("styles.css"))),
		),
		Body(Class("d-flex flex-column min-vh-100"),
			navbar(pageList),
			Main(Class("flex-grow-1"), children),
			footer(),
			VangoScripts(),
		),
	)
}

func navbar(pageList []demosvc.Page) *vango.VNode {
	return Nav(Class("navbar navbar-expand-lg navbar-dark bg-primary shadow-sm"),
		Div(Class("container"),
			A(Class("navbar-brand fw-bold"), Href("/"),
				I(Class("fas fa-robot me-2")),
				Text("CopilotKit Components"),
			),
			Ul(Class("navbar-nav ms-auto"),
				navItem("/", "fas fa-home", "Home"),
				RangeKeyed(pageList,
					func(page demosvc.Page) any { return page.Slug },
					func(page demosvc.Page) *vango.VNode {
						return navItem(page.Path, page.Icon, page.Nav)
					},
				),
			),
		),
	)
}

func navItem(path, icon, label string) *vango.VNode {
	return Li(Class("nav-item"),
		A(Class("nav-link"), Href(path),
			I(Class(icon+" me-1")),
			Text(label),
		),
	)
}

func footer() *vango.VNode {
	return Footer(Class("bg-light border-top py-4 mt-5"),
		Div(Class("container d-flex flex-column flex-md-row justify-content-between gap-2"),
			Div(
				Strong(Text("CopilotKit Components")),
				P(Class("text-muted small mb-0"), Text("AI chat interfaces configured live from the server.")),
			),
			Div(Class("small"),
				A(Class("text-decoration-none me-3"), Href(repositoryURL), Target("_blank"),
					I(Class("fab fa-github me-1")),
					Text("GitHub"),
				),
				A(Class("text-decoration-none"), Href("https://cloud.copilotkit.ai"), Target("_blank"),
					I(Class("fas fa-cloud me-1")),
					Text("CopilotKit Cloud"),
				),
			),
		),
	)
}
