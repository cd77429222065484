package routes

import (
	"github.com/vango-go/vango"
	. "github.com/vango-go/vango/el"

	demosvc "copilot_demo/internal/services/demo"
)

const quickStart = `service := demo.NewService(pages.DefaultCatalog(), config.Load(), slog.Default())

out, err := service.Render("chat", map[string]string{
    "chat-api-key": "your-api-key",
    "chat-title":   "AI Assistant",
})`

func IndexPage(ctx vango.Ctx) *vango.VNode {
	var variantPages []demosvc.Page
	for _, page := range getDeps().Demo.Pages() {
		if !page.UserSelectedVariant() {
			variantPages = append(variantPages, page)
		}
	}

	return Div(
		hero(),
		Section(Class("container py-5"),
			Div(Class("text-center mb-5"),
				H2(Class("fw-bold"), Text("Choose Your Interface")),
				P(Class("text-muted"), Text("Select the perfect AI interface for your application")),
			),
			Div(Class("row g-4"),
				RangeKeyed(variantPages,
					func(page demosvc.Page) any { return page.Slug },
					featureCard,
				),
			),
		),
		Section(Class("container pb-5"),
			Div(Class("card shadow-sm border-0 col-lg-8 mx-auto"),
				Div(Class("card-body"),
					H5(Class("fw-bold"), I(Class("fas fa-download me-2")), Text("Quick Start")),
					Pre(Class("bg-light rounded p-3 mb-3"), Code(Text(quickStart))),
					P(Class("text-muted small mb-0"),
						Text("Get your free API key from "),
						A(Href("https://cloud.copilotkit.ai"), Target("_blank"), Text("CopilotKit Cloud")),
						Text(" or use your own OpenAI key with a custom runtime."),
					),
				),
			),
		),
	)
}

func hero() *vango.VNode {
	return Section(Class("bg-light py-5"),
		Div(Class("container text-center col-lg-10"),
			H1(Class("display-4 fw-bold mb-4"),
				I(Class("fas fa-robot me-3 text-primary")),
				Text("CopilotKit Components"),
			),
			P(Class("lead mb-4 text-muted"),
				Text("Integrate powerful AI chat interfaces into your application with ease. "),
				Text("Choose from 4 different UI types and customize to fit your needs."),
			),
			A(Class("btn btn-primary btn-lg me-3"), Href("/chat"),
				I(Class("fas fa-rocket me-2")),
				Text("Get Started"),
			),
			A(Class("btn btn-outline-secondary btn-lg"), Href(repositoryURL), Target("_blank"),
				I(Class("fab fa-github me-2")),
				Text("View on GitHub"),
			),
		),
	)
}

func featureCard(page demosvc.Page) *vango.VNode {
	return Div(Class("col-md-6 col-lg-3"),
		Div(Class("card h-100 shadow-sm border-0"),
			Div(Class("card-body text-center d-flex flex-column"),
				I(Class(page.Icon+" fa-3x text-primary mb-3")),
				H5(Class("fw-bold"), Text(page.Title)),
				P(Class("text-muted flex-grow-1"), Text(page.Summary)),
				A(Class("btn btn-outline-primary w-100"), Href(page.Path),
					Text("Try it out "),
					I(Class("fas fa-arrow-right")),
				),
			),
		),
	)
}
