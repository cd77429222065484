package routes

import (
	"github.com/vango-go/vango"

	"copilot_demo/app/routes/api"
)

// Register adds all routes to the app. Demo pages come from the catalog, so
// the table is built at startup instead of from the file tree.
func Register(app *vango.App) {
	demoService := getDeps().Demo

	// Layouts
	app.Layout("/", Layout)

	// Pages
	app.Page("/", IndexPage)
	for _, page := range demoService.Pages() {
		app.Page(page.Path, DemoPage(page.Slug))
	}

	// API routes
	pagesAPI := api.Pages{Service: demoService}
	app.API("GET", "/api/health", api.HealthGET)
	app.API("GET", "/api/pages", pagesAPI.ListGET)
	app.API("POST", "/api/pages/:slug/render", pagesAPI.RenderPOST)
}
