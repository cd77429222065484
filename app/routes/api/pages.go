package api

import (
	"errors"

	"github.com/vango-go/vango"

	"copilot_demo/internal/fields"
	"copilot_demo/internal/pages"
	demosvc "copilot_demo/internal/services/demo"
	"copilot_demo/internal/widget"
)

type PagesResponse struct {
	Pages []demosvc.Summary `json:"pages"`
}

type RenderParams struct {
	Slug string `param:"slug"`
}

type RenderRequest struct {
	Values map[string]string `json:"values"`
}

type RenderResponse struct {
	Page   string                `json:"page"`
	State  widget.State          `json:"state"`
	Config *widget.Configuration `json:"config,omitempty"`
	Notice *widget.Notice        `json:"notice,omitempty"`
	Props  map[string]any        `json:"props,omitempty"`
}

// Pages serves the catalog and stateless renders. Handlers are methods so
// the route table can bind them to one service.
type Pages struct {
	Service *demosvc.Service
}

func (h Pages) ListGET(ctx vango.Ctx) (*vango.Response[PagesResponse], error) {
	return vango.OK(PagesResponse{Pages: h.Service.Summaries()}), nil
}

func (h Pages) RenderPOST(ctx vango.Ctx, params RenderParams, body RenderRequest) (*vango.Response[RenderResponse], error) {
	out, err := h.Service.Render(params.Slug, body.Values)
	if err != nil {
		return nil, renderError(err)
	}

	resp := RenderResponse{
		Page:   params.Slug,
		State:  out.State(),
		Config: out.Config,
		Notice: out.Notice,
	}
	if out.Config != nil {
		resp.Props = out.Config.Props()
	}
	return vango.OK(resp), nil
}

func renderError(err error) error {
	var enumErr *widget.EnumError
	switch {
	case errors.Is(err, pages.ErrUnknownPage):
		return vango.NotFound(err.Error())
	case errors.As(err, &enumErr), errors.Is(err, fields.ErrUnknownField):
		return vango.BadRequest(err)
	default:
		return err
	}
}
