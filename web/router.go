package web

import (
	"net/http"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/responses"
	"github.com/zeptools/findoc-core/routing"
)

// RouterOpts - cross-cutting wiring for the route table
type RouterOpts struct {
	RenderThrottle routing.HandlerWrapper // optional, applied to render-heavy routes
	DebugEcho      bool
}

// NewRouter builds the full route table. All handlers run inside the panic
// recovery wrapper.
func (h *Handlers) NewRouter(opts RouterOpts) http.Handler {
	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}

	heavy := []routing.HandlerWrapper{}
	if opts.RenderThrottle != nil {
		heavy = append(heavy, opts.RenderThrottle)
	}

	router.Group("/invoices/", func(g *routing.RouteGroup) {
		g.Handle("GET {id}/pdf", h.DocumentPDF(billing.KindInvoice), heavy...)
		g.Handle("GET {id}/xlsx", h.DocumentXLSX(billing.KindInvoice))
		g.Handle("POST {id}/share", h.CreateShareLink(billing.KindInvoice))
	})
	router.Group("/quotes/", func(g *routing.RouteGroup) {
		g.Handle("GET {id}/pdf", h.DocumentPDF(billing.KindQuote), heavy...)
		g.Handle("GET {id}/xlsx", h.DocumentXLSX(billing.KindQuote))
		g.Handle("POST {id}/share", h.CreateShareLink(billing.KindQuote))
	})
	router.HandleFunc("GET /share/{token}/pdf", h.SharedPDF, heavy...)
	router.HandleFunc("GET /examples/{kind}/pdf", h.ExamplePDF, heavy...)
	router.HandleFunc("GET /healthz", h.Healthz)

	if opts.DebugEcho {
		router.Handle("/debug/echo", &responses.EchoHandler{MaxMemoryMB: 8})
	}

	return routing.RecoverWrapper(router)
}
