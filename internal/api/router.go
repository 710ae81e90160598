package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/clique360/backend/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware, basePath string) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route(basePath, func(r chi.Router) {
		r.HandleFunc("/health", h.Health)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Clients)
			r.Post("/", h.CreateClient)
			r.Put("/{id}", h.UpdateClient)
			r.Delete("/{id}", h.DeleteClient)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.Invoices)
			r.Post("/", h.CreateInvoice)
			r.Post("/{id}/status", h.TransitionInvoice)
		})

		r.Route("/company", func(r chi.Router) {
			r.Get("/payment-methods", h.PaymentMethods)
			r.Post("/payment-methods", h.UpdatePaymentMethods)
		})

		r.Post("/chat", h.Chat)
	})

	return mux
}
