package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduboard/academy/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Route("/trial-requests", func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleAdmin))
				r.Post("/", h.CreateTrialRequest)
				r.Get("/", h.ListTrialRequests)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.ListInvoices)
				r.Get("/{invoiceID}", h.GetInvoice)
				r.Post("/{invoiceID}/receipts", h.UploadReceipt)

				r.Group(func(r chi.Router) {
					r.Use(mw.RequireRole(entity.RoleAdmin))
					r.Post("/", h.CreateInvoice)
					r.Post("/{invoiceID}/receipts/{receiptID}/verify", h.VerifyPayment)
				})
			})

			r.Get("/students", h.ListStudents)
		})
	})

	return mux
}
