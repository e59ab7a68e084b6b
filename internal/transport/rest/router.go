package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/payment-wallet/internal/payment"
	"github.com/frahmantamala/payment-wallet/internal/transport/middleware"
	"github.com/frahmantamala/payment-wallet/internal/transport/swagger"
	"github.com/frahmantamala/payment-wallet/internal/wallet"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, paymentHandler *payment.Handler, walletHandler *wallet.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)
	})

	// Payment and wallet endpoints share the /api/payments mount
	router.Route("/api/payments", func(r chi.Router) {
		if paymentHandler != nil {
			r.Post("/create-order", paymentHandler.CreateOrder)
			r.Post("/verify", paymentHandler.VerifyPayment)
			r.Get("/status/{paymentId}", paymentHandler.GetPaymentStatus)
			r.Post("/refund", paymentHandler.RefundPayment)
			r.Get("/transactions/{userId}", paymentHandler.GetUserTransactions)
		}

		if walletHandler != nil {
			r.Get("/balance/{userId}", walletHandler.GetBalance)
			r.Post("/withdraw", walletHandler.Withdraw)
			r.Post("/transfer", walletHandler.Transfer)
		}
	})
}
