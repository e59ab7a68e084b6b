package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	errors "github.com/frahmantamala/payment-wallet/internal"
	gatewaytypes "github.com/frahmantamala/payment-wallet/internal/core/datamodel/gateway"
	paymentmodel "github.com/frahmantamala/payment-wallet/internal/core/datamodel/payment"
	"github.com/frahmantamala/payment-wallet/internal/transport"
)

type ServiceAPI interface {
	CreateOrder(req *CreateOrderRequest) (*gatewaytypes.Order, error)
	VerifyPayment(req *VerifyPaymentRequest) error
	GetPaymentStatus(paymentID string) (*paymentmodel.Payment, error)
	Refund(req *RefundRequest) (*gatewaytypes.Refund, error)
	GetUserTransactions(userID int64) ([]*paymentmodel.Payment, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger),
		Service:     service,
	}
}

// CreateOrder handles POST /api/payments/create-order
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("CreateOrder: failed to parse request body", "error", err)
		h.HandleServiceError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	order, err := h.Service.CreateOrder(&req)
	if err != nil {
		h.Logger.Error("CreateOrder: service error", "error", err, "amount", req.Amount)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateOrder: order created", "order_id", order.ID, "amount", order.Amount)

	h.WriteSuccess(w, map[string]interface{}{"order": order})
}

// VerifyPayment handles POST /api/payments/verify
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("VerifyPayment: failed to parse request body", "error", err)
		h.HandleServiceError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := h.Service.VerifyPayment(&req); err != nil {
		h.Logger.Error("VerifyPayment: service error", "error", err, "order_id", req.RazorpayOrderID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"message": "Payment verified successfully"})
}

// GetPaymentStatus handles GET /api/payments/status/{paymentId}
func (h *Handler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	p, err := h.Service.GetPaymentStatus(paymentID)
	if err != nil {
		h.Logger.Error("GetPaymentStatus: service error", "error", err, "payment_id", paymentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"payment": p})
}

// RefundPayment handles POST /api/payments/refund
func (h *Handler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("RefundPayment: failed to parse request body", "error", err)
		h.HandleServiceError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	refund, err := h.Service.Refund(&req)
	if err != nil {
		h.Logger.Error("RefundPayment: service error", "error", err, "payment_id", req.PaymentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"refund": refund})
}

// GetUserTransactions handles GET /api/payments/transactions/{userId}
func (h *Handler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.Logger.Error("GetUserTransactions: invalid user ID", "user_id", chi.URLParam(r, "userId"))
		h.HandleServiceError(w, errors.NewValidationError("invalid user ID", errors.ErrCodeValidationFailed))
		return
	}

	transactions, err := h.Service.GetUserTransactions(userID)
	if err != nil {
		h.Logger.Error("GetUserTransactions: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"transactions": transactions})
}
