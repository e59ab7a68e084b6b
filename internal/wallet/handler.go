package wallet

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	errors "github.com/frahmantamala/payment-wallet/internal"
	"github.com/frahmantamala/payment-wallet/internal/transport"
)

type ServiceAPI interface {
	GetBalance(userID int64) (float64, error)
	Withdraw(req *WithdrawRequest) error
	Transfer(req *TransferRequest) error
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

// GetBalance handles GET /api/payments/balance/{userId}
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.Logger.Error("GetBalance: invalid user ID", "user_id", chi.URLParam(r, "userId"))
		h.HandleServiceError(w, errors.NewValidationError("invalid user ID", errors.ErrCodeValidationFailed))
		return
	}

	balance, err := h.Service.GetBalance(userID)
	if err != nil {
		h.Logger.Error("GetBalance: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"balance": balance})
}

// Withdraw handles POST /api/payments/withdraw
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("Withdraw: failed to parse request body", "error", err)
		h.HandleServiceError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := h.Service.Withdraw(&req); err != nil {
		h.Logger.Error("Withdraw: service error", "error", err, "user_id", req.UserID, "amount", req.Amount)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"message": "Withdrawal successful"})
}

// Transfer handles POST /api/payments/transfer
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("Transfer: failed to parse request body", "error", err)
		h.HandleServiceError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := h.Service.Transfer(&req); err != nil {
		h.Logger.Error("Transfer: service error", "error", err,
			"sender_id", req.SenderID, "receiver_id", req.ReceiverID, "amount", req.Amount)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, map[string]interface{}{"message": "Funds transferred successfully"})
}
