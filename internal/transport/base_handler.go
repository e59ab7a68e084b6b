package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/payment-wallet/internal"
	"github.com/frahmantamala/payment-wallet/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers. Every
// response carries the `success` flag.
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes a success envelope with extra payload fields merged in.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, payload map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	h.WriteJSON(w, http.StatusOK, body)
}

// WriteError writes a failure envelope
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// HandleServiceError maps service-layer errors onto the response envelope.
// AppErrors keep their status code and message; 5xx responses also expose
// the raw cause.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := errors.IsAppError(err); ok {
		body := map[string]interface{}{
			"success": false,
			"message": appErr.GetDetailedMessage(),
		}
		if appErr.Cause != nil && appErr.StatusCode >= http.StatusInternalServerError {
			body["error"] = appErr.Cause.Error()
		}
		h.Logger.Error("service error", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
		h.WriteJSON(w, appErr.StatusCode, body)
		return
	}

	h.Logger.Error("unexpected service error", "error", err)
	h.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "internal server error",
		"error":   err.Error(),
	})
}
