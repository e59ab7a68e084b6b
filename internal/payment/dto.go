package payment

import (
	errors "github.com/frahmantamala/payment-wallet/internal"
	"github.com/frahmantamala/payment-wallet/internal/core/common/validation"
)

// CreateOrderRequest carries the amount in major currency units; the service
// converts to minor units before calling the gateway.
type CreateOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

func (r *CreateOrderRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("amount", r.Amount).Required().Positive(errors.ErrCodeInvalidAmount)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// VerifyPaymentRequest mirrors the field names the gateway's checkout posts
// back to the client.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r *VerifyPaymentRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("razorpay_order_id", r.RazorpayOrderID).Required()
	validator.Field("razorpay_payment_id", r.RazorpayPaymentID).Required()
	validator.Field("razorpay_signature", r.RazorpaySignature).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type RefundRequest struct {
	PaymentID string `json:"paymentId"`
}

func (r *RefundRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("paymentId", r.PaymentID).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
