package wallet

import (
	errors "github.com/frahmantamala/payment-wallet/internal"
	"github.com/frahmantamala/payment-wallet/internal/core/common/validation"
)

type WithdrawRequest struct {
	UserID int64   `json:"userId"`
	Amount float64 `json:"amount"`
}

func (r *WithdrawRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("userId", r.UserID).Required()
	validator.Field("amount", r.Amount).Required().Positive(errors.ErrCodeInvalidAmount)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type TransferRequest struct {
	SenderID   int64   `json:"senderId"`
	ReceiverID int64   `json:"receiverId"`
	Amount     float64 `json:"amount"`
}

func (r *TransferRequest) Validate() error {
	validator := validation.NewValidator()

	validator.Field("senderId", r.SenderID).Required()
	validator.Field("receiverId", r.ReceiverID).Required()
	validator.Field("amount", r.Amount).Required().Positive(errors.ErrCodeInvalidAmount)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
