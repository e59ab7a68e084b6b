package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePaymentVerified  = "payment.verified"
	EventTypeRefundInitiated  = "payment.refund_initiated"
	EventTypeFundsWithdrawn   = "wallet.withdrawn"
	EventTypeFundsTransferred = "wallet.transferred"
)

type PaymentVerifiedEvent struct {
	BaseEvent
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

func NewPaymentVerifiedEvent(orderID, paymentID string) *PaymentVerifiedEvent {
	return &PaymentVerifiedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentVerified,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"order_id":   orderID,
				"payment_id": paymentID,
			},
		},
		OrderID:   orderID,
		PaymentID: paymentID,
	}
}

type RefundInitiatedEvent struct {
	BaseEvent
	PaymentID string  `json:"payment_id"`
	RefundID  string  `json:"refund_id"`
	Amount    float64 `json:"amount"`
}

func NewRefundInitiatedEvent(paymentID, refundID string, amount float64) *RefundInitiatedEvent {
	return &RefundInitiatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRefundInitiated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id": paymentID,
				"refund_id":  refundID,
				"amount":     amount,
			},
		},
		PaymentID: paymentID,
		RefundID:  refundID,
		Amount:    amount,
	}
}

type FundsWithdrawnEvent struct {
	BaseEvent
	UserID     int64   `json:"user_id"`
	Amount     float64 `json:"amount"`
	NewBalance float64 `json:"new_balance"`
}

func NewFundsWithdrawnEvent(userID int64, amount, newBalance float64) *FundsWithdrawnEvent {
	return &FundsWithdrawnEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeFundsWithdrawn,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":     userID,
				"amount":      amount,
				"new_balance": newBalance,
			},
		},
		UserID:     userID,
		Amount:     amount,
		NewBalance: newBalance,
	}
}

type FundsTransferredEvent struct {
	BaseEvent
	SenderID   int64   `json:"sender_id"`
	ReceiverID int64   `json:"receiver_id"`
	Amount     float64 `json:"amount"`
}

func NewFundsTransferredEvent(senderID, receiverID int64, amount float64) *FundsTransferredEvent {
	return &FundsTransferredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeFundsTransferred,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"sender_id":   senderID,
				"receiver_id": receiverID,
				"amount":      amount,
			},
		},
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
	}
}
