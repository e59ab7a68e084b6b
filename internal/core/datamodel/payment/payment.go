package payment

import "time"

// Declared status set. The verify flow historically writes "Paid", which is
// not a member of this set; kept as-is to stay compatible with existing rows.
const (
	StatusPending  = "Pending"
	StatusSuccess  = "Success"
	StatusFailed   = "Failed"
	StatusRefunded = "Refunded"
	StatusPaid     = "Paid"
)

const (
	RefundNotInitiated = "Not Initiated"
	RefundProcessing   = "Processing"
	RefundCompleted    = "Completed"
)

const DefaultCurrency = "INR"

type Payment struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          *int64    `json:"user_id,omitempty" gorm:"column:user_id;index"`
	RazorpayOrderID string    `json:"razorpay_order_id" gorm:"column:razorpay_order_id;not null;index"`
	PaymentID       string    `json:"payment_id" gorm:"column:payment_id;index"`
	Signature       string    `json:"-" gorm:"column:signature"`
	Amount          float64   `json:"amount" gorm:"column:amount"`
	Currency        string    `json:"currency" gorm:"column:currency;default:'INR'"`
	Status          string    `json:"status" gorm:"column:status;default:'Pending'"`
	TransactionID   *string   `json:"transaction_id,omitempty" gorm:"column:transaction_id;uniqueIndex"`
	FailureReason   *string   `json:"failure_reason,omitempty" gorm:"column:failure_reason"`
	RefundStatus    string    `json:"refund_status" gorm:"column:refund_status;default:'Not Initiated'"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}
