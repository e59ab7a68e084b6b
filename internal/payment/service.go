package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/payment-wallet/internal"
	gatewaytypes "github.com/frahmantamala/payment-wallet/internal/core/datamodel/gateway"
	paymentmodel "github.com/frahmantamala/payment-wallet/internal/core/datamodel/payment"
	"github.com/frahmantamala/payment-wallet/internal/core/events"
	"github.com/frahmantamala/payment-wallet/internal/gateway"
)

// RepositoryAPI is the persistence surface the payment service needs.
type RepositoryAPI interface {
	Create(p *paymentmodel.Payment) error
	GetByPaymentID(paymentID string) (*paymentmodel.Payment, error)
	GetByUserID(userID int64) ([]*paymentmodel.Payment, error)
}

// Gateway is the narrow slice of the payment gateway this service calls.
type Gateway interface {
	CreateOrder(req *gatewaytypes.OrderRequest) (*gatewaytypes.Order, error)
	RefundPayment(paymentID string) (*gatewaytypes.Refund, error)
}

type Service struct {
	gateway   Gateway
	repo      RepositoryAPI
	keySecret string
	eventBus  *events.EventBus
	logger    *slog.Logger
}

func NewService(gw Gateway, repo RepositoryAPI, keySecret string, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		gateway:   gw,
		repo:      repo,
		keySecret: keySecret,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// CreateOrder converts the amount to minor units and asks the gateway for an
// order reservation. The gateway's order object is returned verbatim.
func (s *Service) CreateOrder(req *CreateOrderRequest) (*gatewaytypes.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = paymentmodel.DefaultCurrency
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}

	order, err := s.gateway.CreateOrder(&gatewaytypes.OrderRequest{
		Amount:   int64(math.Round(req.Amount * 100)),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		s.logger.Error("gateway order creation failed", "error", err, "amount", req.Amount, "receipt", receipt)
		return nil, errors.NewExternalError("Payment creation failed", errors.ErrCodeOrderCreationFailed, err)
	}

	return order, nil
}

// VerifyPayment recomputes the confirmation signature and, when it matches,
// persists a new Payment record. A replay of the same payload creates a
// second record; the gateway's checkout posts each confirmation once.
func (s *Service) VerifyPayment(req *VerifyPaymentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if !gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.keySecret) {
		s.logger.Warn("payment signature mismatch",
			"order_id", req.RazorpayOrderID,
			"payment_id", req.RazorpayPaymentID)
		return errors.ErrSignatureMismatch
	}

	p := &paymentmodel.Payment{
		RazorpayOrderID: req.RazorpayOrderID,
		PaymentID:       req.RazorpayPaymentID,
		Signature:       req.RazorpaySignature,
		Status:          paymentmodel.StatusPaid,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to persist verified payment",
			"error", err,
			"order_id", req.RazorpayOrderID,
			"payment_id", req.RazorpayPaymentID)
		return errors.NewInternalError("Error verifying payment", err)
	}

	s.logger.Info("payment verified",
		"id", p.ID,
		"order_id", p.RazorpayOrderID,
		"payment_id", p.PaymentID)

	s.publish(events.NewPaymentVerifiedEvent(p.RazorpayOrderID, p.PaymentID))

	return nil
}

// GetPaymentStatus looks a payment up by its gateway payment id.
func (s *Service) GetPaymentStatus(paymentID string) (*paymentmodel.Payment, error) {
	p, err := s.repo.GetByPaymentID(paymentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		s.logger.Error("payment status lookup failed", "error", err, "payment_id", paymentID)
		return nil, errors.NewInternalError("Error fetching payment status", err)
	}
	return p, nil
}

// Refund delegates to the gateway. The local record is not touched: refund
// status tracking lives with the gateway's webhooks, which this service does
// not consume.
func (s *Service) Refund(req *RefundRequest) (*gatewaytypes.Refund, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	refund, err := s.gateway.RefundPayment(req.PaymentID)
	if err != nil {
		s.logger.Error("gateway refund failed", "error", err, "payment_id", req.PaymentID)
		return nil, errors.NewExternalError("Refund failed", errors.ErrCodeRefundFailed, err)
	}

	s.publish(events.NewRefundInitiatedEvent(refund.PaymentID, refund.ID, float64(refund.Amount)/100))

	return refund, nil
}

// GetUserTransactions returns the user's payments, most recent first.
func (s *Service) GetUserTransactions(userID int64) ([]*paymentmodel.Payment, error) {
	transactions, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("transaction listing failed", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("Error fetching transactions", err)
	}
	if transactions == nil {
		transactions = []*paymentmodel.Payment{}
	}
	return transactions, nil
}

func (s *Service) publish(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "error", fmt.Errorf("%s: %w", event.EventType(), err))
	}
}
