package wallet

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	errors "github.com/frahmantamala/payment-wallet/internal"
	usermodel "github.com/frahmantamala/payment-wallet/internal/core/datamodel/user"
	"github.com/frahmantamala/payment-wallet/internal/core/events"
)

// RepositoryAPI is the persistence surface the wallet service needs.
type RepositoryAPI interface {
	GetByID(userID int64) (*usermodel.User, error)
	Save(u *usermodel.User) error
}

// Service adjusts wallet balances with plain read-modify-write sequences.
// There is no locking or optimistic versioning around these updates, and a
// transfer is two independent writes; concurrent requests against the same
// user can interleave. Known limitation.
type Service struct {
	repo     RepositoryAPI
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// GetBalance returns the user's wallet balance.
func (s *Service) GetBalance(userID int64) (float64, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.ErrUserNotFound
		}
		s.logger.Error("balance lookup failed", "error", err, "user_id", userID)
		return 0, errors.NewInternalError("Error fetching balance", err)
	}
	return u.WalletBalance, nil
}

// Withdraw debits the user's wallet. A missing user and an insufficient
// balance both reject with the same client error.
func (s *Service) Withdraw(req *WithdrawRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(req.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInsufficientBalance
		}
		s.logger.Error("withdrawal user lookup failed", "error", err, "user_id", req.UserID)
		return errors.NewInternalError("Error processing withdrawal", err)
	}

	if u.WalletBalance < req.Amount {
		s.logger.Warn("withdrawal rejected",
			"user_id", req.UserID,
			"balance", u.WalletBalance,
			"amount", req.Amount)
		return errors.ErrInsufficientBalance
	}

	u.WalletBalance -= req.Amount
	if err := s.repo.Save(u); err != nil {
		s.logger.Error("withdrawal save failed", "error", err, "user_id", req.UserID)
		return errors.NewInternalError("Error processing withdrawal", err)
	}

	s.logger.Info("withdrawal successful",
		"user_id", req.UserID,
		"amount", req.Amount,
		"new_balance", u.WalletBalance)

	s.publish(events.NewFundsWithdrawnEvent(u.ID, req.Amount, u.WalletBalance))

	return nil
}

// Transfer moves funds between two users. The debit and credit are two
// independent saves; a failure after the first leaves the ledger
// inconsistent and surfaces as a generic server error.
func (s *Service) Transfer(req *TransferRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	sender, err := s.repo.GetByID(req.SenderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInvalidTransfer
		}
		s.logger.Error("transfer sender lookup failed", "error", err, "sender_id", req.SenderID)
		return errors.NewInternalError("Error processing transfer", err)
	}

	receiver, err := s.repo.GetByID(req.ReceiverID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInvalidTransfer
		}
		s.logger.Error("transfer receiver lookup failed", "error", err, "receiver_id", req.ReceiverID)
		return errors.NewInternalError("Error processing transfer", err)
	}

	if sender.WalletBalance < req.Amount {
		s.logger.Warn("transfer rejected",
			"sender_id", req.SenderID,
			"balance", sender.WalletBalance,
			"amount", req.Amount)
		return errors.ErrInvalidTransfer
	}

	sender.WalletBalance -= req.Amount
	receiver.WalletBalance += req.Amount

	if err := s.repo.Save(sender); err != nil {
		s.logger.Error("transfer debit save failed", "error", err, "sender_id", req.SenderID)
		return errors.NewInternalError("Error processing transfer", err)
	}

	if err := s.repo.Save(receiver); err != nil {
		s.logger.Error("transfer credit save failed after debit",
			"error", err,
			"sender_id", req.SenderID,
			"receiver_id", req.ReceiverID,
			"amount", req.Amount)
		return errors.NewInternalError("Error processing transfer", err)
	}

	s.logger.Info("transfer successful",
		"sender_id", req.SenderID,
		"receiver_id", req.ReceiverID,
		"amount", req.Amount)

	s.publish(events.NewFundsTransferredEvent(req.SenderID, req.ReceiverID, req.Amount))

	return nil
}

func (s *Service) publish(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
