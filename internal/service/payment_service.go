package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

// PaymentService records settled orders.
type PaymentService struct {
	payments   repository.PaymentRepository
	carts      repository.CartRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PaymentDependencies bundles collaborators for the payment service.
type PaymentDependencies struct {
	PaymentRepo repository.PaymentRepository
	CartRepo    repository.CartRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// PaymentInput describes a charge completed by the payment gateway.
type PaymentInput struct {
	TransactionID string
	Amount        float64
	CartItemIDs   []string
	MenuItemIDs   []string
}

// PaymentReceipt is the stored payment plus the number of cart items it cleared.
type PaymentReceipt struct {
	Payment      *domain.Payment
	CartsCleared int64
}

// NewPaymentService constructs the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		payments:   deps.PaymentRepo,
		carts:      deps.CartRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Record stores a payment for uid and removes the paid items from uid's cart.
// A transaction id can only be recorded once.
func (s *PaymentService) Record(ctx context.Context, uid string, in PaymentInput) (*PaymentReceipt, error) {
	if in.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", map[string]any{"amount": in.Amount})
	}
	if len(in.MenuItemIDs) == 0 {
		return nil, apperrors.NewValidationError("payment has no items", nil)
	}
	payer, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}

	payment := &domain.Payment{
		Reference:     generatePaymentReference(),
		UID:           uid,
		Email:         payer.Email,
		TransactionID: strings.TrimSpace(in.TransactionID),
		Amount:        in.Amount,
		CartItemIDs:   in.CartItemIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        domain.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("transaction already recorded", map[string]any{"transaction_id": payment.TransactionID})
		}
		return nil, err
	}

	cleared, err := s.carts.DeleteManyOwned(ctx, in.CartItemIDs, uid)
	if err != nil {
		s.logger.Warn("paid cart items not cleared",
			zap.String("payment", payment.Reference),
			zap.String("uid", uid),
			zap.Error(err))
	}

	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventPaymentRecorded,
		Subject: payment.Reference,
		Actor:   events.Actor{UID: uid},
		Payload: events.PaymentRecordedPayload{
			Reference:     payment.Reference,
			TransactionID: payment.TransactionID,
			Email:         payment.Email,
			Amount:        payment.Amount,
			ItemCount:     len(payment.MenuItemIDs),
		},
	})
	return &PaymentReceipt{Payment: payment, CartsCleared: cleared}, nil
}

// ListForOwner returns uid's payments, newest first.
func (s *PaymentService) ListForOwner(ctx context.Context, uid string) ([]domain.Payment, error) {
	return s.payments.ListByUID(ctx, uid)
}

func generatePaymentReference() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
