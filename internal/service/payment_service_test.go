package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

type paymentFixture struct {
	svc       *PaymentService
	payments  *mockPaymentRepo
	carts     *mockCartRepo
	users     *mockUserRepo
	published []events.Event
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{payments: new(mockPaymentRepo), carts: new(mockCartRepo), users: new(mockUserRepo)}
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventPaymentRecorded, func(_ context.Context, e events.Event) error {
		f.published = append(f.published, e)
		return nil
	})
	f.svc = NewPaymentService(PaymentDependencies{
		PaymentRepo: f.payments,
		CartRepo:    f.carts,
		UserRepo:    f.users,
		Dispatcher:  dispatcher,
	})
	return f
}

func validPayment() PaymentInput {
	return PaymentInput{
		TransactionID: "pi_123",
		Amount:        24.5,
		CartItemIDs:   []string{"c1", "c2"},
		MenuItemIDs:   []string{"m1", "m2"},
	}
}

func TestPaymentRecord(t *testing.T) {
	f := newPaymentFixture()
	f.users.On("GetByUID", mock.Anything, "u1").Return(&domain.User{UID: "u1", Email: "ada@example.com"}, nil)
	f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.UID == "u1" &&
			p.Email == "ada@example.com" &&
			p.Status == domain.PaymentStatusPending &&
			strings.HasPrefix(p.Reference, "PAY-")
	})).Return(nil)
	f.carts.On("DeleteManyOwned", mock.Anything, []string{"c1", "c2"}, "u1").Return(int64(2), nil)

	receipt, err := f.svc.Record(context.Background(), "u1", validPayment())
	require.NoError(t, err)

	assert.Equal(t, int64(2), receipt.CartsCleared)
	require.Len(t, f.published, 1)
	payload := f.published[0].Payload.(events.PaymentRecordedPayload)
	assert.Equal(t, "pi_123", payload.TransactionID)
	assert.Equal(t, 2, payload.ItemCount)
	f.payments.AssertExpectations(t)
	f.carts.AssertExpectations(t)
}

func TestPaymentRecordRejectsBadInput(t *testing.T) {
	f := newPaymentFixture()

	in := validPayment()
	in.Amount = 0
	_, err := f.svc.Record(context.Background(), "u1", in)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	in = validPayment()
	in.MenuItemIDs = nil
	_, err = f.svc.Record(context.Background(), "u1", in)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentRecordDuplicateTransaction(t *testing.T) {
	f := newPaymentFixture()
	f.users.On("GetByUID", mock.Anything, "u1").Return(&domain.User{UID: "u1"}, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := f.svc.Record(context.Background(), "u1", validPayment())

	assert.Equal(t, http.StatusConflict, statusOf(err))
	f.carts.AssertNotCalled(t, "DeleteManyOwned", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.published)
}

func TestPaymentRecordKeepsPaymentWhenCartCleanupFails(t *testing.T) {
	f := newPaymentFixture()
	f.users.On("GetByUID", mock.Anything, "u1").Return(&domain.User{UID: "u1"}, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.carts.On("DeleteManyOwned", mock.Anything, mock.Anything, "u1").Return(int64(0), errors.New("timeout"))

	receipt, err := f.svc.Record(context.Background(), "u1", validPayment())
	require.NoError(t, err)
	assert.Zero(t, receipt.CartsCleared)
	assert.Len(t, f.published, 1)
}
