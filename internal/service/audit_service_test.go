package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/config"
	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

func TestAuditServiceStoresDenials(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	audits := new(mockAuditRepo)
	NewAuditService(dispatcher, audits, zap.NewNop()).RegisterHandlers()

	denial := domain.AccessDenial{ID: "d1", Reason: "INSUFFICIENT_ROLE", Status: 403, Path: "/users", OccurredAt: time.Now()}
	audits.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.AccessDenial) bool {
		return d.ID == "d1" && d.Reason == "INSUFFICIENT_ROLE"
	})).Return(nil)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventAccessDenied,
		Payload: events.AccessDeniedPayload{Denial: denial},
	})
	require.NoError(t, err)
	audits.AssertExpectations(t)
}

func TestAuditServiceReportsStoreFailure(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	audits := new(mockAuditRepo)
	NewAuditService(dispatcher, audits, nil).RegisterHandlers()
	audits.On("Create", mock.Anything, mock.Anything).Return(errors.New("pool closed"))

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventAccessDenied,
		Payload: events.AccessDeniedPayload{Denial: domain.AccessDenial{ID: "d2"}},
	})
	assert.ErrorContains(t, err, "pool closed")
}

func TestAuditServiceRecent(t *testing.T) {
	audits := new(mockAuditRepo)
	audits.On("ListRecent", mock.Anything, 20).Return([]domain.AccessDenial{{ID: "d1"}}, nil)

	rows, err := NewAuditService(nil, audits, nil).Recent(context.Background(), 20)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAuditServiceRecentWithoutPostgres(t *testing.T) {
	svc := NewAuditService(nil, repository.NewAccessAuditRepository(nil), nil)

	rows, err := svc.Recent(context.Background(), 10)
	require.Error(t, err)
	assert.Nil(t, rows)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "FEATURE_UNAVAILABLE", domainErr.Code)
	assert.Equal(t, 503, domainErr.HTTPStatus)
}

func TestNotificationServiceHandlesEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{
		EmailFrom:  "noreply@example.com",
		WebhookURL: "https://hooks.example.com/orders",
	}).RegisterHandlers()

	ctx := context.Background()
	assert.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		Subject: "u1",
		Payload: events.UserRegisteredPayload{Name: "Ada", Email: "ada@example.com"},
	}))
	assert.NoError(t, dispatcher.Publish(ctx, events.Event{
		Type:    events.EventPaymentRecorded,
		Subject: "PAY-1",
		Payload: events.PaymentRecordedPayload{Reference: "PAY-1", Amount: 10, ItemCount: 1},
	}))
}
