package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

// AuditService stores rejected requests published by the authorization pipeline.
type AuditService struct {
	dispatcher events.Dispatcher
	audits     repository.AccessAuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, audits repository.AccessAuditRepository, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{dispatcher: dispatcher, audits: audits, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAccessDenied, a.handleAccessDenied)
}

// Recent returns the newest denials first.
func (a *AuditService) Recent(ctx context.Context, limit int) ([]domain.AccessDenial, error) {
	rows, err := a.audits.ListRecent(ctx, limit)
	if err != nil {
		return nil, mapRepoError(err, "access audit")
	}
	return rows, nil
}

func (a *AuditService) handleAccessDenied(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AccessDeniedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	denial := payload.Denial
	if err := a.audits.Create(ctx, &denial); err != nil {
		a.logger.Error("access denial not stored", zap.String("id", denial.ID), zap.Error(err))
		return err
	}
	return nil
}
