package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/billing-admin/internal/events"
)

// AuditService records session and billing activity from domain events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventStaffSignedIn, a.record)
	a.dispatcher.Subscribe(events.EventStaffSignedOut, a.record)
	a.dispatcher.Subscribe(events.EventSessionExpired, a.record)
	a.dispatcher.Subscribe(events.EventInvoiceCreated, a.record)
	a.dispatcher.Subscribe(events.EventInvoiceStatusChanged, a.record)
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("subject_id", event.SubjectID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
