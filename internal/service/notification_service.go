package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/interaction-service/internal/config"
	"github.com/spec-kit/interaction-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to interaction lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInteractionCreated, n.handleInteractionCreated)
	n.dispatcher.Subscribe(events.EventInteractionStatusChanged, n.handleInteractionStatusChanged)
	n.dispatcher.Subscribe(events.EventInteractionAssigned, n.handleInteractionAssigned)
}

func (n *NotificationService) handleInteractionCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("InteractionCreated", zap.Int64("interaction_id", event.InteractionID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInteractionStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("InteractionStatusChanged", zap.Int64("interaction_id", event.InteractionID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInteractionAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("InteractionAssigned", zap.Int64("interaction_id", event.InteractionID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("interaction_id", event.InteractionID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("interaction_id", event.InteractionID),
		zap.String("event_type", string(event.Type)))
}
