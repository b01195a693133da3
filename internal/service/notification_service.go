package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/shiftswap-service/internal/config"
	"github.com/spec-kit/shiftswap-service/internal/events"
)

// NotificationService handles emitting notifications for swap events.
// Delivery is simulated: candidates and managers would be notified here
// once a real channel exists.
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

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSwapRequested, n.handleSwapRequested)
	n.dispatcher.Subscribe(events.EventSwapRejected, n.handleSwapRejected)
	n.dispatcher.Subscribe(events.EventRankingUnavailable, n.handleRankingUnavailable)
}

func (n *NotificationService) handleSwapRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapRequested", zap.Int64("shift_id", event.ShiftID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapRejected(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapRejected", zap.Int64("shift_id", event.ShiftID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRankingUnavailable(ctx context.Context, event events.Event) error {
	n.logger.Info("RankingUnavailable", zap.Int64("shift_id", event.ShiftID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("shift_id", event.ShiftID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("shift_id", event.ShiftID),
		zap.String("event_type", string(event.Type)))
}
