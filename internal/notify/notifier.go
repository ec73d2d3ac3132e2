package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"hotel-booking/pkg/cache"

	"go.uber.org/zap"
)

const emailQueue = "notify:email"

// Mail is one outbound email job.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Notifier enqueues notifications for asynchronous delivery. Callers must
// not block on delivery; a failed enqueue is logged and dropped.
type Notifier interface {
	Enqueue(ctx context.Context, mail Mail) error
}

type queueNotifier struct {
	cache *cache.Cache
	log   *zap.Logger
}

func NewNotifier(c *cache.Cache, log *zap.Logger) Notifier {
	return &queueNotifier{
		cache: c,
		log:   log.With(zap.String("component", "notifier")),
	}
}

func (n *queueNotifier) Enqueue(ctx context.Context, mail Mail) error {
	payload, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}

	if err := n.cache.PushJob(ctx, emailQueue, payload); err != nil {
		n.log.Error("failed to enqueue mail", zap.String("to", mail.To), zap.Error(err))
		return fmt.Errorf("enqueue mail: %w", err)
	}

	return nil
}

// NoopNotifier discards notifications. Used when no queue is configured and
// in tests.
type NoopNotifier struct{}

func (NoopNotifier) Enqueue(ctx context.Context, mail Mail) error {
	return nil
}
