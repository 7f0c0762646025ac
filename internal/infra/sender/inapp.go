package sender

import (
	"context"

	"letterdesk/internal/domain/notification"
)

// InAppSender is intentionally a no-op: an in-app notification is delivered
// the moment its row exists, because the Read API serves straight from the
// store. Registering it keeps the channel loop uniform.
type InAppSender struct{}

func NewInAppSender() *InAppSender {
	return &InAppSender{}
}

func (s *InAppSender) Send(_ context.Context, _ string, _ notification.RenderedMessage) error {
	return nil
}
