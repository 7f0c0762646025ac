// Package sender holds the delivery adapters, one per channel. Every
// adapter tolerates at-least-once invocation: a retried notification may
// legitimately hand the same message to the same recipient twice.
package sender

import (
	"context"
	"errors"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/pkg/errs"
)

// ErrPermanent marks a failure that retrying cannot fix (invalid recipient
// address, rejected template). The processor moves the channel straight to
// exhausted instead of burning the shared attempts budget on it.
var ErrPermanent = errors.New("permanent delivery failure")

func Permanent(err error) error {
	return errs.Mark(err, ErrPermanent)
}

func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent)
}

// Sender delivers one rendered message to one recipient address. The address
// format is channel-specific (email address, E.164 phone number, user id).
type Sender interface {
	Send(ctx context.Context, to string, msg notification.RenderedMessage) error
}

// Registry maps channels to their adapters. A channel without an adapter is
// a per-channel failure at processing time, never a batch abort.
type Registry struct {
	senders map[notification.Channel]Sender
}

func NewRegistry() *Registry {
	return &Registry{senders: make(map[notification.Channel]Sender)}
}

func (r *Registry) Register(ch notification.Channel, s Sender) {
	r.senders[ch] = s
}

func (r *Registry) Lookup(ch notification.Channel) (Sender, bool) {
	s, ok := r.senders[ch]
	return s, ok
}
