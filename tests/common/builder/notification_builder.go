//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"letterdesk/internal/domain/notification"
	"letterdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationBuilder assembles notifications for tests. Defaults model the
// common case: one fresh in_app+email row for a request_created event.
type NotificationBuilder struct {
	UserID   uuid.UUID
	Kind     notification.Kind
	Payload  []byte
	Channels []notification.Channel
	Now      time.Time
}

func NewNotificationBuilder() *NotificationBuilder {
	payload, _ := json.Marshal(map[string]any{
		"request_id":    uuid.New().String(),
		"request_title": "Letter for MSc application",
		"student_name":  "Dana Roth",
	})
	return &NotificationBuilder{
		UserID:   uuid.New(),
		Kind:     notification.KindRequestCreated,
		Payload:  payload,
		Channels: []notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
		Now:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *NotificationBuilder) WithUserID(id uuid.UUID) *NotificationBuilder {
	b.UserID = id
	return b
}

func (b *NotificationBuilder) WithKind(k notification.Kind) *NotificationBuilder {
	b.Kind = k
	return b
}

func (b *NotificationBuilder) WithChannels(chs ...notification.Channel) *NotificationBuilder {
	b.Channels = chs
	return b
}

func (b *NotificationBuilder) WithNow(now time.Time) *NotificationBuilder {
	b.Now = now
	return b
}

func (b *NotificationBuilder) BuildDomain() (*notification.Notification, error) {
	return notification.New(b.UserID, b.Kind, b.Payload, b.Channels, b.Now)
}

func (b *NotificationBuilder) BuildView() *queries.NotificationView {
	return &queries.NotificationView{
		ID:        uuid.New(),
		UserID:    b.UserID,
		Kind:      string(b.Kind),
		Payload:   json.RawMessage(b.Payload),
		Read:      false,
		CreatedAt: b.Now,
	}
}

// RecipientBuilder assembles user recipient views for dispatcher tests.
type RecipientBuilder struct {
	View queries.RecipientView
}

func NewRecipientBuilder() *RecipientBuilder {
	return &RecipientBuilder{View: queries.RecipientView{
		ID:           uuid.New(),
		Email:        "lecturer@example.edu",
		Phone:        "+15550100",
		PrefEmail:    true,
		PrefSMS:      false,
		PrefWhatsApp: false,
		IsActive:     true,
	}}
}

func (b *RecipientBuilder) WithID(id uuid.UUID) *RecipientBuilder {
	b.View.ID = id
	return b
}

func (b *RecipientBuilder) WithPrefs(email, sms, whatsapp bool) *RecipientBuilder {
	b.View.PrefEmail = email
	b.View.PrefSMS = sms
	b.View.PrefWhatsApp = whatsapp
	return b
}

func (b *RecipientBuilder) Inactive() *RecipientBuilder {
	b.View.IsActive = false
	return b
}

func (b *RecipientBuilder) Build() *queries.RecipientView {
	v := b.View
	return &v
}
