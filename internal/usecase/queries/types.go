package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationView is the user-facing read model. Delivery bookkeeping
// (status, attempts, last_error) is intentionally absent: an end user only
// ever sees the content and the read flag.
type NotificationView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// RecipientView carries the contact addresses and standing channel opt-ins
// the dispatcher and processor need.
type RecipientView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PrefEmail    bool      `json:"pref_email"`
	PrefSMS      bool      `json:"pref_sms"`
	PrefWhatsApp bool      `json:"pref_whatsapp"`
	IsActive     bool      `json:"is_active"`
}
