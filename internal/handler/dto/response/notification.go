package response

import (
	"encoding/json"
	"time"

	"letterdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromNotificationList(items []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(items))
	for i, it := range items {
		res[i] = FromNotificationView(it)
	}
	return res
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	NextCursor    string                  `json:"next_cursor,omitempty"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
