package response

import (
	"letterdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type DispatchResponse struct {
	NotificationIDs []uuid.UUID `json:"notification_ids"`
}

type ProcessResponse struct {
	Summary commands.ProcessingSummary `json:"summary"`
}

type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}
