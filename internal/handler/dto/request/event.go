package request

import (
	"encoding/json"

	"letterdesk/internal/domain/event"
	"letterdesk/internal/domain/notification"
	"letterdesk/internal/pkg/errs"
)

// DispatchEventRequest carries a tagged event over the wire. Kind selects
// the payload shape; the payload is validated by decoding into the typed
// variant, so the stringly-typed surface ends at this boundary.
type DispatchEventRequest struct {
	Kind    string          `json:"kind" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

func (r *DispatchEventRequest) ToDomain() (event.TriggerEvent, error) {
	switch notification.Kind(r.Kind) {
	case notification.KindRequestCreated:
		var ev event.RequestCreated
		return decodeInto(&ev, r.Payload)
	case notification.KindRequestStatusChanged:
		var ev event.RequestStatusChanged
		return decodeInto(&ev, r.Payload)
	case notification.KindRequestReassigned:
		var ev event.RequestReassigned
		return decodeInto(&ev, r.Payload)
	case notification.KindPaymentStatusChanged:
		var ev event.PaymentStatusChanged
		return decodeInto(&ev, r.Payload)
	case notification.KindPayoutCompleted:
		var ev event.PayoutCompleted
		return decodeInto(&ev, r.Payload)
	case notification.KindComplaintFiled:
		var ev event.ComplaintFiled
		return decodeInto(&ev, r.Payload)
	case notification.KindAdminAlert:
		var ev event.AdminAlert
		return decodeInto(&ev, r.Payload)
	case notification.KindRequestReminder:
		var ev event.RequestReminder
		return decodeInto(&ev, r.Payload)
	case notification.KindRequestAutoCancelled:
		var ev event.RequestAutoCancelled
		return decodeInto(&ev, r.Payload)
	default:
		return nil, errs.ErrUnknownEventKind
	}
}

func decodeInto[T event.TriggerEvent](target *T, payload json.RawMessage) (event.TriggerEvent, error) {
	if err := json.Unmarshal(payload, target); err != nil {
		return nil, errs.Wrap(err, "malformed event payload")
	}
	return *target, nil
}
