package notification

import (
	"encoding/json"
	"fmt"
)

// RenderedMessage is what a channel sender actually delivers.
type RenderedMessage struct {
	Subject string
	Body    string
}

// Render produces the per-kind message from the stored payload. Unknown
// payload fields are ignored; missing ones render as empty strings so a
// malformed payload degrades to a generic message instead of failing the row.
func Render(kind Kind, payload []byte) RenderedMessage {
	var p map[string]any
	_ = json.Unmarshal(payload, &p)

	str := func(key string) string {
		if v, ok := p[key].(string); ok {
			return v
		}
		return ""
	}

	switch kind {
	case KindRequestCreated:
		return RenderedMessage{
			Subject: "New recommendation letter request",
			Body:    fmt.Sprintf("%s requested a recommendation letter: %s.", str("student_name"), str("request_title")),
		}
	case KindRequestStatusChanged:
		return RenderedMessage{
			Subject: "Letter request update",
			Body:    fmt.Sprintf("Your request %q is now %s.", str("request_title"), str("new_status")),
		}
	case KindRequestReassigned:
		return RenderedMessage{
			Subject: "Letter request reassigned",
			Body:    fmt.Sprintf("Request %q was reassigned to %s.", str("request_title"), str("lecturer_name")),
		}
	case KindPaymentStatusChanged:
		return RenderedMessage{
			Subject: "Payment update",
			Body:    fmt.Sprintf("Payment for %q is now %s.", str("request_title"), str("payment_status")),
		}
	case KindPayoutCompleted:
		return RenderedMessage{
			Subject: "Payout completed",
			Body:    fmt.Sprintf("A payout of %s has been sent to your account.", str("amount")),
		}
	case KindComplaintFiled:
		return RenderedMessage{
			Subject: "Complaint filed",
			Body:    fmt.Sprintf("A complaint was filed on request %q.", str("request_title")),
		}
	case KindAdminAlert:
		return RenderedMessage{
			Subject: "Admin alert",
			Body:    str("message"),
		}
	case KindRequestReminder:
		return RenderedMessage{
			Subject: "Reminder: pending letter request",
			Body:    fmt.Sprintf("Request %q is still waiting for your response.", str("request_title")),
		}
	case KindRequestAutoCancelled:
		return RenderedMessage{
			Subject: "Letter request cancelled",
			Body:    fmt.Sprintf("Request %q was automatically cancelled after no response.", str("request_title")),
		}
	default:
		return RenderedMessage{Subject: "Notification", Body: ""}
	}
}
