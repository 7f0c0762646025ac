package notification

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelInApp    Channel = "in_app"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelInApp:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending            Status = "pending"
	StatusProcessing         Status = "processing"
	StatusDelivered          Status = "delivered"
	StatusPartiallyDelivered Status = "partially_delivered"
	StatusFailed             Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the queue will never touch the row again.
// partially_delivered is excluded: an old partial row is an operator signal,
// not garbage.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// Kind is the closed set of event kinds a notification can be born from.
// It selects the message template and the default channel routing.
type Kind string

const (
	KindRequestCreated       Kind = "request_created"
	KindRequestStatusChanged Kind = "request_status_changed"
	KindRequestReassigned    Kind = "request_reassigned"
	KindPaymentStatusChanged Kind = "payment_status_changed"
	KindPayoutCompleted      Kind = "payout_completed"
	KindComplaintFiled       Kind = "complaint_filed"
	KindAdminAlert           Kind = "admin_alert"
	KindRequestReminder      Kind = "request_reminder"
	KindRequestAutoCancelled Kind = "request_auto_cancelled"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRequestCreated, KindRequestStatusChanged, KindRequestReassigned,
		KindPaymentStatusChanged, KindPayoutCompleted, KindComplaintFiled,
		KindAdminAlert, KindRequestReminder, KindRequestAutoCancelled:
		return true
	default:
		return false
	}
}
