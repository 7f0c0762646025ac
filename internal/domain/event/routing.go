package event

import (
	"letterdesk/internal/domain/notification"

	"github.com/google/uuid"
)

// Target is one recipient with the channels the event offers. The dispatcher
// intersects candidates with the recipient's standing preferences before
// enqueueing; in_app survives that intersection unconditionally.
type Target struct {
	UserID     uuid.UUID
	Candidates []notification.Channel
}

// Routing resolves an event into explicit targets plus an optional
// role-broadcast (admin_alert fans out to every admin user, whose IDs only
// the user store knows).
type Routing struct {
	Targets         []Target
	AdminCandidates []notification.Channel
}

var allChannels = []notification.Channel{
	notification.ChannelEmail,
	notification.ChannelSMS,
	notification.ChannelWhatsApp,
	notification.ChannelInApp,
}

var inAppAndEmail = []notification.Channel{
	notification.ChannelInApp,
	notification.ChannelEmail,
}

var inAppOnly = []notification.Channel{notification.ChannelInApp}

// Route maps an event to its recipients. The switch is exhaustive over the
// sealed variant set; there is no unknown-kind arm to reach.
func Route(e TriggerEvent) Routing {
	switch ev := e.(type) {
	case RequestCreated:
		targets := make([]Target, 0, len(ev.LecturerIDs))
		for _, id := range ev.LecturerIDs {
			targets = append(targets, Target{UserID: id, Candidates: allChannels})
		}
		return Routing{Targets: targets}

	case RequestStatusChanged:
		targets := []Target{{UserID: ev.StudentID, Candidates: allChannels}}
		if ev.Administrative {
			targets = append(targets, Target{UserID: ev.LecturerID, Candidates: inAppAndEmail})
		}
		return Routing{Targets: targets}

	case RequestReassigned:
		return Routing{Targets: []Target{
			{UserID: ev.NewLecturerID, Candidates: allChannels},
			{UserID: ev.StudentID, Candidates: inAppAndEmail},
		}}

	case PaymentStatusChanged:
		return Routing{Targets: []Target{
			{UserID: ev.StudentID, Candidates: inAppAndEmail},
		}}

	case PayoutCompleted:
		return Routing{Targets: []Target{
			{UserID: ev.LecturerID, Candidates: inAppAndEmail},
		}}

	case ComplaintFiled:
		return Routing{
			Targets:         []Target{{UserID: ev.LecturerID, Candidates: inAppOnly}},
			AdminCandidates: inAppOnly,
		}

	case AdminAlert:
		return Routing{AdminCandidates: inAppOnly}

	case RequestReminder:
		return Routing{Targets: []Target{
			{UserID: ev.LecturerID, Candidates: allChannels},
		}}

	case RequestAutoCancelled:
		return Routing{Targets: []Target{
			{UserID: ev.StudentID, Candidates: inAppAndEmail},
			{UserID: ev.LecturerID, Candidates: inAppAndEmail},
		}}

	default:
		return Routing{}
	}
}
