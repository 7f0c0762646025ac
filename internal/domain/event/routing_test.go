//go:build unit

package event_test

import (
	"testing"

	"letterdesk/internal/domain/event"
	"letterdesk/internal/domain/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetFor(t *testing.T, r event.Routing, userID uuid.UUID) event.Target {
	t.Helper()
	for _, tgt := range r.Targets {
		if tgt.UserID == userID {
			return tgt
		}
	}
	t.Fatalf("no target for user %s", userID)
	return event.Target{}
}

func TestRoute(t *testing.T) {
	student := uuid.New()
	lecturer := uuid.New()
	other := uuid.New()

	t.Run("request created fans out to all lecturers on all channels", func(t *testing.T) {
		r := event.Route(event.RequestCreated{
			RequestID:   uuid.New(),
			StudentID:   student,
			LecturerIDs: []uuid.UUID{lecturer, other},
		})

		require.Len(t, r.Targets, 2)
		assert.Empty(t, r.AdminCandidates)
		for _, tgt := range r.Targets {
			assert.Len(t, tgt.Candidates, 4)
		}
	})

	t.Run("status change notifies the student", func(t *testing.T) {
		r := event.Route(event.RequestStatusChanged{
			StudentID:  student,
			LecturerID: lecturer,
			NewStatus:  "accepted",
		})

		want := event.Routing{Targets: []event.Target{{
			UserID: student,
			Candidates: []notification.Channel{
				notification.ChannelEmail,
				notification.ChannelSMS,
				notification.ChannelWhatsApp,
				notification.ChannelInApp,
			},
		}}}
		if diff := cmp.Diff(want, r); diff != "" {
			t.Errorf("routing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("administrative status change also notifies the lecturer", func(t *testing.T) {
		r := event.Route(event.RequestStatusChanged{
			StudentID:      student,
			LecturerID:     lecturer,
			NewStatus:      "rejected",
			Administrative: true,
		})

		require.Len(t, r.Targets, 2)
		lect := targetFor(t, r, lecturer)
		assert.ElementsMatch(t,
			[]notification.Channel{notification.ChannelInApp, notification.ChannelEmail},
			lect.Candidates)
	})

	t.Run("reassignment notifies the new lecturer and the student", func(t *testing.T) {
		r := event.Route(event.RequestReassigned{
			StudentID:     student,
			NewLecturerID: lecturer,
		})

		require.Len(t, r.Targets, 2)
		assert.Len(t, targetFor(t, r, lecturer).Candidates, 4)
		assert.Len(t, targetFor(t, r, student).Candidates, 2)
	})

	t.Run("payout goes to the lecturer only", func(t *testing.T) {
		r := event.Route(event.PayoutCompleted{LecturerID: lecturer, Amount: "120.00 USD"})

		require.Len(t, r.Targets, 1)
		assert.Equal(t, lecturer, r.Targets[0].UserID)
	})

	t.Run("complaint notifies the lecturer and broadcasts to admins", func(t *testing.T) {
		r := event.Route(event.ComplaintFiled{LecturerID: lecturer})

		require.Len(t, r.Targets, 1)
		assert.Equal(t, []notification.Channel{notification.ChannelInApp}, r.Targets[0].Candidates)
		assert.Equal(t, []notification.Channel{notification.ChannelInApp}, r.AdminCandidates)
	})

	t.Run("admin alert is a pure role broadcast", func(t *testing.T) {
		r := event.Route(event.AdminAlert{Message: "queue depth high"})

		assert.Empty(t, r.Targets)
		assert.Equal(t, []notification.Channel{notification.ChannelInApp}, r.AdminCandidates)
	})

	t.Run("auto cancellation notifies both sides", func(t *testing.T) {
		r := event.Route(event.RequestAutoCancelled{StudentID: student, LecturerID: lecturer})

		require.Len(t, r.Targets, 2)
		assert.Len(t, targetFor(t, r, student).Candidates, 2)
		assert.Len(t, targetFor(t, r, lecturer).Candidates, 2)
	})

	t.Run("kind matches the notification kind constant", func(t *testing.T) {
		assert.Equal(t, notification.KindRequestReminder, event.RequestReminder{}.Kind())
		assert.Equal(t, notification.KindAdminAlert, event.AdminAlert{}.Kind())
	})
}
