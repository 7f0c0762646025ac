//go:build unit

package notification_test

import (
	"testing"

	"letterdesk/internal/domain/notification"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("request created", func(t *testing.T) {
		msg := notification.Render(notification.KindRequestCreated,
			[]byte(`{"student_name":"Dana Roth","request_title":"Letter for MSc application"}`))

		assert.Equal(t, "New recommendation letter request", msg.Subject)
		assert.Equal(t, "Dana Roth requested a recommendation letter: Letter for MSc application.", msg.Body)
	})

	t.Run("admin alert body is the raw message", func(t *testing.T) {
		msg := notification.Render(notification.KindAdminAlert, []byte(`{"message":"disk almost full"}`))

		assert.Equal(t, "Admin alert", msg.Subject)
		assert.Equal(t, "disk almost full", msg.Body)
	})

	t.Run("missing payload fields degrade to empty strings", func(t *testing.T) {
		msg := notification.Render(notification.KindRequestStatusChanged, []byte(`{}`))

		assert.Equal(t, "Letter request update", msg.Subject)
		assert.Equal(t, `Your request "" is now .`, msg.Body)
	})

	t.Run("malformed payload still renders a subject", func(t *testing.T) {
		msg := notification.Render(notification.KindPayoutCompleted, []byte(`not json`))

		assert.Equal(t, "Payout completed", msg.Subject)
		assert.NotEmpty(t, msg.Body)
	})

	t.Run("every kind has a subject", func(t *testing.T) {
		kinds := []notification.Kind{
			notification.KindRequestCreated,
			notification.KindRequestStatusChanged,
			notification.KindRequestReassigned,
			notification.KindPaymentStatusChanged,
			notification.KindPayoutCompleted,
			notification.KindComplaintFiled,
			notification.KindAdminAlert,
			notification.KindRequestReminder,
			notification.KindRequestAutoCancelled,
		}
		for _, k := range kinds {
			assert.NotEmpty(t, notification.Render(k, []byte(`{}`)).Subject, "kind %s", k)
		}
	})
}
