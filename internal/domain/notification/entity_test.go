//go:build unit

package notification_test

import (
	"errors"
	"testing"
	"time"

	"letterdesk/internal/domain/notification"
	"letterdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = notification.RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   time.Minute,
	MaxDelay:    time.Hour,
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		n, err := builder.NewNotificationBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, n)

		assert.NotEqual(t, uuid.Nil, n.ID())
		assert.Equal(t, notification.StatusPending, n.Status())
		assert.Equal(t, 0, n.Attempts())
		assert.False(t, n.Read())
		require.NotNil(t, n.NextAttemptAt())
		assert.Equal(t, now, *n.NextAttemptAt())
		assert.Equal(t, []notification.Channel{notification.ChannelInApp, notification.ChannelEmail}, n.PendingChannels())
	})

	t.Run("rejects empty channel list", func(t *testing.T) {
		_, err := builder.NewNotificationBuilder().WithChannels().BuildDomain()
		assert.True(t, errors.Is(err, notification.ErrNoChannels))
	})

	t.Run("rejects invalid channel", func(t *testing.T) {
		_, err := builder.NewNotificationBuilder().WithChannels(notification.Channel("pigeon")).BuildDomain()
		assert.True(t, errors.Is(err, notification.ErrInvalidChannel))
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		_, err := builder.NewNotificationBuilder().WithKind(notification.Kind("mystery")).BuildDomain()
		assert.True(t, errors.Is(err, notification.ErrInvalidKind))
	})
}

func TestApplyAttempt(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	build := func(t *testing.T, chs ...notification.Channel) *notification.Notification {
		t.Helper()
		n, err := builder.NewNotificationBuilder().WithChannels(chs...).WithNow(now).BuildDomain()
		require.NoError(t, err)
		return n
	}

	t.Run("all channels succeed: delivered, no next attempt", func(t *testing.T) {
		n := build(t, notification.ChannelInApp, notification.ChannelEmail)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelInApp: {},
			notification.ChannelEmail: {},
		}, testPolicy, now)

		assert.Equal(t, notification.StatusDelivered, n.Status())
		assert.Equal(t, 1, n.Attempts())
		assert.Nil(t, n.NextAttemptAt())
		assert.Empty(t, n.LastError())
	})

	t.Run("mixed outcome schedules retry and remembers the success", func(t *testing.T) {
		n := build(t, notification.ChannelInApp, notification.ChannelEmail)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelInApp: {},
			notification.ChannelEmail: {Err: errors.New("smtp timeout")},
		}, testPolicy, now)

		assert.Equal(t, notification.StatusPending, n.Status())
		assert.Equal(t, 1, n.Attempts())
		require.NotNil(t, n.NextAttemptAt())
		// backoff after the first attempt is baseDelay * 2^1
		assert.Equal(t, now.Add(2*time.Minute), *n.NextAttemptAt())

		// the succeeded channel never re-enters the pending set
		assert.Equal(t, []notification.Channel{notification.ChannelEmail}, n.PendingChannels())
		assert.True(t, n.ChannelState(notification.ChannelInApp).Succeeded)
		assert.Equal(t, "smtp timeout", n.ChannelState(notification.ChannelEmail).LastError)
	})

	t.Run("exhausted budget with one success ends partially delivered", func(t *testing.T) {
		n := build(t, notification.ChannelInApp, notification.ChannelEmail)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelInApp: {},
			notification.ChannelEmail: {Err: errors.New("smtp timeout")},
		}, testPolicy, now)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelEmail: {Err: errors.New("smtp timeout")},
		}, testPolicy, now.Add(2*time.Minute))
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelEmail: {Err: errors.New("smtp timeout")},
		}, testPolicy, now.Add(6*time.Minute))

		assert.Equal(t, notification.StatusPartiallyDelivered, n.Status())
		assert.Equal(t, 3, n.Attempts())
		assert.Nil(t, n.NextAttemptAt())
	})

	t.Run("exhausted budget with no success ends failed", func(t *testing.T) {
		n := build(t, notification.ChannelEmail)
		for i := 0; i < testPolicy.MaxAttempts; i++ {
			n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
				notification.ChannelEmail: {Err: errors.New("smtp timeout")},
			}, testPolicy, now.Add(time.Duration(i)*time.Minute))
		}

		assert.Equal(t, notification.StatusFailed, n.Status())
		assert.Equal(t, 3, n.Attempts())
		assert.Nil(t, n.NextAttemptAt())
		assert.Equal(t, "smtp timeout", n.LastError())
	})

	t.Run("permanent failure exhausts the channel immediately", func(t *testing.T) {
		n := build(t, notification.ChannelInApp, notification.ChannelEmail)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelInApp: {},
			notification.ChannelEmail: {Err: errors.New("no such mailbox"), Permanent: true},
		}, testPolicy, now)

		// one success, the other channel is out: no point retrying
		assert.Equal(t, notification.StatusPartiallyDelivered, n.Status())
		assert.Equal(t, 1, n.Attempts())
		assert.Nil(t, n.NextAttemptAt())
		assert.True(t, n.ChannelState(notification.ChannelEmail).Exhausted)
	})

	t.Run("all channels permanently failed ends failed", func(t *testing.T) {
		n := build(t, notification.ChannelEmail)
		n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
			notification.ChannelEmail: {Err: errors.New("no such mailbox"), Permanent: true},
		}, testPolicy, now)

		assert.Equal(t, notification.StatusFailed, n.Status())
		assert.Equal(t, 1, n.Attempts())
	})

	t.Run("attempts never exceed the budget", func(t *testing.T) {
		n := build(t, notification.ChannelEmail)
		for i := 0; i < 10; i++ {
			n.ApplyAttempt(map[notification.Channel]notification.AttemptResult{
				notification.ChannelEmail: {Err: errors.New("down")},
			}, testPolicy, now)
		}
		assert.Equal(t, testPolicy.MaxAttempts, n.Attempts())
		assert.Equal(t, notification.StatusFailed, n.Status())
	})
}

func TestBackoff(t *testing.T) {
	policy := notification.RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   time.Minute,
		MaxDelay:    time.Hour,
	}

	assert.Equal(t, time.Minute, policy.Backoff(0))
	assert.Equal(t, 2*time.Minute, policy.Backoff(1))
	assert.Equal(t, 4*time.Minute, policy.Backoff(2))
	assert.Equal(t, 32*time.Minute, policy.Backoff(5))
	// capped
	assert.Equal(t, time.Hour, policy.Backoff(6))
	assert.Equal(t, time.Hour, policy.Backoff(20))
}

func TestMarkRead(t *testing.T) {
	n, err := builder.NewNotificationBuilder().BuildDomain()
	require.NoError(t, err)

	assert.False(t, n.Read())
	n.MarkRead()
	assert.True(t, n.Read())
	n.MarkRead()
	assert.True(t, n.Read())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, notification.StatusDelivered.IsTerminal())
	assert.True(t, notification.StatusFailed.IsTerminal())
	assert.False(t, notification.StatusPending.IsTerminal())
	assert.False(t, notification.StatusProcessing.IsTerminal())
	assert.False(t, notification.StatusPartiallyDelivered.IsTerminal())
}
