package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoChannels     = errors.New("notification requires at least one channel")
	ErrInvalidChannel = errors.New("invalid channel")
	ErrInvalidKind    = errors.New("invalid notification kind")
)

// ChannelState tracks one channel's delivery progress across attempts.
// Exhausted means the sender classified the failure as permanent; the
// channel is out of the game without burning the shared attempts budget.
type ChannelState struct {
	Succeeded bool   `json:"succeeded"`
	Exhausted bool   `json:"exhausted"`
	LastError string `json:"last_error,omitempty"`
}

// AttemptResult is the outcome of one send call for one channel.
type AttemptResult struct {
	Err       error
	Permanent bool
}

// RetryPolicy bounds the shared attempts budget and shapes the backoff curve.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Backoff returns the delay before the next attempt: baseDelay * 2^attempts,
// capped at MaxDelay.
func (p RetryPolicy) Backoff(attempts int) time.Duration {
	d := p.BaseDelay
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Notification is one message owed to one user across one or more channels.
type Notification struct {
	id            uuid.UUID
	userID        uuid.UUID
	kind          Kind
	payload       []byte
	channels      []Channel
	channelState  map[Channel]ChannelState
	status        Status
	attempts      int
	lastError     string
	read          bool
	createdAt     time.Time
	updatedAt     time.Time
	nextAttemptAt *time.Time
}

// New creates a pending notification ready for enqueue.
func New(userID uuid.UUID, kind Kind, payload []byte, channels []Channel, now time.Time) (*Notification, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	state := make(map[Channel]ChannelState, len(channels))
	for _, ch := range channels {
		if !ch.IsValid() {
			return nil, ErrInvalidChannel
		}
		state[ch] = ChannelState{}
	}
	next := now
	return &Notification{
		id:            uuid.New(),
		userID:        userID,
		kind:          kind,
		payload:       payload,
		channels:      channels,
		channelState:  state,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		nextAttemptAt: &next,
	}, nil
}

// Reconstruct rebuilds a notification from its persisted row.
func Reconstruct(
	id, userID uuid.UUID,
	kind Kind,
	payload []byte,
	channels []Channel,
	channelState map[Channel]ChannelState,
	status Status,
	attempts int,
	lastError string,
	read bool,
	createdAt, updatedAt time.Time,
	nextAttemptAt *time.Time,
) *Notification {
	if channelState == nil {
		channelState = make(map[Channel]ChannelState, len(channels))
		for _, ch := range channels {
			channelState[ch] = ChannelState{}
		}
	}
	return &Notification{
		id:            id,
		userID:        userID,
		kind:          kind,
		payload:       payload,
		channels:      channels,
		channelState:  channelState,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		read:          read,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		nextAttemptAt: nextAttemptAt,
	}
}

func (n *Notification) ID() uuid.UUID             { return n.id }
func (n *Notification) UserID() uuid.UUID         { return n.userID }
func (n *Notification) Kind() Kind                { return n.kind }
func (n *Notification) Payload() []byte           { return n.payload }
func (n *Notification) Channels() []Channel       { return n.channels }
func (n *Notification) Status() Status            { return n.status }
func (n *Notification) Attempts() int             { return n.attempts }
func (n *Notification) LastError() string         { return n.lastError }
func (n *Notification) Read() bool                { return n.read }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time      { return n.updatedAt }
func (n *Notification) NextAttemptAt() *time.Time { return n.nextAttemptAt }

func (n *Notification) ChannelState(ch Channel) ChannelState {
	return n.channelState[ch]
}

func (n *Notification) ChannelStates() map[Channel]ChannelState {
	out := make(map[Channel]ChannelState, len(n.channelState))
	for ch, st := range n.channelState {
		out[ch] = st
	}
	return out
}

// PendingChannels returns the channels still owed a send: not yet succeeded
// and not permanently failed. Order follows the requested channel list.
func (n *Notification) PendingChannels() []Channel {
	var out []Channel
	for _, ch := range n.channels {
		st := n.channelState[ch]
		if !st.Succeeded && !st.Exhausted {
			out = append(out, ch)
		}
	}
	return out
}

// ApplyAttempt folds one processing pass worth of per-channel results into
// the notification and derives the next status per the retry policy.
//
// results must only contain channels returned by PendingChannels; succeeded
// channels are never re-attempted.
func (n *Notification) ApplyAttempt(results map[Channel]AttemptResult, policy RetryPolicy, now time.Time) {
	for ch, res := range results {
		st := n.channelState[ch]
		if st.Succeeded {
			continue
		}
		if res.Err == nil {
			st.Succeeded = true
			st.LastError = ""
		} else {
			st.LastError = res.Err.Error()
			if res.Permanent {
				st.Exhausted = true
			}
			n.lastError = res.Err.Error()
		}
		n.channelState[ch] = st
	}

	if n.attempts < policy.MaxAttempts {
		n.attempts++
	}
	n.updatedAt = now

	succeeded := 0
	retryable := 0
	for _, ch := range n.channels {
		st := n.channelState[ch]
		switch {
		case st.Succeeded:
			succeeded++
		case !st.Exhausted:
			retryable++
		}
	}

	switch {
	case succeeded == len(n.channels):
		n.status = StatusDelivered
		n.lastError = ""
		n.nextAttemptAt = nil
	case n.attempts >= policy.MaxAttempts || retryable == 0:
		if succeeded > 0 {
			n.status = StatusPartiallyDelivered
		} else {
			n.status = StatusFailed
		}
		n.nextAttemptAt = nil
	default:
		n.status = StatusPending
		next := now.Add(policy.Backoff(n.attempts))
		n.nextAttemptAt = &next
	}
}

// MarkRead is idempotent; read never reverts to false.
func (n *Notification) MarkRead() {
	n.read = true
}
