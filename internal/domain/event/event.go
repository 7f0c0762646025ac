// Package event defines the closed set of domain occurrences that can
// produce notifications. Each kind is its own struct with a typed payload,
// so an unknown event kind cannot be constructed from inside the module.
package event

import (
	"letterdesk/internal/domain/notification"

	"github.com/google/uuid"
)

// TriggerEvent is sealed: only the variants below implement it.
type TriggerEvent interface {
	Kind() notification.Kind
	isTriggerEvent()
}

type RequestCreated struct {
	RequestID    uuid.UUID   `json:"request_id"`
	RequestTitle string      `json:"request_title"`
	StudentID    uuid.UUID   `json:"student_id"`
	StudentName  string      `json:"student_name"`
	LecturerIDs  []uuid.UUID `json:"lecturer_ids"`
}

type RequestStatusChanged struct {
	RequestID    uuid.UUID `json:"request_id"`
	RequestTitle string    `json:"request_title"`
	StudentID    uuid.UUID `json:"student_id"`
	LecturerID   uuid.UUID `json:"lecturer_id"`
	NewStatus    string    `json:"new_status"`
	// Administrative marks a change made by an admin rather than by the
	// lecturer, which additionally notifies the lecturer.
	Administrative bool `json:"administrative"`
}

type RequestReassigned struct {
	RequestID     uuid.UUID `json:"request_id"`
	RequestTitle  string    `json:"request_title"`
	StudentID     uuid.UUID `json:"student_id"`
	NewLecturerID uuid.UUID `json:"new_lecturer_id"`
	LecturerName  string    `json:"lecturer_name"`
}

type PaymentStatusChanged struct {
	RequestID     uuid.UUID `json:"request_id"`
	RequestTitle  string    `json:"request_title"`
	StudentID     uuid.UUID `json:"student_id"`
	PaymentStatus string    `json:"payment_status"`
}

type PayoutCompleted struct {
	PayoutID   uuid.UUID `json:"payout_id"`
	LecturerID uuid.UUID `json:"lecturer_id"`
	Amount     string    `json:"amount"`
}

type ComplaintFiled struct {
	ComplaintID  uuid.UUID `json:"complaint_id"`
	RequestID    uuid.UUID `json:"request_id"`
	RequestTitle string    `json:"request_title"`
	LecturerID   uuid.UUID `json:"lecturer_id"`
}

type AdminAlert struct {
	Message string `json:"message"`
}

type RequestReminder struct {
	RequestID    uuid.UUID `json:"request_id"`
	RequestTitle string    `json:"request_title"`
	LecturerID   uuid.UUID `json:"lecturer_id"`
}

type RequestAutoCancelled struct {
	RequestID    uuid.UUID `json:"request_id"`
	RequestTitle string    `json:"request_title"`
	StudentID    uuid.UUID `json:"student_id"`
	LecturerID   uuid.UUID `json:"lecturer_id"`
}

func (RequestCreated) Kind() notification.Kind       { return notification.KindRequestCreated }
func (RequestStatusChanged) Kind() notification.Kind { return notification.KindRequestStatusChanged }
func (RequestReassigned) Kind() notification.Kind    { return notification.KindRequestReassigned }
func (PaymentStatusChanged) Kind() notification.Kind { return notification.KindPaymentStatusChanged }
func (PayoutCompleted) Kind() notification.Kind      { return notification.KindPayoutCompleted }
func (ComplaintFiled) Kind() notification.Kind       { return notification.KindComplaintFiled }
func (AdminAlert) Kind() notification.Kind           { return notification.KindAdminAlert }
func (RequestReminder) Kind() notification.Kind      { return notification.KindRequestReminder }
func (RequestAutoCancelled) Kind() notification.Kind { return notification.KindRequestAutoCancelled }

func (RequestCreated) isTriggerEvent()       {}
func (RequestStatusChanged) isTriggerEvent() {}
func (RequestReassigned) isTriggerEvent()    {}
func (PaymentStatusChanged) isTriggerEvent() {}
func (PayoutCompleted) isTriggerEvent()      {}
func (ComplaintFiled) isTriggerEvent()       {}
func (AdminAlert) isTriggerEvent()           {}
func (RequestReminder) isTriggerEvent()      {}
func (RequestAutoCancelled) isTriggerEvent() {}
