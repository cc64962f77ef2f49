package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffSignedIn        EventType = "staff_signed_in"
	EventStaffSignedOut       EventType = "staff_signed_out"
	EventSessionExpired       EventType = "session_expired"
	EventInvoiceCreated       EventType = "invoice_created"
	EventInvoiceStatusChanged EventType = "invoice_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffSignedInPayload payload.
type StaffSignedInPayload struct {
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
}

// InvoiceStatusChangedPayload payload.
type InvoiceStatusChangedPayload struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}
