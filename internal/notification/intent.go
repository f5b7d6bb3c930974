package notification

// Event identifies the kind of notification to deliver
type Event string

const (
	EventWelcome             Event = "welcome"
	EventAppointmentCreated  Event = "appointment_created"
	EventPrescriptionCreated Event = "prescription_created"
	EventLeaveApproved       Event = "leave_approved"
	EventLeaveRejected       Event = "leave_rejected"
)

// Intent is a structured description of a notification to send, decoupled
// from delivery. Services emit intents only after the triggering mutation
// has been committed.
type Intent struct {
	Event     Event
	Recipient string
	Fields    map[string]string
}
