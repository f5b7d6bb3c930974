package notification

import (
	"fmt"

	"github.com/go-gomail/gomail"
)

// Sender delivers a single notification intent
type Sender interface {
	Send(intent Intent) error
}

// SMTPSender delivers intents as plain-text emails over SMTP
type SMTPSender struct {
	host     string
	port     int
	from     string
	password string
}

// NewSMTPSender creates an SMTP-backed sender
func NewSMTPSender(host string, port int, from, password string) *SMTPSender {
	return &SMTPSender{host: host, port: port, from: from, password: password}
}

// Send composes and delivers the email for one intent
func (s *SMTPSender) Send(intent Intent) error {
	subject, body := render(intent)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", intent.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.from, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	return nil
}

func render(intent Intent) (subject, body string) {
	f := intent.Fields
	switch intent.Event {
	case EventWelcome:
		return "Welcome to Healthcare System",
			fmt.Sprintf("Hi %s, thank you for registering with us!", f["username"])
	case EventAppointmentCreated:
		return "Appointment Confirmation",
			fmt.Sprintf("Your appointment with %s on %s at %s is confirmed.",
				f["doctor"], f["date"], f["time"])
	case EventPrescriptionCreated:
		return "New Prescription",
			fmt.Sprintf("A new prescription has been issued for your appointment on %s.", f["date"])
	case EventLeaveApproved:
		return "Leave Request Approved",
			fmt.Sprintf("Your leave request from %s to %s has been approved.",
				f["start_date"], f["end_date"])
	case EventLeaveRejected:
		return "Leave Request Rejected",
			fmt.Sprintf("Your leave request from %s to %s has been rejected.",
				f["start_date"], f["end_date"])
	}
	return string(intent.Event), ""
}
