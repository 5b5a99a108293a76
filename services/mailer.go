package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/HSouheill/barrim_storefront/models"
)

// SMTPMailer delivers storefront e-mails through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) SendContactAcknowledgement(submission models.ContactSubmission) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", submission.Email, submission.Name)
	msg.SetHeader("Subject", acknowledgementSubject(submission))
	msg.SetBody("text/plain", acknowledgementBody(submission))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send acknowledgement to %s: %w", submission.Email, err)
	}
	return nil
}

func acknowledgementSubject(s models.ContactSubmission) string {
	if s.Subject == "" {
		return "We received your message"
	}
	return "Re: " + s.Subject
}

func acknowledgementBody(s models.ContactSubmission) string {
	return fmt.Sprintf("Dear %s,\n\nThank you for contacting us. We received your message and will get back to you soon.\n\nYour message:\n%s\n\nBest regards,\nThe Barrim team", s.Name, s.Message)
}
