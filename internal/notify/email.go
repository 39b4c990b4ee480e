package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/casaflow/property-service/internal/utils"
)

// EmailSender delivers landlord-facing notices (e.g. a maintenance
// request closing out). A nil *EmailSender is a no-op, so callers can
// hold one unconditionally.
type EmailSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailSender(apiKey, fromEmail, fromName string) *EmailSender {
	if apiKey == "" {
		return nil
	}
	return &EmailSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send is fire-and-forget: a delivery failure is logged, never returned.
func (e *EmailSender) Send(toEmail, toName, subject, body string) {
	if e == nil {
		return
	}
	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := e.client.Send(msg)
	if err != nil {
		utils.Logger.WithError(err).Errorf("sendgrid: failed to send %q to %s", subject, toEmail)
		return
	}
	if resp.StatusCode >= 400 {
		utils.Logger.Error(fmt.Sprintf("sendgrid: status %d sending %q to %s", resp.StatusCode, subject, toEmail))
	}
}
