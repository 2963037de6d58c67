package services

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const mailSenderName = "Espaço LK"

type SendGridMailer struct {
	client *sendgrid.Client
	from   string
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (m *SendGridMailer) Send(to, subject, body string) error {
	message := sgmail.NewSingleEmailPlainText(
		sgmail.NewEmail(mailSenderName, m.from),
		subject,
		sgmail.NewEmail("", to),
		body,
	)

	resp, err := m.client.Send(message)
	if err != nil {
		log.Printf("[SendGrid] Send failed: %v", err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("[SendGrid] Send rejected - Status: %d, Body: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid send failed with status %d", resp.StatusCode)
	}
	return nil
}
