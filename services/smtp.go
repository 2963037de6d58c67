package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends email via unauthenticated SMTP (Mailpit-compatible), for
// local runs without a SendGrid key.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(host), strings.TrimSpace(port)),
		from: strings.TrimSpace(from),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body,
	)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}
