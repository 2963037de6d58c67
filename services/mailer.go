package services

// Mailer is an interface for transactional email providers
type Mailer interface {
	Send(to, subject, body string) error
}
