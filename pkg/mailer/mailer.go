// Package mailer builds templated platform mails and hands them to the mail
// queue. Delivery failures are logged and never surfaced to the caller: no
// mutation may fail because a mail could not be sent.
package mailer

import (
	"fmt"

	"edupress/pkg/logger"
)

type Publisher interface {
	PublishMailTask(task map[string]interface{}) error
}

type Mailer struct {
	publisher Publisher
	sender    string
	logger    *logger.Logger
}

func New(publisher Publisher, sender string, log *logger.Logger) *Mailer {
	return &Mailer{
		publisher: publisher,
		sender:    sender,
		logger:    log,
	}
}

func (m *Mailer) SendEducatorCredentials(email, name, password string) {
	subject := "Your EduPress educator account"
	body := fmt.Sprintf(
		"Hi %s,\n\nAn educator account has been created for you.\n\nEmail: %s\nPassword: %s\n\nPlease change your password after your first login.",
		name, email, password,
	)
	m.dispatch(email, subject, body)
}

func (m *Mailer) SendArticlePublished(email, name, title string) {
	subject := "Your article has been published"
	body := fmt.Sprintf("Hi %s,\n\nYour article %q was approved and is now live.", name, title)
	m.dispatch(email, subject, body)
}

func (m *Mailer) SendArticleRejected(email, name, title, reason string) {
	subject := "Your article needs changes"
	body := fmt.Sprintf("Hi %s,\n\nYour article %q was not approved.", name, title)
	if reason != "" {
		body += fmt.Sprintf("\n\nReviewer note: %s", reason)
	}
	m.dispatch(email, subject, body)
}

func (m *Mailer) dispatch(to, subject, body string) {
	if m.publisher == nil {
		m.logger.Warn("mail queue not configured, dropping mail to %s: %s", to, subject)
		return
	}

	task := map[string]interface{}{
		"from":    m.sender,
		"to":      to,
		"subject": subject,
		"body":    body,
	}

	if err := m.publisher.PublishMailTask(task); err != nil {
		m.logger.Error("failed to enqueue mail to %s: %v", to, err)
	}
}
