package mailer

import (
	"fmt"
	"log"

	"github.com/FrancisEgan/TodoApp/internal/core/app"
)

// LogMailer "sends" verification mail by logging the verification URL.
// There is no real mail delivery in development; the logged URL is what a
// mail template would link to.
type LogMailer struct {
	log     *log.Logger
	baseURL string
}

// NewLogMailer creates a mailer that logs verification URLs. baseURL is the
// address of the web client hosting the verify page.
func NewLogMailer(logger *log.Logger, baseURL string) *LogMailer {
	return &LogMailer{log: logger, baseURL: baseURL}
}

var _ app.Mailer = (*LogMailer)(nil)

// SendVerification logs the verification URL for the address.
func (m *LogMailer) SendVerification(email, token string) error {
	url := fmt.Sprintf("%s/verify?token=%s", m.baseURL, token)
	m.log.Printf("verification mail for %s: %s", email, url)

	return nil
}
