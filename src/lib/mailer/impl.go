package mailer

import (
	"context"
	"log"

	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	awslib "github.com/william000000/team-odd-bn-backend/src/lib/aws"
)

// New picks the mail transport configured by MAIL_DRIVER.
func New() lib.Mailer {
	switch config.MAIL_DRIVER {
	case "ses":
		client := awslib.GetSESClient()
		if client == nil {
			log.Println("[mailer] SES unavailable, falling back to log mailer")
			return LogMailer{}
		}
		return awslib.NewSESMailer(client)
	case "log":
		return LogMailer{}
	default:
		return lib.SMTPMailer{}
	}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, input *lib.SendMailInput) error {
	log.Printf("[mailer] to=%v subject=%q\n", input.To, input.Subject)
	return nil
}

// NewMessage fills in the configured sender.
func NewMessage(to []string, subject string, body string) *lib.SendMailInput {
	return &lib.SendMailInput{
		From:     config.MAIL_FROM,
		FromName: "Barefoot Nomad",
		To:       to,
		Subject:  subject,
		Body:     body,
	}
}
