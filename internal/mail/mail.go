// Package mail delivers partner-facing notifications. The default
// implementation logs messages instead of sending them, which is enough
// for local deployments and tests; SMTP delivery plugs in behind the
// same interface.
package mail

import (
	"context"
	"fmt"

	"github.com/compligenie/compligenie/internal/common"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender records every message through the service logger without
// delivering anything.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mail: message missing recipient")
	}
	common.Logger().Info("mail queued",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.Body))
	return nil
}

// Welcome builds the registration confirmation sent to a new partner.
func Welcome(contactName, companyName string) Message {
	return Message{
		Subject: "Welcome to the partner program",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour partner account for %s is ready. Complete billing onboarding from your dashboard to start earning revenue share on every policy you generate.\n",
			contactName, companyName),
	}
}

// Credentials builds the API credential notification. The secret is sent
// once and never stored in a retrievable form afterwards.
func Credentials(contactName, apiKey, apiSecret string) Message {
	return Message{
		Subject: "Your API credentials",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour API key: %s\nYour API secret: %s\n\nKeep the secret safe. It cannot be recovered, only rotated.\n",
			contactName, apiKey, apiSecret),
	}
}
