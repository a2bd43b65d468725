package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes verification mail to the log instead of sending it.
// Used in development and in environments without an outbound mail provider;
// the verification link shows up in the service log.
type LogMailer struct {
	baseURL string
	log     zerolog.Logger
}

// NewLogMailer builds a LogMailer. baseURL is the public origin the
// verification link should point at.
func NewLogMailer(baseURL string, log zerolog.Logger) *LogMailer {
	return &LogMailer{baseURL: baseURL, log: log}
}

func (m *LogMailer) SendVerification(ctx context.Context, email, token string) error {
	m.log.Info().
		Str("email", email).
		Str("link", m.baseURL+"/api/verify-email?token="+token).
		Msg("verification mail")
	return nil
}
