package mailer

import "context"

// Message is a single outbound email.
type Message struct {
	ToName   string
	ToEmail  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers messages through an outbound email provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
