package mailer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ConsoleMailer logs messages instead of delivering them. It keeps the sent
// messages in memory so development and tests can inspect them.
type ConsoleMailer struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []Message
}

var _ Mailer = (*ConsoleMailer)(nil)

// NewConsoleMailer constructs the development mailer.
func NewConsoleMailer(logger *zap.Logger) *ConsoleMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleMailer{logger: logger}
}

// Send records the message and writes it to the log.
func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	m.logger.Info("outbound email",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
		zap.Int("html_bytes", len(msg.HTMLBody)),
	)
	return nil
}

// Sent returns a copy of all messages recorded so far.
func (m *ConsoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
