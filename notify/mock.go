package notify

import (
	"context"
	"sync"
)

// SentMessage records one SendSMS call made against a MockNotifier.
type SentMessage struct {
	PhoneNumber string
	Message     string
}

// MockNotifier is a test double for Notifier.
// It allows custom behavior injection via function fields.
type MockNotifier struct {
	// SendSMSFunc is called by SendSMS if set.
	// If nil, the call is recorded and succeeds.
	SendSMSFunc func(ctx context.Context, phoneNumber, message string) error

	mu   sync.Mutex
	sent []SentMessage
}

var _ Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a mock notifier that records sent messages.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SendSMS records the message and applies the injected behavior, if any.
func (m *MockNotifier) SendSMS(ctx context.Context, phoneNumber, message string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{PhoneNumber: phoneNumber, Message: message})
	m.mu.Unlock()

	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(ctx, phoneNumber, message)
	}
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockNotifier) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMessage(nil), m.sent...)
}

// Reset clears recorded messages and injected behavior.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.SendSMSFunc = nil
}
