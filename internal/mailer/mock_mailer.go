package mailer

import (
	"sync"
	"time"
)

type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records mails instead of sending them. Handlers send mail from a
// goroutine, so tests use WaitFor to observe it.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
	sent   chan struct{}

	// Err, when set, is returned by every Send.
	Err error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		emails: make([]Email, 0),
		sent:   make(chan struct{}, 64),
	}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})
	m.mu.Unlock()

	select {
	case m.sent <- struct{}{}:
	default:
	}

	return nil
}

func (m *MockMailer) GetSentEmails() []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

// WaitFor blocks until a mail using templateFile was sent to recipient or the
// timeout expires, and reports whether it was.
func (m *MockMailer) WaitFor(recipient, templateFile string, timeout time.Duration) bool {
	deadline := time.After(timeout)

	for {
		for _, email := range m.GetSentEmails() {
			if email.Recipient == recipient && email.TemplateFile == templateFile {
				return true
			}
		}

		select {
		case <-m.sent:
		case <-deadline:
			return false
		}
	}
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = make([]Email, 0)
}
