package messaging

import "fmt"

// SessionPublisher publishes narration to individual session NATS subjects.
type SessionPublisher struct {
	server *NatsServer
}

// NewSessionPublisher wraps a NatsServer for per-session narration delivery.
func NewSessionPublisher(server *NatsServer) *SessionPublisher {
	return &SessionPublisher{server: server}
}

// Subject is the NATS subject a session's narration travels on.
func Subject(sessionId string) string {
	return fmt.Sprintf("session-%s", sessionId)
}

// Publish sends one narration line to a session's subject.
func (p *SessionPublisher) Publish(sessionId, line string) error {
	return p.server.Publish(Subject(sessionId), []byte(line))
}

// Subscribe delivers a session's narration lines to the handler. Returns an
// unsubscribe function.
func (p *SessionPublisher) Subscribe(sessionId string, handler func(line string)) (func(), error) {
	return p.server.Subscribe(Subject(sessionId), func(data []byte) {
		handler(string(data))
	})
}
