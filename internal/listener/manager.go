package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-feast/internal/session"
)

// ConnectionManager hands accepted connections to the session manager. Each
// connection gets its own game, played start to finish over that connection.
type ConnectionManager struct {
	sm *session.Manager
}

func NewConnectionManager(sm *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sm: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "game session", "error", err)
	}
}
