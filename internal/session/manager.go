package session

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-feast/internal/commands"
	"github.com/pixil98/go-feast/internal/display"
	"github.com/pixil98/go-feast/internal/game"
	"github.com/pixil98/go-feast/internal/messaging"
)

// Manager creates and runs game sessions. Every accepted connection plays
// its own copy of the configured scenario, narrated over a per-session
// NATS subject.
type Manager struct {
	dict       *game.Dictionary
	scenarioId string
	bus        *messaging.SessionPublisher
}

func NewManager(dict *game.Dictionary, scenarioId string, bus *messaging.SessionPublisher) *Manager {
	return &Manager{
		dict:       dict,
		scenarioId: scenarioId,
		bus:        bus,
	}
}

// Start blocks until shutdown. Sessions are created per connection, so
// there's nothing to run here.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// RunSession plays one game over one connection, start to finish.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	sess, err := game.NewSession(m.dict, m.scenarioId)
	if err != nil {
		return err
	}
	interp := commands.NewInterpreter(sess)

	msgs := make(chan string, 64)
	unsub, err := m.bus.Subscribe(sess.Id, func(line string) {
		select {
		case msgs <- line:
		default:
			slog.Warn("dropping narration line", "session", sess.Id)
		}
	})
	if err != nil {
		return err
	}
	defer unsub()

	say := func(line string) {
		if err := m.bus.Publish(sess.Id, line); err != nil {
			slog.Warn("publishing narration", "session", sess.Id, "error", err)
		}
	}

	// Read input lines into a channel so the loop can also drain narration
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for _, line := range interp.Intro() {
		say(line)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-msgs:
			if err := writeLine(conn, msg); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := prompt(conn); err != nil {
					return err
				}
				continue
			}

			if strings.EqualFold(line, "quit") {
				// Ignoring write error - the connection is going away regardless
				_ = writeLine(conn, "Goodbye!")
				return nil
			}

			interp.Execute(line, say)

			if err := prompt(conn); err != nil {
				return err
			}
		}
	}
}

func prompt(conn io.ReadWriter) error {
	_, err := conn.Write([]byte("> "))
	return err
}

func writeLine(conn io.ReadWriter, msg string) error {
	_, err := conn.Write([]byte(display.Wrap(msg) + "\n"))
	return err
}
