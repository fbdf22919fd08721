package command

import (
	"fmt"

	"github.com/pixil98/go-feast/internal/listener"
	"github.com/pixil98/go-feast/internal/messaging"
	"github.com/pixil98/go-feast/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the game content
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}
	if dict.Scenarios.Get(cfg.Game.Scenario) == nil {
		return nil, fmt.Errorf("scenario %q not found", cfg.Game.Scenario)
	}

	// Narration bus
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	bus := messaging.NewSessionPublisher(natsServer)

	// Session manager and connection plumbing
	sessionManager := session.NewManager(dict, cfg.Game.Scenario, bus)
	connManager := listener.NewConnectionManager(sessionManager)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	return service.WorkerList{
		"nats":      natsServer,
		"sessions":  sessionManager,
		"listeners": &listeners,
	}, nil
}
