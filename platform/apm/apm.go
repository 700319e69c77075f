// Package apm starts the new relic agent.
package apm

import (
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"time"
)

// Config of the new relic agent, the agent is a no-op when Enabled is false
type Config struct {
	AppName           string
	Licence           string
	Enabled           bool
	ConnectionTimeout time.Duration
}

// Start creates the application and waits for it to connect
func Start(cfg Config) (*newrelic.Application, error) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.Licence),
		newrelic.ConfigEnabled(cfg.Enabled),
	)
	if err != nil {
		return nil, fmt.Errorf("new relic: %w", err)
	}
	if err := app.WaitForConnection(cfg.ConnectionTimeout); err != nil {
		return nil, fmt.Errorf("new relic connection: %w", err)
	}
	return app, nil
}
