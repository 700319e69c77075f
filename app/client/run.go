package main

import (
	"context"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-app/app/client/view"
	"github.com/ribgsilva/note-app/business/v1/client"
	"github.com/ribgsilva/note-app/platform/apm"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/platform/logger"
	"github.com/ribgsilva/note-app/platform/web/rest"
	"github.com/ribgsilva/note-app/sys"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"net/http"
)

func loadConfigs(log *zap.SugaredLogger) {
	sys.Configs.Client.APIURL = apiURL
	if sys.Configs.Client.APIURL == "" {
		sys.Configs.Client.APIURL = env.OrDefault(log, "NOTES_API_URL", "http://localhost:8080/api/notes")
	}
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "note-client")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	// logs go to stderr, stdout belongs to the terminal view
	log, err := logger.New("Note-Client", logger.WithOutput("stderr"), logger.WithLevel(level))
	if err != nil {
		return err
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	loadConfigs(log)
	log.Debugw("startup", "api", sys.Configs.Client.APIURL)

	nrApp, err := apm.Start(apm.Config{
		AppName:           sys.Configs.NewRelic.AppName,
		Licence:           sys.Configs.NewRelic.Licence,
		Enabled:           sys.Configs.NewRelic.Enabled,
		ConnectionTimeout: sys.Configs.NewRelic.ConnectionTimeout,
	})
	if err != nil {
		return err
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	hc := &http.Client{Transport: newrelic.NewRoundTripper(http.DefaultTransport)}
	api, err := rest.New(sys.Configs.Client.APIURL, hc)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	term := view.New(out, func(ctx context.Context, command string) (context.Context, func()) {
		txn := nrApp.StartTransaction("notes/" + command)
		return newrelic.NewContext(ctx, txn), txn.End
	})

	return term.Run(ctx, in, client.New(api, term, log))
}
