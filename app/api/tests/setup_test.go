package tests

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-app/app/api/handlers"
	"github.com/ribgsilva/note-app/persistence/v1/schema"
	"github.com/ribgsilva/note-app/platform/cache"
	"github.com/ribgsilva/note-app/platform/database"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/platform/logger"
	"github.com/ribgsilva/note-app/sys"
	"net/http"
	"testing"

	_ "github.com/proullon/ramsql/driver"
)

// setup wires sys against ramsql (named dsn) and miniredis and returns the api router
func setup(t *testing.T, dsn string) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	log, err := logger.New("Note-API-Tests")
	if err != nil {
		t.Fatal(err)
	}

	// =======================================================================================================
	// Mocks

	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	sys.R.Log = log

	db, err := database.Open(context.Background(), "ramsql", dsn, sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	sys.R.Database = db

	rdb, err := cache.Open(context.Background(), sys.Configs.Cache.ConnectionURL, "", "", sys.Configs.Cache.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}

	t.Cleanup(func() {
		_ = schema.Drop(context.Background())
		_ = rdb.Close()
		_ = db.Close()
	})

	// =======================================================================================================
	// Setup router
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handlers.MapDefaults(engine)
	handlers.MapApi(engine)

	return engine, s
}
