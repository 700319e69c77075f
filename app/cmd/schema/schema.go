package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/schema"
	"github.com/ribgsilva/note-app/platform/database"
	"github.com/ribgsilva/note-app/platform/env"
	"github.com/ribgsilva/note-app/sys"
	"go.uber.org/zap"
	"io"
)

func ListCommands(out io.Writer) {
	fmt.Fprintln(out, "Schema Commands")
	fmt.Fprintln(out, "\tcreate\t\t\t- Creates the schema")
	fmt.Fprintln(out, "\tdelete\t\t\t- Deletes the schema")
	fmt.Fprintln(out, "\thelp\t\t\t- Print the commands available")
}

// Run executes the schema command in options[0] against the database of DATABASE_CONNECTION_URL
func Run(out io.Writer, driver string, options []string) error {
	if len(options) == 0 || options[0] == "help" {
		ListCommands(out)
		return nil
	}

	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log, driver); err != nil {
		return err
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			fmt.Fprintf(out, "could not close db conn gracefully: %s\n", err)
		}
	}()

	return exec(out, options[0])
}

func exec(out io.Writer, command string) error {
	switch command {
	case "create":
		fmt.Fprintln(out, "creating schema")
		if err := schema.Create(context.Background()); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		fmt.Fprintln(out, "created schema")
	case "delete":
		fmt.Fprintln(out, "deleting schema")
		if err := schema.Drop(context.Background()); err != nil {
			return fmt.Errorf("failed to delete schema: %w", err)
		}
		fmt.Fprintln(out, "deleted schema")
	default:
		ListCommands(out)
		return fmt.Errorf("unknown schema command %q", command)
	}
	return nil
}

func initVars(log *zap.SugaredLogger, driver string) error {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	sys.R.Log = log

	db, err := database.Open(context.Background(), driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
