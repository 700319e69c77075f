package main

import (
	"fmt"
	"github.com/ribgsilva/note-app/app/cmd/schema"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "schema":
		if err := schema.Run(os.Stdout, "mysql", os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Commands")
	fmt.Println("\tschema\t\t\t- Manage the database schema")
	schema.ListCommands(os.Stdout)
}
