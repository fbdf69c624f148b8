// Package main provides the inventory CLI tool.
//
// Usage:
//
//	inventory [flags] <command> [args]
//
// Commands:
//
//	create  - Create a new record
//	get     - Look up a record by id
//	update  - Replace the fields of a record
//	delete  - Remove a record by id
//	list    - List all records with inventory totals
//	search  - Search records by name
//	stats   - Show inventory statistics
//	demo    - Run a full walkthrough of the system
//
// Configuration:
//
//	Settings come from config.yaml in the working directory, a .env file
//	and INVENTORY_-prefixed environment variables; --file overrides the
//	backing store path per call.
package main

import (
	"fmt"
	"os"

	"github.com/aroldan/inventory/cmd/inventory/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
