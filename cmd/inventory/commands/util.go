package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/internal/config"
	"github.com/aroldan/inventory/internal/service"
	"github.com/aroldan/inventory/internal/store"
	"github.com/aroldan/inventory/pkg/bootstrap"
	"github.com/aroldan/inventory/pkg/config/configloader"
)

const appName = "inventory"

// newService wires a record service from configuration: koanf-loaded config,
// slog logger on stderr, JSON file store.
func newService() (*service.Service, error) {
	cfg, err := configloader.Load[*config.Config](appName, config.Defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if storeFile != "" {
		cfg.Store.Path = storeFile
	}

	logger := bootstrap.NewLogger(cfg.Log.Level, os.Stderr)
	fileStore := store.NewFileStore(cfg.Store.Path, logger)
	return service.NewService(fileStore), nil
}

// parseID parses a record id command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}

// addRecordFlags registers the record field flags shared by create and update.
// Field invariants (non-empty name, non-negative price and quantity) are
// enforced by the service, not here.
func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "record name")
	cmd.Flags().String("description", "", "record description")
	cmd.Flags().Float64("price", 0, "unit price")
	cmd.Flags().Int64("quantity", 0, "units in stock")
}

// inputFromFlags collects the record field flags into a RecordInput.
func inputFromFlags(cmd *cobra.Command) (service.RecordInput, error) {
	var input service.RecordInput

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return input, fmt.Errorf("failed to read 'name' flag: %w", err)
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		return input, fmt.Errorf("failed to read 'description' flag: %w", err)
	}
	price, err := cmd.Flags().GetFloat64("price")
	if err != nil {
		return input, fmt.Errorf("failed to read 'price' flag: %w", err)
	}
	quantity, err := cmd.Flags().GetInt64("quantity")
	if err != nil {
		return input, fmt.Errorf("failed to read 'quantity' flag: %w", err)
	}

	input.Name = name
	input.Description = description
	input.Price = price
	input.Quantity = quantity
	return input, nil
}
