package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	ierrors "github.com/aroldan/inventory/internal/errors"
	"github.com/aroldan/inventory/pkg/cli"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show inventory statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		stats, err := svc.Statistics(cmd.Context())
		if errors.Is(err, ierrors.ErrNoRecords) {
			cli.PrintInfo("no records to compute statistics over")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(renderStatistics(stats))
		return nil
	},
}
