package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/pkg/cli"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search records by name",
	Long: `Search records whose name contains the given text, ignoring case.

Example:
  inventory search pencil`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		matches, err := svc.SearchByName(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			cli.PrintInfo("no records match %q", args[0])
			return nil
		}

		fmt.Println(cli.Header(fmt.Sprintf("Records matching %q:", args[0])))
		for _, record := range matches {
			fmt.Println(renderRecordLine(record))
		}
		return nil
	},
}
