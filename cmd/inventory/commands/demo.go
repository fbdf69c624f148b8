package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aroldan/inventory/internal/service"
	"github.com/aroldan/inventory/pkg/cli"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a full walkthrough of the system",
	Long: `Run a scripted walkthrough against the configured backing file:
create records, attempt a duplicate, list, read, update, search, show
statistics, delete, and exercise the legacy four-operation surface.

Use --file to run the demo against a scratch file:
  inventory -f demo.json demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		runDemo(cmd.Context(), svc)
		return nil
	},
}

// runDemo walks every operation of the record manager. Expected failures
// (duplicate id, legacy lookups after removal) are part of the script and are
// printed as warnings, not returned.
func runDemo(ctx context.Context, svc *service.Service) {
	fmt.Println(cli.Header("=== Inventory record keeper walkthrough ==="))

	fmt.Println("\n" + cli.Header("1. Creating records"))
	demoCreate(ctx, svc, 1, service.RecordInput{Name: "Pencil HB", Description: "Premium graphite pencil", Price: 1500.0, Quantity: 200})
	demoCreate(ctx, svc, 2, service.RecordInput{Name: "Eraser", Description: "Non-toxic white eraser", Price: 800.0, Quantity: 150})
	demoCreate(ctx, svc, 3, service.RecordInput{Name: "Professional notebook", Description: "100 ruled pages", Price: 12500.0, Quantity: 50})

	fmt.Println("\n" + cli.Header("2. Attempting a duplicate id"))
	if _, err := svc.Create(ctx, 1, service.RecordInput{Name: "Duplicate", Description: "This should fail", Price: 1000.0, Quantity: 100}); err != nil {
		cli.PrintWarning("create rejected: %v", err)
	}

	fmt.Println("\n" + cli.Header("3. Full listing"))
	demoList(ctx, svc)

	fmt.Println("\n" + cli.Header("4. Reading a record"))
	if record, err := svc.FindByID(ctx, 2); err == nil {
		fmt.Println(renderRecord(record))
	} else {
		cli.PrintError("%v", err)
	}

	fmt.Println("\n" + cli.Header("5. Updating a record"))
	if record, err := svc.Update(ctx, 1, service.RecordInput{Name: "Professional pencil HB", Description: "For technical and artistic drawing", Price: 3500.0, Quantity: 80}); err == nil {
		cli.PrintSuccess("record %q updated (id %d)", record.Name, record.ID)
	} else {
		cli.PrintError("%v", err)
	}

	fmt.Println("\n" + cli.Header("6. Searching by name"))
	if matches, err := svc.SearchByName(ctx, "professional"); err == nil {
		for _, record := range matches {
			fmt.Println(renderRecordLine(record))
		}
	} else {
		cli.PrintError("%v", err)
	}

	fmt.Println("\n" + cli.Header("7. Statistics"))
	if stats, err := svc.Statistics(ctx); err == nil {
		fmt.Println(renderStatistics(stats))
	} else {
		cli.PrintError("%v", err)
	}

	fmt.Println("\n" + cli.Header("8. Deleting a record"))
	if record, err := svc.DeleteByID(ctx, 2); err == nil {
		cli.PrintSuccess("record %q deleted (id %d)", record.Name, record.ID)
	} else {
		cli.PrintError("%v", err)
	}

	fmt.Println("\n" + cli.Header("9. Final state"))
	demoList(ctx, svc)

	fmt.Println("\n" + cli.Header("10. Legacy four-operation surface"))
	compat := service.NewCompat(svc)
	demoCompat(compat.Add(ctx, 99, service.RecordInput{Name: "Test record", Description: "For testing", Price: 999.0, Quantity: 10}))
	demoCompat(compat.Get(ctx, 99))
	demoCompat(compat.Update(ctx, 99, service.RecordInput{Name: "Modified record", Description: "Modified description", Price: 1111.0, Quantity: 5}))
	demoCompat(compat.Remove(ctx, 99))
}

func demoCreate(ctx context.Context, svc *service.Service, id int64, input service.RecordInput) {
	record, err := svc.Create(ctx, id, input)
	if err != nil {
		cli.PrintError("%v", err)
		return
	}
	cli.PrintSuccess("record %q created (id %d)", record.Name, record.ID)
}

func demoList(ctx context.Context, svc *service.Service) {
	inventory, err := svc.List(ctx)
	if err != nil {
		cli.PrintError("%v", err)
		return
	}
	if inventory.Count == 0 {
		cli.PrintInfo("no records stored")
		return
	}
	for _, record := range inventory.Records {
		fmt.Println(renderRecordLine(record))
	}
	fmt.Printf("%s %s | %s %d\n",
		cli.Label("total inventory value:"), cli.Money(inventory.TotalValue),
		cli.Label("distinct records:"), inventory.Count)
}

func demoCompat(result string, err error) {
	if err != nil {
		cli.PrintWarning("%v", err)
		return
	}
	fmt.Println("  " + result)
}
