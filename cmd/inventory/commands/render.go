package commands

import (
	"fmt"
	"strings"

	"github.com/aroldan/inventory/internal/service"
	"github.com/aroldan/inventory/pkg/cli"
)

// renderRecord renders a single record as an indented detail block.
func renderRecord(r *service.RecordDto) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %d\n", cli.Label("id:"), r.ID))
	b.WriteString(fmt.Sprintf("  %s %s\n", cli.Label("name:"), r.Name))
	b.WriteString(fmt.Sprintf("  %s %s\n", cli.Label("description:"), r.Description))
	b.WriteString(fmt.Sprintf("  %s %s\n", cli.Label("price:"), cli.Money(r.Price)))
	b.WriteString(fmt.Sprintf("  %s %d units", cli.Label("quantity:"), r.Quantity))
	return b.String()
}

// renderRecordLine renders a record as a single list row.
func renderRecordLine(r service.RecordDto) string {
	value := r.Price * float64(r.Quantity)
	return fmt.Sprintf("  • id %d | %s | price %s | quantity %d | value %s",
		r.ID, r.Name, cli.Money(r.Price), r.Quantity, cli.Money(value))
}

// renderStatistics renders the statistics block.
func renderStatistics(stats *service.StatisticsDto) string {
	var b strings.Builder
	b.WriteString(cli.Header("Inventory statistics:") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", cli.Label("distinct records:"), stats.DistinctRecords))
	b.WriteString(fmt.Sprintf("  %s %d\n", cli.Label("total units:"), stats.TotalUnits))
	b.WriteString(fmt.Sprintf("  %s %s\n", cli.Label("total value:"), cli.Money(stats.TotalValue)))
	b.WriteString(fmt.Sprintf("  %s %s\n", cli.Label("average unit price:"), cli.Money(stats.AverageUnitPrice)))
	b.WriteString(fmt.Sprintf("  %s %s (%s)\n", cli.Label("most expensive:"), stats.MostExpensive.Name, cli.Money(stats.MostExpensive.Price)))
	b.WriteString(fmt.Sprintf("  %s %s (%s)", cli.Label("cheapest:"), stats.Cheapest.Name, cli.Money(stats.Cheapest.Price)))
	return b.String()
}
