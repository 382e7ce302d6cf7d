package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
)

func reportCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Imprime los KPIs del tablero y las sugerencias de reposición",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := e.ctx(cmd)
			store := e.handle.Store
			summary, err := appanalytics.NewDashboardUseCase(store, e.now).GetSummary(ctx)
			if err != nil {
				return err
			}
			suggestions, err := inventory.NewReplenishmentUseCase(store, e.now).GenerateReplenishmentList(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Summary       *dto.DashboardSummaryDTO         `json:"summary"`
					Replenishment []dto.ReplenishmentSuggestionDTO `json:"replenishment"`
				}{summary, suggestions})
			}
			return printReport(out, summary, suggestions)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida en JSON")
	return cmd
}

func printReport(w io.Writer, s *dto.DashboardSummaryDTO, suggestions []dto.ReplenishmentSuggestionDTO) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Date\t%s (%s)\n", s.Date, s.DateLabel)
	fmt.Fprintf(tw, "Today's sales\t%s\n", inventory.FormatAmount(s.Currency, s.TodaySales))
	fmt.Fprintf(tw, "Monthly sales\t%s\n", s.MonthlySalesText)
	fmt.Fprintf(tw, "Sales growth\t%s%%\n", s.SalesGrowth.StringFixed(2))
	fmt.Fprintf(tw, "Top product\t%s (%d)\n", s.TopProduct.Product, s.TopProduct.Sales)
	fmt.Fprintf(tw, "Monthly purchases\t%s\n", inventory.FormatAmount(s.Currency, s.MonthlyPurchases))
	fmt.Fprintf(tw, "Pending orders\t%d\n", s.PendingOrders)
	fmt.Fprintf(tw, "Products\t%d\n", s.TotalProducts)
	fmt.Fprintf(tw, "Inventory value\t%s\n", inventory.FormatAmount(s.Currency, s.InventoryValue))
	fmt.Fprintf(tw, "Low stock\t%d\n", s.LowStockCount)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.NearExpiry) > 0 {
		fmt.Fprintln(w, "\nNear expiry:")
		for _, p := range s.NearExpiry {
			fmt.Fprintf(w, "  - %s (%s) %s\n", p.Name, p.ExpiryDate, p.Status)
		}
	}
	if len(suggestions) > 0 {
		fmt.Fprintln(w, "\nReplenishment:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  #\tSKU\tProduct\tStock\tOrder\tCost")
		for _, r := range suggestions {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\t%d\t%s\n", r.Priority, r.SKU, r.ProductName,
				r.CurrentStock, r.SuggestedOrderQty, inventory.FormatAmount(s.Currency, r.EstimatedOrderCost))
		}
		return tw.Flush()
	}
	return nil
}
