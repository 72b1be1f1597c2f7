package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/bootstrap"
	"github.com/artpar/storeadmin/domain/order"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect and progress customer orders",
	Long: `Inspect customer orders and move them along
pending -> processing -> completed.

Examples:
  storeadmin orders list --status=pending
  storeadmin orders advance <order-id>
  storeadmin orders advance <order-id> --to=processing`,
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE:  runOrdersList,
}

var ordersAdvanceCmd = &cobra.Command{
	Use:   "advance <order-id>",
	Short: "Move an order to its next status",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersAdvance,
}

var (
	orderStatus string
	orderTarget string
)

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersAdvanceCmd)

	ordersListCmd.Flags().StringVar(&orderStatus, "status", "", "pending, processing or completed")
	ordersAdvanceCmd.Flags().StringVar(&orderTarget, "to", "", "target status (default: next in sequence)")
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	status := order.Status(orderStatus)
	if status != "" && !status.Valid() {
		return fmt.Errorf("unknown order status %q", orderStatus)
	}

	return withApp(func(a *bootstrap.App) error {
		orders, err := a.Orders.List(context.Background(), status)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(orders) == 0 {
			fmt.Fprintln(out, "No orders found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCUSTOMER\tPRODUCT\tPLAN\tPRICE\tSTATUS\tCREATED")
		fmt.Fprintln(w, "--\t--------\t-------\t----\t-----\t------\t-------")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s %s\n",
				o.ID, o.Username, o.ProductName, o.InstallmentPlan, o.Price, o.Status, o.DateCreated, o.Time)
		}
		return w.Flush()
	})
}

func runOrdersAdvance(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		var (
			o   order.Order
			err error
		)
		if orderTarget == "" {
			o, err = a.Orders.Proceed(context.Background(), args[0])
		} else {
			o, err = a.Orders.Advance(context.Background(), args[0], order.Status(orderTarget))
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", o.ID, o.Status)
		return nil
	})
}
