package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/app"
	"github.com/artpar/storeadmin/bootstrap"
	"github.com/artpar/storeadmin/domain/product"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Inspect products and their installment plans",
	Long: `Inspect products and assign installment plans to them.

Examples:
  storeadmin products list --category=Laptops
  storeadmin products show <product-id>
  storeadmin products assign <product-id> <plan-id> [plan-id...]
  storeadmin products assign <product-id>            # clear all plans`,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE:  runProductsList,
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show a product with its resolved plans",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

var productsAssignCmd = &cobra.Command{
	Use:   "assign <product-id> [plan-id...]",
	Short: "Replace the plans offered on a product",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProductsAssign,
}

var quoteCmd = &cobra.Command{
	Use:   "quote <product-id>",
	Short: "Show installment amounts for each plan on a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

var (
	productSearch   string
	productCategory string
	productBrand    string
)

func init() {
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(quoteCmd)

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsShowCmd)
	productsCmd.AddCommand(productsAssignCmd)

	productsListCmd.Flags().StringVar(&productSearch, "search", "", "substring of name or brand")
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "exact category")
	productsListCmd.Flags().StringVar(&productBrand, "brand", "", "exact brand")
}

func runProductsList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		views, err := a.Products.View(context.Background(), product.Filter{
			Search:   productSearch,
			Category: productCategory,
			Brand:    productBrand,
		})
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(views) == 0 {
			fmt.Fprintln(out, "No products found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tPLANS")
		fmt.Fprintln(w, "--\t----\t-----\t--------\t-----\t-----")
		for _, v := range views {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
				v.ID, v.Name, v.Brand, v.Category, v.Price, planList(v))
		}
		return w.Flush()
	})
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		v, err := a.Products.ViewOne(context.Background(), args[0])
		if err != nil {
			return err
		}
		printProduct(cmd, v)
		return nil
	})
}

func runProductsAssign(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		ctx := context.Background()
		if _, err := a.Products.AssignPlans(ctx, args[0], args[1:]); err != nil {
			return err
		}
		v, err := a.Products.ViewOne(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plans assigned: %s\n\n", v.ID)
		printProduct(cmd, v)
		return nil
	})
}

func runQuote(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		p, err := a.Products.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		quotes, err := a.Products.Quotes(context.Background(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s) - %.2f\n\n", p.Name, p.Brand, p.Price)
		if len(quotes) == 0 {
			fmt.Fprintln(out, "No installment plans assigned.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PLAN\tWEEKLY\tMONTHLY\tTOTAL")
		fmt.Fprintln(w, "----\t------\t-------\t-----")
		for _, q := range quotes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				q.PlanName, q.Weekly.StringFixed(2), q.Monthly.StringFixed(2), q.Total.StringFixed(2))
		}
		return w.Flush()
	})
}

func printProduct(cmd *cobra.Command, v app.ProductView) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", v.ID)
	fmt.Fprintf(out, "Name:      %s\n", v.Name)
	fmt.Fprintf(out, "Brand:     %s\n", v.Brand)
	fmt.Fprintf(out, "Category:  %s\n", v.Category)
	fmt.Fprintf(out, "Price:     %.2f\n", v.Price)
	if v.Stock != nil {
		fmt.Fprintf(out, "Stock:     %d\n", *v.Stock)
	}
	fmt.Fprintf(out, "Plans:     %s\n", planList(v))
	if len(v.StalePlanIDs) > 0 {
		fmt.Fprintf(out, "Stale:     %s\n", strings.Join(v.StalePlanIDs, ", "))
	}
	fmt.Fprintf(out, "Created:   %s %s\n", v.DateCreated, v.Time)
}

func planList(v app.ProductView) string {
	if len(v.PlanNames) == 0 {
		return "-"
	}
	return strings.Join(v.PlanNames, ", ")
}
