package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artpar/storeadmin/bootstrap"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/plan"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage installment plans",
	Long: `Manage installment plans.

A plan sets the weekly, monthly and total percentages of a product price
that a customer pays.

Examples:
  storeadmin plans list
  storeadmin plans get <plan-id>
  storeadmin plans create --name=6-Month --weekly=4.17 --monthly=16.67 --total=100
  storeadmin plans update <plan-id> --name=6-Month --weekly=4.2 --monthly=16.7 --total=100
  storeadmin plans delete <plan-id>`,
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plans",
	RunE:  runPlansList,
}

var plansGetCmd = &cobra.Command{
	Use:   "get <plan-id>",
	Short: "Get plan details",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansGet,
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new plan",
	RunE:  runPlansCreate,
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <plan-id>",
	Short: "Replace a plan's name and percentages",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansUpdate,
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <plan-id>",
	Short: "Delete a plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansDelete,
}

var (
	planName    string
	planWeekly  float64
	planMonthly float64
	planTotal   float64
)

func init() {
	rootCmd.AddCommand(plansCmd)

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansGetCmd)
	plansCmd.AddCommand(plansCreateCmd)
	plansCmd.AddCommand(plansUpdateCmd)
	plansCmd.AddCommand(plansDeleteCmd)

	for _, c := range []*cobra.Command{plansCreateCmd, plansUpdateCmd} {
		c.Flags().StringVar(&planName, "name", "", "plan name (required)")
		c.Flags().Float64Var(&planWeekly, "weekly", 0, "weekly percentage of the price")
		c.Flags().Float64Var(&planMonthly, "monthly", 0, "monthly percentage of the price")
		c.Flags().Float64Var(&planTotal, "total", 100, "total percentage of the price")
		c.MarkFlagRequired("name")
	}
}

func planCandidate() plan.Candidate {
	return plan.Candidate{
		PlanName:             planName,
		WeeklyPercentage:     plan.Percent(planWeekly),
		MonthlyPercentage:    plan.Percent(planMonthly),
		TotalPricePercentage: plan.Percent(planTotal),
	}
}

func runPlansList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		plans, err := a.Plans.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No plans found.")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Create a plan with: storeadmin plans create --name=Monthly --weekly=25 --monthly=100 --total=100")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tWEEKLY\tMONTHLY\tTOTAL\tCREATED")
		fmt.Fprintln(w, "--\t----\t------\t-------\t-----\t-------")
		for _, p := range plans {
			fmt.Fprintf(w, "%s\t%s\t%g%%\t%g%%\t%g%%\t%s %s\n",
				p.ID, p.PlanName, p.WeeklyPercentage, p.MonthlyPercentage, p.TotalPricePercentage, p.DateCreated, p.Time)
		}
		return w.Flush()
	})
}

func runPlansGet(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		p, err := a.Plans.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		printPlan(cmd, p)
		return nil
	})
}

func runPlansCreate(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		p, err := a.Plans.Create(context.Background(), planCandidate())
		if err != nil {
			return describeError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan created: %s\n\n", p.ID)
		printPlan(cmd, p)
		return nil
	})
}

func runPlansUpdate(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		p, err := a.Plans.Update(context.Background(), args[0], planCandidate())
		if err != nil {
			return describeError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan updated: %s\n\n", p.ID)
		printPlan(cmd, p)
		return nil
	})
}

func runPlansDelete(cmd *cobra.Command, args []string) error {
	return withApp(func(a *bootstrap.App) error {
		if err := a.Plans.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan deleted: %s\n", args[0])
		return nil
	})
}

func printPlan(cmd *cobra.Command, p plan.Plan) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", p.ID)
	fmt.Fprintf(out, "Name:     %s\n", p.PlanName)
	fmt.Fprintf(out, "Weekly:   %g%%\n", p.WeeklyPercentage)
	fmt.Fprintf(out, "Monthly:  %g%%\n", p.MonthlyPercentage)
	fmt.Fprintf(out, "Total:    %g%%\n", p.TotalPricePercentage)
	fmt.Fprintf(out, "Created:  %s %s\n", p.DateCreated, p.Time)
}

// describeError expands validation errors into one line per field.
func describeError(err error) error {
	ve, ok := fault.AsValidation(err)
	if !ok {
		return err
	}
	msg := "validation failed:"
	for _, f := range ve.Fields {
		msg += fmt.Sprintf("\n  %s %s: %s", crossMark, f.Field, f.Message)
	}
	return fmt.Errorf("%s", msg)
}
