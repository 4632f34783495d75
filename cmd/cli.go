package main

import (
	"fmt"
	"io"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var planCellStyle = lipgloss.NewStyle().Padding(0, 1)

func newPlanCmd(configDir *string) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the plan for the stored snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			var plan models.Plan
			if at != "" {
				end, err := fermentation.ParseClock(at)
				if err != nil {
					return err
				}
				plan, err = a.services.Planner.PlanAt(ctx, end)
				if err != nil {
					return err
				}
			} else if plan, err = a.services.Planner.Plan(ctx); err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "evaluate as if the simulation ended at HH:MM")
	return cmd
}

func printPlan(w io.Writer, plan models.Plan) error {
	_, _ = fmt.Fprintf(w, "simulation end %s, every %d min\n",
		fermentation.FormatClock(plan.SimulationEnd), plan.IntervalMin)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return planCellStyle }).
		Headers("BATCH", "PRODUCT", "START", "PCT", "ACC", "DONE", "LEFT", "FINISH", "TARGET", "SUGGESTED")
	for _, r := range plan.Results {
		t.Row(
			r.Name,
			r.ProductKey,
			fermentation.FormatClock(r.StartTime),
			fmt.Sprintf("%.2f", r.FermentationPct),
			fmt.Sprintf("%.1f", r.AccumulatedEquivalentMinutes),
			fmt.Sprintf("%.0f%%", r.PercentComplete),
			fmt.Sprint(r.RemainingMinutes),
			clockOrDash(r.PredictedFinishTime),
			clockOrDash(r.TargetReadyTime),
			suggestion(r),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func suggestion(r models.BatchResult) string {
	if r.SuggestedStartTime == nil {
		return "-"
	}
	s := "start " + fermentation.FormatClock(*r.SuggestedStartTime)
	if !r.SuggestedStartFeasible {
		s += " (not feasible)"
	}
	if r.SuggestedFermentationPct != nil {
		s += fmt.Sprintf(" or %.2f%%", *r.SuggestedFermentationPct)
	}
	return s
}

func clockOrDash(m *int) string {
	if m == nil {
		return "-"
	}
	return fermentation.FormatClock(*m)
}

func newSolveCmd(configDir *string) *cobra.Command {
	solve := &cobra.Command{Use: "solve", Short: "Run a solver against the stored snapshot"}

	var product, pct, target, start string

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Latest start time that is ready by --target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := fermentation.ParseDecimal(pct)
			if err != nil {
				return err
			}
			tgt, err := fermentation.ParseClock(target)
			if err != nil {
				return err
			}

			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.services.Solver.SolveStart(cmd.Context(), service.SolveStartParams{
				ProductKey: product, FermentationPct: p, Target: tgt,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "start=%s feasible=%t finish=%s\n",
				fermentation.FormatClock(out.Start), out.Feasible, clockOrDash(out.PredictedFinish))
			return nil
		},
	}
	startCmd.Flags().StringVar(&product, "product", "", "product key")
	startCmd.Flags().StringVar(&pct, "pct", "", "fermentation percentage, \".\" or \",\" decimal")
	startCmd.Flags().StringVar(&target, "target", "", "ready time HH:MM")
	_ = startCmd.MarkFlagRequired("product")
	_ = startCmd.MarkFlagRequired("pct")
	_ = startCmd.MarkFlagRequired("target")

	fermentCmd := &cobra.Command{
		Use:   "fermentation",
		Short: "Fermentation percentage that is ready exactly by --target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := fermentation.ParseClock(start)
			if err != nil {
				return err
			}
			tgt, err := fermentation.ParseClock(target)
			if err != nil {
				return err
			}

			a, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.services.Solver.SolveFermentation(cmd.Context(), service.SolveFermentParams{
				ProductKey: product, Start: st, Target: tgt,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fermentation_pct=%.2f degenerate=%t insensitive=%t\n",
				out.FermentationPct, out.Degenerate, out.Insensitive)
			return nil
		},
	}
	fermentCmd.Flags().StringVar(&product, "product", "", "product key")
	fermentCmd.Flags().StringVar(&start, "start", "", "start time HH:MM")
	fermentCmd.Flags().StringVar(&target, "target", "", "ready time HH:MM")
	_ = fermentCmd.MarkFlagRequired("product")
	_ = fermentCmd.MarkFlagRequired("start")
	_ = fermentCmd.MarkFlagRequired("target")

	solve.AddCommand(startCmd, fermentCmd)
	return solve
}
