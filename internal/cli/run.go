package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/plan"
)

func newRunCmd() *cobra.Command {
	var (
		all      bool
		asJSON   bool
		elemSize int
	)

	cmd := &cobra.Command{
		Use:   "run PLAN",
		Short: "Apply a TOML transformation plan",
		Long: `Run loads a plan file, builds its base layout and applies each step in order.
It prints the final layout (or every intermediate one with --all) and stops at
the first step that cannot be expressed as a view, naming that step.`,
		Example: `  layoutctl run heads.toml
  layoutctl run heads.toml --all -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded plan", "name", p.Name, "steps", len(p.Steps))

			res, err := plan.Run(p, plan.WithObserver(func(i int, s plan.Step, l layout.Layout) {
				logger.Debug("applied step", "index", i, "op", s.Op, "layout", l)
			}))
			if err != nil {
				return fmt.Errorf("plan %q: %w", p.Name, err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				tuples := []plan.Tuple{plan.TupleOf(res.Final())}
				if all {
					tuples[0] = plan.TupleOf(res.Base)
					for _, l := range res.Steps {
						tuples = append(tuples, plan.TupleOf(l))
					}
				}
				return writeJSON(out, tuples)
			}

			if all {
				fmt.Fprintln(out, renderStep("base", res.Base))
				for i, l := range res.Steps {
					fmt.Fprintln(out, renderStep(fmt.Sprintf("%d %s", i, p.Steps[i].Op), l))
				}
			}
			rep, err := newReport(res.Final(), elemSize)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, renderReport(rep))
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print the base layout and the layout after every step")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	cmd.Flags().IntVar(&elemSize, "elem-size", 0, "element size in bytes, to report the span in bytes")

	return cmd
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a plan step may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range plan.NewRegistry().SupportedOps() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), op); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
