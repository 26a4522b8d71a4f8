package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/plan"
)

type inspectOptions struct {
	extents  []int
	strides  []int
	offset   int
	order    string
	elemSize int
	json     bool
}

func newInspectCmd() *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report properties of a layout",
		Long: `Inspect builds a layout from --extents (and optionally --strides and --offset)
and reports its element count, addressed span, contiguity, mergeable axis
pairs and canonical form.`,
		Example: `  layoutctl inspect --extents 2,3,4
  layoutctl inspect --extents 2,3,4 --strides 12,-4,1 --offset 20
  layoutctl inspect --extents 2,3,4 --order column --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := plan.Base{Extents: opts.extents, Offset: opts.offset, Order: opts.order}
			if cmd.Flags().Changed("strides") {
				base.Strides = opts.strides
			}
			l, err := base.Layout()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("inspecting layout", "layout", l)

			rep, err := newReport(l, opts.elemSize)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))
			return err
		},
	}

	cmd.Flags().IntSliceVar(&opts.extents, "extents", nil, "axis extents, outermost first")
	cmd.Flags().IntSliceVar(&opts.strides, "strides", nil, "axis strides (default: contiguous in --order)")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "storage offset of the zero index")
	cmd.Flags().StringVar(&opts.order, "order", "row", "major order for contiguous strides: row or column")
	cmd.Flags().IntVar(&opts.elemSize, "elem-size", 0, "element size in bytes, to report the span in bytes")
	cmd.Flags().BoolVar(&opts.json, "json", false, "emit JSON")

	return cmd
}

// report is everything inspect prints about a layout.
type report struct {
	Layout     plan.Tuple `json:"layout"`
	Rank       int        `json:"rank"`
	Elements   int        `json:"elements"`
	Span       [2]int     `json:"span"`
	SpanBytes  int        `json:"span_bytes,omitempty"`
	Contiguous bool       `json:"contiguous"`
	Mergeable  [][2]int   `json:"mergeable"`
	Canonical  plan.Tuple `json:"canonical"`
}

func newReport(l layout.Layout, elemSize int) (report, error) {
	n, err := l.NumElements()
	if err != nil {
		return report{}, err
	}
	span, err := l.Span()
	if err != nil {
		return report{}, err
	}
	canon, err := l.Canonicalize()
	if err != nil {
		return report{}, err
	}

	rep := report{
		Layout:     plan.TupleOf(l),
		Rank:       l.Rank(),
		Elements:   n,
		Span:       [2]int{span.Start, span.End},
		Contiguous: l.IsContiguous(),
		Mergeable:  [][2]int{},
		Canonical:  plan.TupleOf(canon),
	}
	if elemSize > 0 {
		if rep.SpanBytes, err = l.SpanBytes(elemSize); err != nil {
			return report{}, err
		}
	}
	for i := 0; i+1 < l.Rank(); i++ {
		if l.AxesMergeable(i, i+1) {
			rep.Mergeable = append(rep.Mergeable, [2]int{i, i + 1})
		}
	}
	return rep, nil
}
