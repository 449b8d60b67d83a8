package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo/analysis"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/query"
)

type queryOutput struct {
	Query  int                   `json:"query"`
	Ball   pointset.NeighborList `json:"ball"`
	KNN    pointset.NeighborList `json:"knn"`
	Groups analysis.Groups       `json:"groups"`
}

func parsePadding(s string) (query.Padding, error) {
	switch s {
	case "none", "":
		return query.PadNone, nil
	case "repeat":
		return query.PadRepeatNearest, nil
	default:
		return 0, fmt.Errorf("unknown padding %q (want none or repeat)", s)
	}
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		q            int
		radius       float64
		maxNeighbors int
		k            int
		padding      string
		includeSelf  bool
	)

	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Run a ball query and a kNN query around one point",
		Long: `Query runs both neighborhood queries around point --point and reports
which neighbors both found, which only the ball query found and which
only the kNN query found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pad, err := parsePadding(padding)
			if err != nil {
				return err
			}
			cloud, err := a.loadCloud(ctx, args[0])
			if err != nil {
				return err
			}

			ball, err := cloud.BallQuery(ctx, q, radius, maxNeighbors, query.WithPadding(pad), query.IncludeSelf(includeSelf))
			if err != nil {
				return err
			}
			knn, err := cloud.KNN(ctx, q, k, query.IncludeSelf(includeSelf))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), queryOutput{
				Query:  q,
				Ball:   ball,
				KNN:    knn,
				Groups: analysis.Partition(ball, knn),
			})
		},
	}

	cmd.Flags().IntVarP(&q, "point", "q", 0, "Query point index")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0.2, "Ball query radius")
	cmd.Flags().IntVar(&maxNeighbors, "max-neighbors", 32, "Ball query neighbor cap")
	cmd.Flags().IntVar(&k, "k", 16, "Number of nearest neighbors")
	cmd.Flags().StringVar(&padding, "padding", "none", "Ball query padding: none or repeat")
	cmd.Flags().BoolVar(&includeSelf, "include-self", false, "Allow the query point in its own result")

	return cmd
}
