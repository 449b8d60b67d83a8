package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/sample"
)

type sampleOutput struct {
	Method    string             `json:"method"`
	Selection pointset.Selection `json:"selection"`
	Centroid  *int               `json:"centroid,omitempty"`
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		method   string
		m        int
		start    int
		seed     uint64
		centroid bool
	)

	cmd := &cobra.Command{
		Use:   "sample <name>",
		Short: "Select m points by FPS or random sampling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cloud, err := a.loadCloud(ctx, args[0])
			if err != nil {
				return err
			}

			var sel pointset.Selection
			switch method {
			case "fps":
				sel, err = cloud.FPS(ctx, m, sample.WithStart(start))
			case "random":
				sel, err = cloud.Random(ctx, m, sample.WithSeed(seed))
			default:
				return fmt.Errorf("unknown method %q (want fps or random)", method)
			}
			if err != nil {
				return err
			}

			out := sampleOutput{Method: method, Selection: sel}
			if centroid {
				c, err := cloud.RandomCentroid(sel, seed)
				if err != nil {
					return err
				}
				out.Centroid = &c
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "fps", "Sampling method: fps or random")
	cmd.Flags().IntVarP(&m, "samples", "m", 512, "Number of points to select")
	cmd.Flags().IntVar(&start, "start", 0, "First FPS point")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random sampling and centroid choice")
	cmd.Flags().BoolVar(&centroid, "centroid", false, "Also pick one centroid of the selection at random")

	return cmd
}
