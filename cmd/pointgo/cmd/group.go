package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo"
)

func newGroupCmd(a *app) *cobra.Command {
	var (
		cfg     pointgo.GroupConfig
		sampler string
		grouper string
		padding string
	)

	cmd := &cobra.Command{
		Use:   "group <name>",
		Short: "Sample centroids and gather the neighborhood of each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch sampler {
			case "fps":
				cfg.Sampler = pointgo.SamplerFPS
			case "random":
				cfg.Sampler = pointgo.SamplerRandom
			default:
				return fmt.Errorf("unknown sampler %q (want fps or random)", sampler)
			}
			switch grouper {
			case "ball":
				cfg.Grouper = pointgo.GroupBall
			case "knn":
				cfg.Grouper = pointgo.GroupKNN
			default:
				return fmt.Errorf("unknown grouper %q (want ball or knn)", grouper)
			}
			pad, err := parsePadding(padding)
			if err != nil {
				return err
			}
			cfg.Padding = pad

			cloud, err := a.loadCloud(ctx, args[0])
			if err != nil {
				return err
			}
			g, err := cloud.SampleAndGroup(ctx, cfg)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().IntVarP(&cfg.Centroids, "centroids", "m", 512, "Number of centroids")
	cmd.Flags().StringVar(&sampler, "sampler", "fps", "Centroid sampler: fps or random")
	cmd.Flags().IntVar(&cfg.Start, "start", 0, "First FPS centroid")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for random sampling")
	cmd.Flags().StringVar(&grouper, "grouper", "ball", "Neighborhood query: ball or knn")
	cmd.Flags().Float64VarP(&cfg.Radius, "radius", "r", 0.2, "Ball query radius")
	cmd.Flags().IntVar(&cfg.K, "k", 32, "Ball query cap or number of nearest neighbors")
	cmd.Flags().StringVar(&padding, "padding", "none", "Ball query padding: none or repeat")
	cmd.Flags().BoolVar(&cfg.IncludeSelf, "include-self", false, "Allow a centroid in its own group")

	return cmd
}
