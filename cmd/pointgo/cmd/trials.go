package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo/analysis"
	"github.com/hupe1980/pointgo/index"
)

func newTrialsCmd(a *app) *cobra.Command {
	var cfg analysis.TrialsConfig

	cmd := &cobra.Command{
		Use:   "trials <name>",
		Short: "Compare the spread of FPS and random samples",
		Long: `Trials samples the cloud repeatedly with FPS from random start points
and with random sampling, and reports the mean and standard deviation of
the minimum pairwise distance and the coverage radius of both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := index.ParseStrategy(a.cfg.Strategy)
			if err != nil {
				return err
			}
			cfg.Strategy = strategy

			ps, err := a.loadPoints(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmp, err := analysis.Trials(ps, cfg)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cmp)
		},
	}

	cmd.Flags().IntVarP(&cfg.M, "samples", "m", 64, "Number of points per sample")
	cmd.Flags().IntVar(&cfg.Trials, "trials", 10, "Number of repetitions")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for start points and random samples")

	return cmd
}
