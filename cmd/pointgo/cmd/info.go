package cmd

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

type infoOutput struct {
	Name     string     `json:"name"`
	Points   int        `json:"points"`
	Min      [3]float64 `json:"min"`
	Max      [3]float64 `json:"max"`
	Centroid [3]float64 `json:"centroid"`
}

func vec(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Print the size and extent of a point cloud",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.loadPoints(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			lo, hi := ps.Bounds()
			return writeJSON(cmd.OutOrStdout(), infoOutput{
				Name:     args[0],
				Points:   ps.Len(),
				Min:      vec(lo),
				Max:      vec(hi),
				Centroid: vec(ps.Centroid()),
			})
		},
	}
}
