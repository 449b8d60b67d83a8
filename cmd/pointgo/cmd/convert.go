package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo/pointio"
	"github.com/hupe1980/pointgo/pointset"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		compression string
		normalize   bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input.xyz> <name>",
		Short: "Convert an XYZ text file into a PCLD blob",
		Long: `Convert reads one point per line as three numbers separated by
whitespace or commas. Blank lines and lines starting with # are skipped.
Use - to read from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("compression") {
				a.cfg.Compression = compression
			}
			c, err := a.cfg.compression()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			ps, err := readXYZ(in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if normalize {
				if ps, err = ps.Normalize(); err != nil {
					return err
				}
			}

			if err := pointio.Save(cmd.Context(), a.store, args[1], ps, pointio.WithCompression(c)); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"name":        args[1],
				"points":      ps.Len(),
				"compression": c.String(),
			})
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "lz4", "Block compression: none, lz4 or zstd")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Center on the centroid and scale into the unit sphere")

	return cmd
}

// readXYZ parses one point per line.
func readXYZ(r io.Reader) (*pointset.PointSet, error) {
	var coords [][3]float64

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinates, got %d", line, len(fields))
		}

		var p [3]float64
		for i := range p {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = v
		}
		coords = append(coords, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pointset.FromCoords(coords)
}
