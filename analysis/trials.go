package analysis

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/sample"
)

// TrialsConfig configures Trials.
type TrialsConfig struct {
	// M is the number of points each sampler selects. Must be at least 2.
	M int
	// Trials is the number of repetitions. Must be at least 1.
	Trials int
	// Seed drives the random samples and the FPS start points.
	Seed uint64
	// Strategy is the index FPS uses for its distance updates.
	Strategy index.Strategy
}

// Summary aggregates a spread measure over repeated trials.
type Summary struct {
	MinPairwiseMean   float64 `json:"min_pairwise_mean"`
	MinPairwiseStdDev float64 `json:"min_pairwise_stddev"`
	CoverageMean      float64 `json:"coverage_mean"`
	CoverageStdDev    float64 `json:"coverage_stddev"`
}

// Comparison is the result of Trials.
type Comparison struct {
	FPS    Summary `json:"fps"`
	Random Summary `json:"random"`
}

// Trials repeatedly samples ps with FPS from a random start and with random
// sampling, and summarizes the spread of both.
func Trials(ps *pointset.PointSet, cfg TrialsConfig) (Comparison, error) {
	if ps == nil {
		return Comparison{}, pointset.NewArgumentError("trials", "point set", nil, "point set is nil")
	}
	if cfg.M < 2 || cfg.M > ps.Len() {
		return Comparison{}, pointset.NewArgumentError("trials", "m", cfg.M, "m must be in [2, N]")
	}
	if cfg.Trials < 1 {
		return Comparison{}, pointset.NewArgumentError("trials", "trials", cfg.Trials, "trials must be at least 1")
	}

	var idx index.Index
	if cfg.Strategy != index.StrategyBruteForce {
		var err error
		if idx, err = index.Build(cfg.Strategy, ps); err != nil {
			return Comparison{}, err
		}
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	var fps, rnd measures
	for range cfg.Trials {
		opts := []sample.Option{sample.WithStart(rng.IntN(ps.Len()))}
		if idx != nil {
			opts = append(opts, sample.WithIndex(idx))
		}
		sel, err := sample.FPS(ps, cfg.M, opts...)
		if err != nil {
			return Comparison{}, err
		}
		if err := fps.add(ps, sel); err != nil {
			return Comparison{}, err
		}

		sel, err = sample.Random(ps, cfg.M, sample.WithRand(rng))
		if err != nil {
			return Comparison{}, err
		}
		if err := rnd.add(ps, sel); err != nil {
			return Comparison{}, err
		}
	}

	return Comparison{FPS: fps.summary(), Random: rnd.summary()}, nil
}

type measures struct {
	minPairwise []float64
	coverage    []float64
}

func (m *measures) add(ps *pointset.PointSet, sel pointset.Selection) error {
	mp, err := MinPairwiseDistance(ps, sel)
	if err != nil {
		return err
	}
	cov, err := CoverageRadius(ps, sel)
	if err != nil {
		return err
	}
	m.minPairwise = append(m.minPairwise, mp)
	m.coverage = append(m.coverage, cov)
	return nil
}

func (m *measures) summary() Summary {
	var s Summary
	s.MinPairwiseMean, s.MinPairwiseStdDev = meanStdDev(m.minPairwise)
	s.CoverageMean, s.CoverageStdDev = meanStdDev(m.coverage)
	return s
}

// meanStdDev reports a zero deviation for a single trial instead of NaN.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
