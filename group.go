package pointgo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/query"
	"github.com/hupe1980/pointgo/sample"
)

// Sampler selects how SampleAndGroup picks centroids.
type Sampler int

const (
	// SamplerFPS picks centroids by farthest point sampling.
	SamplerFPS Sampler = iota
	// SamplerRandom picks centroids uniformly at random.
	SamplerRandom
)

// String returns a string representation of the Sampler.
func (s Sampler) String() string {
	switch s {
	case SamplerFPS:
		return "FPS"
	case SamplerRandom:
		return "Random"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Grouper selects the neighborhood query run around each centroid.
type Grouper int

const (
	// GroupBall groups by ball query.
	GroupBall Grouper = iota
	// GroupKNN groups by k nearest neighbors.
	GroupKNN
)

// String returns a string representation of the Grouper.
func (g Grouper) String() string {
	switch g {
	case GroupBall:
		return "Ball"
	case GroupKNN:
		return "KNN"
	default:
		return fmt.Sprintf("Unknown(%d)", int(g))
	}
}

// GroupConfig configures SampleAndGroup.
type GroupConfig struct {
	// Centroids is the number of centroids to sample.
	Centroids int
	Sampler   Sampler
	// Start is the first FPS centroid.
	Start int
	// Seed drives random sampling.
	Seed    uint64
	Grouper Grouper
	// Radius is the ball query radius.
	Radius float64
	// K is the neighbor cap for ball queries and k for kNN.
	K           int
	Padding     query.Padding
	IncludeSelf bool
}

// Grouping is the result of SampleAndGroup. Groups[i] is the neighborhood
// of Centroids[i].
type Grouping struct {
	Centroids pointset.Selection      `json:"centroids"`
	Groups    []pointset.NeighborList `json:"groups"`
}

// SampleAndGroup samples centroids and queries the neighborhood of each.
// Neighborhood queries run concurrently, bounded by the resource controller's
// worker budget (GOMAXPROCS without one). The first failing query cancels the
// rest and no partial result is returned.
func (c *Cloud) SampleAndGroup(ctx context.Context, cfg GroupConfig) (*Grouping, error) {
	start := time.Now()
	g, err := c.sampleAndGroup(ctx, cfg)
	c.opts.metricsCollector.RecordGroup(cfg.Centroids, time.Since(start), err)

	neighbors := 0
	if g != nil {
		for _, nl := range g.Groups {
			neighbors += len(nl)
		}
	}
	c.opts.logger.WithCount(c.ps.Len()).LogGroup(ctx, cfg.Centroids, neighbors, err)
	return g, err
}

func (c *Cloud) sampleAndGroup(ctx context.Context, cfg GroupConfig) (*Grouping, error) {
	var (
		centroids pointset.Selection
		err       error
	)
	switch cfg.Sampler {
	case SamplerFPS:
		centroids, err = c.FPS(ctx, cfg.Centroids, sample.WithStart(cfg.Start))
	case SamplerRandom:
		centroids, err = c.Random(ctx, cfg.Centroids, sample.WithSeed(cfg.Seed))
	default:
		return nil, pointset.NewArgumentError("sample and group", "sampler", cfg.Sampler, "unknown sampler")
	}
	if err != nil {
		return nil, err
	}

	var run func(q int) (pointset.NeighborList, error)
	switch cfg.Grouper {
	case GroupBall:
		run = func(q int) (pointset.NeighborList, error) {
			return query.Ball(c.idx, q, cfg.Radius, cfg.K, query.IncludeSelf(cfg.IncludeSelf), query.WithPadding(cfg.Padding))
		}
	case GroupKNN:
		run = func(q int) (pointset.NeighborList, error) {
			return query.KNN(c.idx, q, cfg.K, query.IncludeSelf(cfg.IncludeSelf))
		}
	default:
		return nil, pointset.NewArgumentError("sample and group", "grouper", cfg.Grouper, "unknown grouper")
	}

	groups := make([]pointset.NeighborList, len(centroids))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers())

	rc := c.opts.resources
	for i, q := range centroids {
		eg.Go(func() error {
			if err := rc.AcquireWorker(ctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			nl, err := run(q)
			if err != nil {
				return err
			}
			groups[i] = nl
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Grouping{Centroids: centroids, Groups: groups}, nil
}

func (c *Cloud) workers() int {
	if n := c.opts.resources.Config().MaxWorkers; n > 0 {
		return int(n)
	}
	return runtime.GOMAXPROCS(0)
}
