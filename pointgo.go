package pointgo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/pointgo/blobstore"
	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/pointio"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/query"
	"github.com/hupe1980/pointgo/sample"
)

// Cloud binds a PointSet to a spatial index and runs sampling and
// neighborhood queries against it. A Cloud is immutable and safe for
// concurrent use.
type Cloud struct {
	ps   *pointset.PointSet
	idx  index.Index
	opts options
}

// New builds the configured index over ps.
func New(ps *pointset.PointSet, optFns ...Option) (*Cloud, error) {
	o := applyOptions(optFns)
	if ps == nil {
		return nil, pointset.NewArgumentError("new cloud", "point set", nil, "point set is nil")
	}

	start := time.Now()
	idx, err := index.Build(o.strategy, ps)
	o.metricsCollector.RecordBuild(ps.Len(), time.Since(start), err)
	o.logger.WithStrategy(o.strategy).LogBuild(context.Background(), ps.Len(), err)
	if err != nil {
		return nil, err
	}

	return &Cloud{ps: ps, idx: idx, opts: o}, nil
}

// Load reads a PCLD file from store and builds a Cloud over it.
// The resource controller, if configured, bounds the read.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Cloud, error) {
	o := applyOptions(optFns)
	ps, err := pointio.Load(ctx, store, name, pointio.WithResourceController(o.resources))
	if err != nil {
		o.logger.ErrorContext(ctx, "load failed", "name", name, "error", err)
		return nil, err
	}
	return New(ps, optFns...)
}

// PointSet returns the bound point set.
func (c *Cloud) PointSet() *pointset.PointSet { return c.ps }

// Index returns the spatial index.
func (c *Cloud) Index() index.Index { return c.idx }

// Strategy returns the index strategy.
func (c *Cloud) Strategy() index.Strategy { return c.opts.strategy }

// Save writes the point set to store in PCLD format.
func (c *Cloud) Save(ctx context.Context, store blobstore.Store, name string, opts ...pointio.Option) error {
	err := pointio.Save(ctx, store, name, c.ps, opts...)
	if err != nil {
		c.opts.logger.ErrorContext(ctx, "save failed", "name", name, "error", err)
	}
	return err
}

// FPS runs farthest point sampling accelerated by the cloud's index.
// Pass sample.WithStart to choose the first point.
func (c *Cloud) FPS(ctx context.Context, m int, opts ...sample.Option) (pointset.Selection, error) {
	if c.opts.strategy != index.StrategyBruteForce {
		opts = append([]sample.Option{sample.WithIndex(c.idx)}, opts...)
	}

	start := time.Now()
	sel, err := sample.FPS(c.ps, m, opts...)
	c.opts.metricsCollector.RecordSample("fps", m, time.Since(start), err)
	c.opts.logger.LogSample(ctx, "fps", m, err)
	return sel, err
}

// Random draws m distinct points uniformly at random.
// Pass sample.WithSeed for a reproducible draw.
func (c *Cloud) Random(ctx context.Context, m int, opts ...sample.Option) (pointset.Selection, error) {
	start := time.Now()
	sel, err := sample.Random(c.ps, m, opts...)
	c.opts.metricsCollector.RecordSample("random", m, time.Since(start), err)
	c.opts.logger.LogSample(ctx, "random", m, err)
	return sel, err
}

// BallQuery returns up to maxNeighbors points within radius of point q.
func (c *Cloud) BallQuery(ctx context.Context, q int, radius float64, maxNeighbors int, opts ...query.Option) (pointset.NeighborList, error) {
	start := time.Now()
	nl, err := query.Ball(c.idx, q, radius, maxNeighbors, opts...)
	c.opts.metricsCollector.RecordQuery("ball", len(nl), time.Since(start), err)
	c.opts.logger.LogQuery(ctx, "ball", q, len(nl), err)
	return nl, err
}

// KNN returns the k nearest neighbors of point q.
func (c *Cloud) KNN(ctx context.Context, q, k int, opts ...query.Option) (pointset.NeighborList, error) {
	start := time.Now()
	nl, err := query.KNN(c.idx, q, k, opts...)
	c.opts.metricsCollector.RecordQuery("knn", len(nl), time.Since(start), err)
	c.opts.logger.LogQuery(ctx, "knn", q, len(nl), err)
	return nl, err
}

// RandomCentroid picks one index of sel uniformly at random, deterministically
// for a given seed.
func (c *Cloud) RandomCentroid(sel pointset.Selection, seed uint64) (int, error) {
	if len(sel) == 0 {
		return 0, pointset.NewArgumentError("random centroid", "selection", 0, "selection must not be empty")
	}
	for _, i := range sel {
		if err := c.ps.CheckIndex("random centroid", "selection", i); err != nil {
			return 0, err
		}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return sel[r.IntN(len(sel))], nil
}
