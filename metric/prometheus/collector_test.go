package prometheus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgo"
	"github.com/hupe1980/pointgo/pointset"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordBuild(10, time.Millisecond, nil)
	c.RecordSample("fps", 4, time.Millisecond, nil)
	c.RecordQuery("ball", 3, time.Microsecond, nil)
	c.RecordQuery("ball", 0, time.Microsecond, errors.New("boom"))
	c.RecordGroup(4, time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("build", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("query_ball", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("query_ball", "error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.centroids))

	n, err := testutil.GatherAndCount(reg, "pointgo_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCollector_WithCloud(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc := NewCollector(reg)

	ps, err := pointset.FromCoords([][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {10, 0, 0}})
	require.NoError(t, err)
	cloud, err := pointgo.New(ps, pointgo.WithMetricsCollector(mc))
	require.NoError(t, err)

	_, err = cloud.KNN(context.Background(), 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(mc.ops.WithLabelValues("query_knn", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.ops.WithLabelValues("build", "ok")))
}
