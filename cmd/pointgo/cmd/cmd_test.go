package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgo"
	"github.com/hupe1980/pointgo/analysis"
)

const lineXYZ = `# x y z
0 0 0
1,0,0
2	0	0

10 0 0
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "line.xyz")
	require.NoError(t, os.WriteFile(in, []byte(lineXYZ), 0o644))

	_, err := run(t, "--store-root", dir, "convert", in, "line.pcld", "--compression", "zstd")
	require.NoError(t, err)
	return dir
}

func TestConvertAndInfo(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "--store-root", dir, "info", "line.pcld")
	require.NoError(t, err)

	var info infoOutput
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 4, info.Points)
	assert.Equal(t, [3]float64{10, 0, 0}, info.Max)
	assert.Equal(t, [3]float64{3.25, 0, 0}, info.Centroid)
}

func TestSampleCmd(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "--store-root", dir, "sample", "line.pcld", "-m", "2")
	require.NoError(t, err)

	var got sampleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "fps", got.Method)
	assert.Equal(t, []int{0, 3}, []int(got.Selection))
	assert.Nil(t, got.Centroid)

	out, err = run(t, "--store-root", dir, "sample", "line.pcld", "--method", "random", "-m", "3", "--seed", "4", "--centroid")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Selection, 3)
	require.NotNil(t, got.Centroid)
	assert.Contains(t, []int(got.Selection), *got.Centroid)

	_, err = run(t, "--store-root", dir, "sample", "line.pcld", "--method", "grid")
	assert.Error(t, err)
}

func TestQueryCmd(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "--store-root", dir, "query", "line.pcld", "-q", "0", "-r", "1.5", "--k", "2", "--strategy", "bruteforce")
	require.NoError(t, err)

	var got queryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{1}, got.Ball.Indices())
	assert.Equal(t, []int{1, 2}, got.KNN.Indices())
	assert.Equal(t, analysis.Groups{Both: []int{1}, BallOnly: []int{}, KNNOnly: []int{2}}, got.Groups)

	_, err = run(t, "--store-root", dir, "query", "line.pcld", "-r", "0")
	assert.ErrorIs(t, err, pointgo.ErrInvalidArgument)
}

func TestGroupCmd(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "--store-root", dir, "group", "line.pcld", "-m", "2", "-r", "1.5", "--k", "3", "--padding", "repeat")
	require.NoError(t, err)

	var got pointgo.Grouping
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{0, 3}, []int(got.Centroids))
	require.Len(t, got.Groups, 2)
	assert.Equal(t, []int{1, 1, 1}, got.Groups[0].Indices())
	assert.Empty(t, got.Groups[1])
}

func TestTrialsCmd(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "--store-root", dir, "trials", "line.pcld", "-m", "2", "--trials", "3")
	require.NoError(t, err)

	var got analysis.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Greater(t, got.FPS.MinPairwiseMean, 0.0)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "pointgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"store:",
		"  root: /data/clouds",
		"strategy: bruteforce",
		"resources:",
		"  max_workers: 4",
	}, "\n")), 0o644))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Store.Type)
	assert.Equal(t, "/data/clouds", cfg.Store.Root)
	assert.Equal(t, "bruteforce", cfg.Strategy)
	assert.Equal(t, "lz4", cfg.Compression)
	assert.Equal(t, int64(4), cfg.Resources.MaxWorkers)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenStore_Invalid(t *testing.T) {
	_, err := openStore(t.Context(), StoreConfig{Type: "ftp"})
	assert.Error(t, err)
	_, err = openStore(t.Context(), StoreConfig{Type: "s3"})
	assert.Error(t, err)
	_, err = openStore(t.Context(), StoreConfig{Type: "minio", Bucket: "b"})
	assert.Error(t, err)
}

func TestReadXYZ(t *testing.T) {
	ps, err := readXYZ(strings.NewReader(lineXYZ))
	require.NoError(t, err)
	assert.Equal(t, 4, ps.Len())

	_, err = readXYZ(strings.NewReader("1 2\n"))
	assert.ErrorContains(t, err, "line 1")
	_, err = readXYZ(strings.NewReader("1 2 x\n"))
	assert.Error(t, err)
	_, err = readXYZ(strings.NewReader(""))
	assert.ErrorIs(t, err, pointgo.ErrInvalidArgument)
}
