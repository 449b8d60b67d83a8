package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pointgo"
	"github.com/hupe1980/pointgo/blobstore"
	minioblob "github.com/hupe1980/pointgo/blobstore/minio"
	s3blob "github.com/hupe1980/pointgo/blobstore/s3"
	"github.com/hupe1980/pointgo/index"
	"github.com/hupe1980/pointgo/pointio"
	"github.com/hupe1980/pointgo/resource"
)

// Config is the CLI configuration, read from a YAML file and overridden
// by flags.
type Config struct {
	Store       StoreConfig    `yaml:"store"`
	Strategy    string         `yaml:"strategy"`
	Compression string         `yaml:"compression"`
	LogLevel    string         `yaml:"log_level"`
	Resources   ResourceConfig `yaml:"resources"`
}

// StoreConfig selects the blob store holding point-cloud files.
type StoreConfig struct {
	// Type is one of "local", "s3" or "minio".
	Type      string `yaml:"type"`
	Root      string `yaml:"root"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// ResourceConfig mirrors resource.Config.
type ResourceConfig struct {
	MemoryLimitBytes   int64 `yaml:"memory_limit_bytes"`
	MaxWorkers         int64 `yaml:"max_workers"`
	IOLimitBytesPerSec int64 `yaml:"io_limit_bytes_per_sec"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Type: "local",
			Root: ".",
		},
		Strategy:    "kdtree",
		Compression: "lz4",
		LogLevel:    "warn",
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) logLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

func (c Config) resources() *resource.Controller {
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   c.Resources.MemoryLimitBytes,
		MaxWorkers:         c.Resources.MaxWorkers,
		IOLimitBytesPerSec: c.Resources.IOLimitBytesPerSec,
	})
}

// cloudOptions translates the config into pointgo options.
func (c Config) cloudOptions(rc *resource.Controller) ([]pointgo.Option, error) {
	strategy, err := index.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	level, err := c.logLevel()
	if err != nil {
		return nil, err
	}
	return []pointgo.Option{
		pointgo.WithStrategy(strategy),
		pointgo.WithLogLevel(level),
		pointgo.WithResourceController(rc),
	}, nil
}

func (c Config) compression() (pointio.Compression, error) {
	return pointio.ParseCompression(c.Compression)
}

// openStore opens the configured blob store.
func openStore(ctx context.Context, sc StoreConfig) (blobstore.Store, error) {
	switch strings.ToLower(sc.Type) {
	case "", "local":
		return blobstore.NewLocalStore(sc.Root), nil
	case "s3":
		if sc.Bucket == "" {
			return nil, fmt.Errorf("store: s3 requires a bucket")
		}
		opts := []s3blob.Option{s3blob.WithPrefix(sc.Prefix)}
		if sc.Region != "" {
			opts = append(opts, s3blob.WithRegion(sc.Region))
		}
		if sc.Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(sc.Endpoint))
		}
		return s3blob.New(ctx, sc.Bucket, opts...)
	case "minio":
		if sc.Bucket == "" || sc.Endpoint == "" {
			return nil, fmt.Errorf("store: minio requires a bucket and an endpoint")
		}
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
			Secure: sc.Secure,
			Region: sc.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("store: minio client: %w", err)
		}
		return minioblob.NewStore(client, sc.Bucket, sc.Prefix), nil
	default:
		return nil, fmt.Errorf("store: unknown type %q", sc.Type)
	}
}
