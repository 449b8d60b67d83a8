// Package cmd provides the CLI commands for pointgo.
package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pointgo"
	"github.com/hupe1980/pointgo/blobstore"
	"github.com/hupe1980/pointgo/pointio"
	"github.com/hupe1980/pointgo/pointset"
	"github.com/hupe1980/pointgo/resource"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	cfg        Config
	store      blobstore.Store
	rc         *resource.Controller
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command for the pointgo CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	var (
		storeRoot string
		strategy  string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "pointgo",
		Short: "Point-cloud sampling and neighborhood queries",
		Long: `pointgo samples point clouds with farthest point sampling or random
sampling and gathers ball-query and kNN neighborhoods.

Results are written to stdout as JSON for rendering by external tools.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("store-root") {
				cfg.Store.Type, cfg.Store.Root = "local", storeRoot
			}
			if flags.Changed("strategy") {
				cfg.Strategy = strategy
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			store, err := openStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			a.cfg, a.store, a.rc = cfg, store, cfg.resources()
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&storeRoot, "store-root", ".", "Directory of a local blob store")
	cmd.PersistentFlags().StringVar(&strategy, "strategy", "kdtree", "Spatial index: kdtree or bruteforce")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newInfoCmd(a))
	cmd.AddCommand(newSampleCmd(a))
	cmd.AddCommand(newQueryCmd(a))
	cmd.AddCommand(newGroupCmd(a))
	cmd.AddCommand(newTrialsCmd(a))

	return cmd
}

// loadCloud reads name from the configured store and indexes it.
func (a *app) loadCloud(ctx context.Context, name string) (*pointgo.Cloud, error) {
	opts, err := a.cfg.cloudOptions(a.rc)
	if err != nil {
		return nil, err
	}
	return pointgo.Load(ctx, a.store, name, opts...)
}

func (a *app) loadPoints(ctx context.Context, name string) (*pointset.PointSet, error) {
	return pointio.Load(ctx, a.store, name, pointio.WithResourceController(a.rc))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
