// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/config"
	"github.com/katalvlaran/bookgraph/dataset"
	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/logging"
	"github.com/katalvlaran/bookgraph/metrics"
	"github.com/katalvlaran/bookgraph/recommend"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	dataPath   string
	configPath string
	asJSON     bool

	cfg      *config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	ingest   dataset.Summary
	network  *affinity.Network
	engine   *recommend.Engine
}

// setup loads configuration and data, then builds the network and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.Log.Logging()
	lc.Output = cmd.ErrOrStderr()
	a.logger = logging.New(lc)

	a.registry = prometheus.NewRegistry()
	m := metrics.New(a.registry)

	if a.dataPath == "" {
		return fmt.Errorf("--data is required")
	}
	ds, err := dataset.Load(a.dataPath)
	if err != nil {
		return err
	}
	cat := library.NewCatalog(
		library.WithLogger(a.logger),
		library.WithTableOptions(cfg.Table.Options()...),
	)
	a.ingest = ds.Apply(cat)

	builder, err := affinity.NewBuilder(
		affinity.WithConfig(cfg.Affinity),
		affinity.WithLogger(a.logger),
		affinity.WithMetrics(m),
	)
	if err != nil {
		return err
	}
	a.network = affinity.NewNetwork(cat, builder)

	a.engine, err = recommend.NewEngine(a.network,
		recommend.WithConfig(cfg.Recommend),
		recommend.WithLogger(a.logger),
		recommend.WithMetrics(m),
	)
	return err
}

// teardown exports metrics when a textfile is configured.
func (a *app) teardown() error {
	if a.cfg == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug().Str("path", a.cfg.Metrics.Textfile).Msg("metrics written")
	return nil
}

// configPathFromEnv lets BOOKGRAPH_CONFIG stand in for --config.
func configPathFromEnv() string { return os.Getenv("BOOKGRAPH_CONFIG") }
