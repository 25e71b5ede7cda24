package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/common"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/config"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/metrics"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/status"
)

// Input holds the persistent flags.
type Input struct {
	configPath  string
	snapshot    string
	logLevel    string
	output      string
	metricsFile string

	// now is the clock used by recommend; nil means time.Now.
	now func() time.Time
}

// app is the state shared by every subcommand once the snapshot is loaded.
type app struct {
	ctx      context.Context
	cfg      *config.Config
	logger   logrus.FieldLogger
	snapshot *records.Snapshot
	index    *status.Index
	metrics  *metrics.Metrics
	out      io.Writer
	now      func() time.Time
}

func newRootCmd(ctx context.Context, input *Input) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "reporter",
		Short:        "Query a snapshot of municipal issue reports and community events",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(ctx, cmd, input)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.flush()
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&input.configPath, "config", "c", "reporter.yaml", "config file")
	flags.StringVarP(&input.snapshot, "snapshot", "s", "", "snapshot file (env: "+config.EnvSnapshot+")")
	flags.StringVar(&input.logLevel, "log-level", "", "log level (env: "+config.EnvLogLevel+")")
	flags.StringVarP(&input.output, "output", "o", "", "output format: table|json")
	flags.StringVar(&input.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	rootCmd.AddCommand(
		newTimelineCmd(a),
		newFindCmd(a),
		newSearchCmd(a),
		newPriorityCmd(a),
		newTraverseCmd(a),
		newMSTCmd(a),
		newRecommendCmd(a),
	)

	return rootCmd
}

// setup resolves the configuration (file, then env, then flags), loads the
// snapshot and builds the status index.
func (a *app) setup(ctx context.Context, cmd *cobra.Command, input *Input) error {
	cfg, err := config.Load(input.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if input.snapshot != "" {
		cfg.Snapshot = input.snapshot
	}
	if input.logLevel != "" {
		cfg.LogLevel = input.logLevel
	}
	if input.output != "" {
		cfg.Output = input.output
	}
	if input.metricsFile != "" {
		cfg.MetricsFile = input.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	logger := cfg.Logger()
	logger.SetOutput(cmd.ErrOrStderr())
	entry := logger.WithField("command", cmd.Name())
	ctx = common.WithLogger(ctx, entry)

	snapshot, err := records.Load(cfg.Snapshot)
	if err != nil {
		return errors.Wrapf(err, "load snapshot %s", cfg.Snapshot)
	}
	entry.WithFields(logrus.Fields{
		"snapshot": cfg.Snapshot,
		"issues":   len(snapshot.Issues),
		"events":   len(snapshot.Events),
	}).Debug("snapshot loaded")

	a.ctx = ctx
	a.cfg = cfg
	a.logger = entry
	a.snapshot = snapshot
	a.index = status.Build(ctx, snapshot.Issues)
	a.metrics = metrics.New()
	a.metrics.Observe(a.index.Stats())
	a.out = cmd.OutOrStdout()
	a.now = input.now
	if a.now == nil {
		a.now = time.Now
	}

	return nil
}

func (a *app) flush() error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return errors.Wrap(err, "flush metrics")
	}
	a.logger.WithField("path", a.cfg.MetricsFile).Debug("metrics written")

	return nil
}
