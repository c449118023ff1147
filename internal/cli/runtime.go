package cli

import (
	"fmt"

	"github.com/harun/pbrctl/internal/config"
	"github.com/harun/pbrctl/internal/logger"
	"github.com/harun/pbrctl/internal/metrics"
	"github.com/harun/pbrctl/internal/tracing"
	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/harun/pbrctl/pkg/render"
	"github.com/harun/pbrctl/pkg/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runtime holds everything one command invocation owns
type runtime struct {
	cfg     *config.Config
	log     *logger.Logger
	logger  zerolog.Logger
	metrics *metrics.Metrics
	format  render.Format
	handle  source.Handle
	store   *pbr.Store
}

// loadConfig loads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if sourcePath != "" {
		cfg.Source.Path = sourcePath
	}
	if sourceDriver != "" {
		cfg.Source.Driver = sourceDriver
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if metricsTextfile != "" {
		cfg.Metrics.Textfile = metricsTextfile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration: %v", pbr.ErrInvalidArgument, err)
	}
	return cfg, nil
}

// newRuntime prepares logging and metrics for a command
func newRuntime(cmd *cobra.Command, command string) (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		log.Close()
		return nil, err
	}

	ctx := tracing.NewOperationContext(cmd.Context(), command)
	rt := &runtime{
		cfg:     cfg,
		log:     log,
		logger:  tracing.LoggerFromContext(ctx, log.GetZerolog()),
		metrics: metrics.NewMetrics(),
		format:  format,
	}
	rt.logger.Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return rt, nil
}

// openStore opens the configured session source
func (rt *runtime) openStore() error {
	handle, err := source.Open(rt.cfg.Source.Driver, rt.cfg.Source.Path, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to open session source: %w", err)
	}
	rt.handle = handle
	rt.store = pbr.NewStore(
		metrics.InstrumentBackend(handle, rt.metrics),
		pbr.WithMaxBufferBytes(rt.cfg.Limits.MaxBufferBytes),
	)
	return nil
}

// finish records the outcome and releases everything the runtime owns
func (rt *runtime) finish(command string, err error) error {
	rt.metrics.RecordCommand(command, err)

	if rt.handle != nil {
		if closeErr := rt.handle.Close(); closeErr != nil {
			rt.logger.Warn().Err(closeErr).Msg("Failed to close session source")
		}
	}

	if rt.cfg.Metrics.Textfile != "" {
		if mErr := rt.metrics.WriteTextfile(rt.cfg.Metrics.Textfile); mErr != nil {
			rt.logger.Warn().Err(mErr).Msg("Failed to write metrics")
		}
	}

	if err != nil {
		rt.logger.Error().Err(err).Msg("Command failed")
	} else {
		rt.logger.Debug().Msg("Command completed")
	}

	rt.log.Close()
	return err
}

// run wraps a command body with runtime setup and teardown
func run(cmd *cobra.Command, command string, needStore bool, body func(rt *runtime) error) error {
	rt, err := newRuntime(cmd, command)
	if err != nil {
		return err
	}

	if needStore {
		if err := rt.openStore(); err != nil {
			return rt.finish(command, err)
		}
	}

	return rt.finish(command, body(rt))
}
