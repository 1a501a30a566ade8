package opts

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/retheme/pkg/config"
	"github.com/walteh/retheme/pkg/log"
	"github.com/walteh/retheme/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool

	Out io.Writer // user facing output
	Err io.Writer // structured logs

	Logger *log.Logger
}

// New creates options writing to stdout and stderr
func New() *RootOpts {
	return &RootOpts{
		ConfigFile: config.DefaultFile,
		Out:        os.Stdout,
		Err:        os.Stderr,
	}
}

// Setup builds the loggers once flags are parsed and returns a context
// carrying the structured one
func (o *RootOpts) Setup(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: o.Err}).Level(level).With().Timestamp().Logger()
	o.Logger = log.New(o.Out, zlog)

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, o.Logger)
}

// LoadConfig loads and validates the config file
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if o.Logger != nil {
		o.Logger.Infof("loaded %s", cfg)
	}
	return cfg, nil
}

// Jobs loads the config and resolves the named jobs, or all of them
func (o *RootOpts) Jobs(ctx context.Context, names []string) ([]*operation.Job, error) {
	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := operation.NewJobs(cfg, names...)
	if err != nil {
		return nil, errors.Errorf("selecting jobs: %w", err)
	}
	return jobs, nil
}

// Runner returns a runner that reports through the user logger
func (o *RootOpts) Runner(concurrency int) *operation.Runner {
	return operation.NewRunner(operation.Options{
		Logger:      o.Logger,
		Concurrency: concurrency,
	})
}
