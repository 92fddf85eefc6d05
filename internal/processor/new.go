package processor

import (
	"context"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
	"github.com/rex-sheridan/web-transcriptor/internal/punctuation"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

type restorerFactory func(ctx context.Context) (punctuation.Restorer, error)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	logger      logger.Logger
	newRestorer restorerFactory
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	p := &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
	p.newRestorer = func(ctx context.Context) (punctuation.Restorer, error) {
		return punctuation.New(ctx, p.cfg.Punctuation, p.executor, p.logger)
	}
	return p
}
