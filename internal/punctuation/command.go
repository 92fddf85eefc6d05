package punctuation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

// commandRestorer pipes each segment through an external program, e.g. a
// wrapper script around a local punctuation model. The program reads the
// segment on stdin and writes the restored text to stdout.
type commandRestorer struct {
	path     string
	args     []string
	executor executor.Executor
	logger   logger.Logger
}

func newCommand(cfg config.CommandConfig, exec executor.Executor, log logger.Logger) (Restorer, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, unavailable(BackendCommand, "no command configured",
			"set punctuation.command.path to a program that reads text on stdin")
	}
	path, err := exec.LookPath(cfg.Path)
	if err != nil {
		return nil, unavailable(BackendCommand, err.Error(),
			"install the punctuation program or fix punctuation.command.path")
	}

	return &commandRestorer{
		path:     path,
		args:     cfg.Args,
		executor: exec,
		logger:   log,
	}, nil
}

func (c *commandRestorer) Restore(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	out, err := c.executor.ExecuteWithInput(ctx, text, c.path, c.args...)
	if err != nil {
		return "", fmt.Errorf("punctuation command: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("punctuation command %s: empty output", c.path)
	}
	return out, nil
}

func (c *commandRestorer) Close() error { return nil }
