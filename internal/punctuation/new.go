package punctuation

import (
	"context"
	"fmt"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
	"github.com/rex-sheridan/web-transcriptor/pkg/executor"
)

const (
	BackendNone      = "none"
	BackendHeuristic = "heuristic"
	BackendGemini    = "gemini"
	BackendOpenAI    = "openai"
	BackendCommand   = "command"
)

const restorePrompt = `Restore punctuation and capitalization in the transcript excerpt below.
Do not add, remove, reorder or translate any words. Return only the corrected text, with no commentary.

%s`

// New builds the Restorer selected by cfg.Backend. Construction failures wrap
// ErrUnavailable and carry a remediation hint.
func New(ctx context.Context, cfg config.PunctuationConfig, exec executor.Executor, log logger.Logger) (Restorer, error) {
	switch cfg.Backend {
	case BackendNone:
		return passthrough{}, nil
	case BackendHeuristic, "":
		return NewHeuristic(cfg.ChunkWords), nil
	case BackendGemini:
		return newGemini(ctx, cfg.Gemini, log)
	case BackendOpenAI:
		return newOpenAI(cfg.OpenAI, log)
	case BackendCommand:
		return newCommand(cfg.Command, exec, log)
	default:
		return nil, unavailable(cfg.Backend, "unknown backend",
			"set punctuation.backend to one of none, heuristic, gemini, openai, command")
	}
}

func unavailable(backend, reason, hint string) error {
	return fmt.Errorf("%w: %s backend: %s (%s)", ErrUnavailable, backend, reason, hint)
}

type passthrough struct{}

func (passthrough) Restore(_ context.Context, text string) (string, error) { return text, nil }

func (passthrough) Close() error { return nil }
