package punctuation

import (
	"context"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
)

type openAIRestorer struct {
	client oai.Client
	model  string
	logger logger.Logger
}

func newOpenAI(cfg config.OpenAIConfig, log logger.Logger) (Restorer, error) {
	if cfg.APIKey == "" {
		return nil, unavailable(BackendOpenAI, "no API key configured",
			"set OPENAI_API_KEY or punctuation.openai.api_key")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIRestorer{
		client: oai.NewClient(opts...),
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (o *openAIRestorer) Restore(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	resp, err := o.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(fmt.Sprintf(restorePrompt, text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai: empty response")
	}
	o.logger.Debug(ctx, "OpenAI restored %d chars (%d tokens)", len(out), resp.Usage.TotalTokens)
	return out, nil
}

func (o *openAIRestorer) Close() error { return nil }
