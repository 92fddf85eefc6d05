package punctuation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
)

type generateFunc func(ctx context.Context, keyIndex int, prompt string) (string, error)

type geminiRestorer struct {
	keys       int
	currentKey int
	generate   generateFunc
	logger     logger.Logger
}

func newGemini(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Restorer, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, unavailable(BackendGemini, "no API keys configured",
			"set GEMINI_API_KEYS or punctuation.gemini.api_keys")
	}

	clients := make([]*genai.Client, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, unavailable(BackendGemini, fmt.Sprintf("create client for key %d: %v", i+1, err),
				"check the configured Gemini API keys")
		}
		clients = append(clients, client)
	}

	model := cfg.Model
	return &geminiRestorer{
		keys:   len(clients),
		logger: log,
		generate: func(ctx context.Context, keyIndex int, prompt string) (string, error) {
			result, err := clients[keyIndex].Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
			if err != nil {
				return "", err
			}
			return responseText(result), nil
		},
	}, nil
}

// Restore sends one segment to Gemini. Rate-limited keys are rotated until
// every key has been tried once.
func (g *geminiRestorer) Restore(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	prompt := fmt.Sprintf(restorePrompt, text)

	var lastErr error
	for range g.keys {
		out, err := g.generate(ctx, g.currentKey, prompt)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("gemini generate content: %w", err)
		}

		out = strings.TrimSpace(out)
		if out == "" {
			return "", fmt.Errorf("gemini: empty response")
		}
		return out, nil
	}

	return "", fmt.Errorf("gemini: all API keys exhausted: %w", lastErr)
}

func (g *geminiRestorer) Close() error { return nil }

func (g *geminiRestorer) rotateKey() {
	g.currentKey = (g.currentKey + 1) % g.keys
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
