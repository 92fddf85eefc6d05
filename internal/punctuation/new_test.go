package punctuation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/logger"
)

type fakeExecutor struct {
	lookErr error
	output  string
	runErr  error
	inputs  []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.output, f.runErr
}

func (f *fakeExecutor) ExecuteWithInput(ctx context.Context, input string, name string, args ...string) (string, error) {
	f.inputs = append(f.inputs, input)
	return f.output, f.runErr
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + name, nil
}

func TestNewUnavailable(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PunctuationConfig
		exec *fakeExecutor
	}{
		{"unknown backend", config.PunctuationConfig{Backend: "magic"}, &fakeExecutor{}},
		{"gemini without keys", config.PunctuationConfig{Backend: BackendGemini}, &fakeExecutor{}},
		{"openai without key", config.PunctuationConfig{Backend: BackendOpenAI}, &fakeExecutor{}},
		{"command without path", config.PunctuationConfig{Backend: BackendCommand}, &fakeExecutor{}},
		{
			"command not on PATH",
			config.PunctuationConfig{Backend: BackendCommand, Command: config.CommandConfig{Path: "punctuate"}},
			&fakeExecutor{lookErr: errors.New("not found")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(context.Background(), tt.cfg, tt.exec, logger.NewNop())
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, ErrUnavailable), "error %v should wrap ErrUnavailable", err)
		})
	}
}

func TestNewLocalBackends(t *testing.T) {
	ctx := context.Background()

	r, err := New(ctx, config.PunctuationConfig{Backend: BackendNone}, &fakeExecutor{}, logger.NewNop())
	require.NoError(t, err)
	out, err := r.Restore(ctx, "left alone")
	require.NoError(t, err)
	assert.Equal(t, "left alone", out)
	assert.NoError(t, r.Close())

	r, err = New(ctx, config.PunctuationConfig{Backend: BackendHeuristic, ChunkWords: 2}, &fakeExecutor{}, logger.NewNop())
	require.NoError(t, err)
	out, err = r.Restore(ctx, "a b c")
	require.NoError(t, err)
	assert.Equal(t, "A b. C.", out)
}

func TestCommandRestorer(t *testing.T) {
	exec := &fakeExecutor{output: "  Hello, world.\n"}
	cfg := config.PunctuationConfig{
		Backend: BackendCommand,
		Command: config.CommandConfig{Path: "punctuate", Args: []string{"--lang", "en"}},
	}

	r, err := New(context.Background(), cfg, exec, logger.NewNop())
	require.NoError(t, err)

	out, err := r.Restore(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world.", out)
	assert.Equal(t, []string{"hello world"}, exec.inputs)
}

func TestCommandRestorerFailures(t *testing.T) {
	cfg := config.PunctuationConfig{
		Backend: BackendCommand,
		Command: config.CommandConfig{Path: "punctuate"},
	}

	r, err := New(context.Background(), cfg, &fakeExecutor{runErr: errors.New("exit 1")}, logger.NewNop())
	require.NoError(t, err)
	_, err = r.Restore(context.Background(), "hello")
	assert.Error(t, err)

	r, err = New(context.Background(), cfg, &fakeExecutor{output: "  "}, logger.NewNop())
	require.NoError(t, err)
	_, err = r.Restore(context.Background(), "hello")
	assert.Error(t, err)
}
