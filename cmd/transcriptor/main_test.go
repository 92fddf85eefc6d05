package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rex-sheridan/web-transcriptor/internal/caption"
	"github.com/rex-sheridan/web-transcriptor/internal/punctuation"
	"github.com/rex-sheridan/web-transcriptor/internal/segment"
)

const testVTT = `WEBVTT

00:00:00.000 --> 00:00:02.000
hello world

00:00:02.000 --> 00:00:04.000
completely different text
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.vtt")
	require.NoError(t, os.WriteFile(path, []byte(testVTT), 0644))
	return path
}

func TestConvertFull(t *testing.T) {
	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "talk.html")

	out, err := runCLI(t, "convert", input, output)
	require.NoError(t, err)
	assert.Contains(t, out, "Transcript saved to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello world.")
	assert.Contains(t, string(data), "Completely different text.")
}

func TestConvertMinimal(t *testing.T) {
	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "talk.html")

	_, err := runCLI(t, "convert", input, output, "--mode", "minimal")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<div class='caption'>"))
	assert.Contains(t, string(data), "<p class='text'>hello world</p>")
}

func TestConvertMissingCapability(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "talk.html")

	_, err := runCLI(t, "convert", input, output, "--backend", "gemini")
	require.Error(t, err)
	assert.True(t, errors.Is(err, punctuation.ErrUnavailable))
	assert.Contains(t, err.Error(), "GEMINI_API_KEYS")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertMalformedInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "bad.vtt")
	require.NoError(t, os.WriteFile(input, []byte("this is not a caption file at all\n"), 0644))
	output := filepath.Join(t.TempDir(), "bad.html")

	_, err := runCLI(t, "convert", input, output, "--mode", "minimal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, caption.ErrParse))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertInvalidMode(t *testing.T) {
	_, err := runCLI(t, "convert", writeInput(t), filepath.Join(t.TempDir(), "x.html"), "--mode", "fast")
	assert.Error(t, err)
}

func TestConvertRequiresTwoArgs(t *testing.T) {
	_, err := runCLI(t, "convert", "only-one.vtt")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, err := runCLI(t, "inspect", writeInput(t))
	require.NoError(t, err)
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "completely different text")
	assert.Contains(t, out, "2 segments")
}

func TestRenderSegmentTable(t *testing.T) {
	out := renderSegmentTable([]segment.Segment{{Text: "one two three"}})
	assert.Contains(t, out, "00:00:00.000")
	assert.Contains(t, out, "one two three")
	assert.Contains(t, out, "1 segments")
}
