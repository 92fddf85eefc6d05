package caption

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVTT = `WEBVTT

00:00:00.000 --> 00:00:02.500
the quick brown fox

00:00:02.500 --> 00:00:05.000
brown fox jumps over
the lazy dog
`

const sampleSRT = `1
00:00:01,000 --> 00:00:02,000
hello world

2
00:00:02,000 --> 00:00:03,250
completely different text
`

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00.000"},
		{"millis", 1500 * time.Millisecond, "00:00:01.500"},
		{"hours", time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond, "01:02:03.045"},
		{"negative clamps", -time.Second, "00:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "00:00:01.000 — 00:00:02.000", FormatRange(time.Second, 2*time.Second))
}

func TestReadVTT(t *testing.T) {
	captions, err := Read(strings.NewReader(sampleVTT), FormatVTT)
	require.NoError(t, err)
	require.Len(t, captions, 2)

	assert.Equal(t, time.Duration(0), captions[0].Start)
	assert.Equal(t, 2500*time.Millisecond, captions[0].End)
	assert.Equal(t, "the quick brown fox", captions[0].Text)
	assert.Equal(t, "brown fox jumps over the lazy dog", captions[1].Text)
}

const rollingASRVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.000 align:start position:0%
we are<00:00:00.500><c> going</c><00:00:01.000><c> to</c><00:00:01.500><c> talk</c>

00:00:02.000 --> 00:00:04.000 align:start position:0%
going to talk<00:00:02.500><c> about</c><00:00:03.000><c> weather</c>
`

func TestReadVTTStripsCueMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "rolling asr timestamps and class spans",
			input: rollingASRVTT,
			want:  []string{"we are going to talk", "going to talk about weather"},
		},
		{
			name:  "inline styling keeps words whole",
			input: "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nfish &amp; chips un<i>believ</i>able\n",
			want:  []string{"fish & chips unbelievable"},
		},
		{
			name:  "voice span",
			input: "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n<v Alice>hello  there</v>\n",
			want:  []string{"hello there"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captions, err := Read(strings.NewReader(tt.input), FormatVTT)
			require.NoError(t, err)
			got := make([]string, len(captions))
			for i, c := range captions {
				got[i] = c.Text
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"vtt without header", "this is not a caption file at all\n", FormatVTT},
		{"zero byte vtt", "", FormatVTT},
		{"header lookalike", "WEBVTTX\n\n00:00:00.000 --> 00:00:01.000\nhi\n", FormatVTT},
		{"srt without cues", "this is not a caption file at all\n", FormatSRT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestReadAcceptsBOMAndEmptyBodies(t *testing.T) {
	captions, err := Read(strings.NewReader("\ufeffWEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhi\n"), FormatVTT)
	require.NoError(t, err)
	require.Len(t, captions, 1)
	assert.Equal(t, "hi", captions[0].Text)

	captions, err = Read(strings.NewReader("WEBVTT\n"), FormatVTT)
	require.NoError(t, err)
	assert.Empty(t, captions)

	captions, err = Read(strings.NewReader(""), FormatSRT)
	require.NoError(t, err)
	assert.Empty(t, captions)
}

func TestReadSRTStripsMarkup(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,000\n<i>hello</i> <font color=\"red\">world</font>\n"
	captions, err := Read(strings.NewReader(input), FormatSRT)
	require.NoError(t, err)
	require.Len(t, captions, 1)
	assert.Equal(t, "hello world", captions[0].Text)
}

func TestReadSRT(t *testing.T) {
	captions, err := Read(strings.NewReader(sampleSRT), FormatSRT)
	require.NoError(t, err)
	require.Len(t, captions, 2)

	assert.Equal(t, time.Second, captions[0].Start)
	assert.Equal(t, 3250*time.Millisecond, captions[1].End)
	assert.Equal(t, "completely different text", captions[1].Text)
}

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := Read(strings.NewReader(sampleVTT), Format("ass"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.vtt")
	require.NoError(t, os.WriteFile(path, []byte(sampleVTT), 0644))

	captions, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, captions, 2)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.vtt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatSRT, DetectFormat("a/b/c.SRT"))
	assert.Equal(t, FormatVTT, DetectFormat("talk.vtt"))
	assert.Equal(t, FormatVTT, DetectFormat("noext"))
	assert.True(t, IsCaptionFile("x.vtt"))
	assert.False(t, IsCaptionFile("x.mp4"))
}

func TestCaptionIsEmpty(t *testing.T) {
	assert.True(t, Caption{Text: "  \n "}.IsEmpty())
	assert.False(t, Caption{Text: " hi "}.IsEmpty())
	assert.Equal(t, "hi", Caption{Text: " hi "}.Trimmed())
}
