package processor

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rex-sheridan/web-transcriptor/internal/caption"
	"github.com/rex-sheridan/web-transcriptor/internal/config"
	"github.com/rex-sheridan/web-transcriptor/internal/render"
	"github.com/rex-sheridan/web-transcriptor/internal/segment"
)

// Result summarizes one conversion run.
type Result struct {
	Input    string
	Output   string
	Mode     string
	Captions int
	Segments int
	Duration time.Duration
}

// Process converts one caption file into a transcript document. Nothing is
// written unless every step succeeds.
func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string) (Result, error) {
	startTime := time.Now()
	res := Result{Input: inputPath, Output: outputPath, Mode: p.cfg.Processing.Mode}

	p.logger.Info(ctx, "Starting conversion (%s mode): %s", res.Mode, inputPath)

	renderer, err := render.New(p.outputFormat(outputPath))
	if err != nil {
		return res, fmt.Errorf("select renderer: %w", err)
	}

	var segments []segment.Segment
	variant := render.VariantFull

	switch res.Mode {
	case config.ModeMinimal:
		captions, err := p.readCaptions(ctx, inputPath)
		if err != nil {
			return res, err
		}
		res.Captions = len(captions)
		segments = segment.FromCaptions(captions)
		variant = render.VariantMinimal

	default:
		// Build the restorer first so a missing capability fails before any work.
		restorer, err := p.newRestorer(ctx)
		if err != nil {
			return res, fmt.Errorf("init punctuation: %w", err)
		}
		defer func() {
			if err := restorer.Close(); err != nil {
				p.logger.Warn(ctx, "Failed to release punctuation backend: %v", err)
			}
		}()

		captions, err := p.readCaptions(ctx, inputPath)
		if err != nil {
			return res, err
		}
		res.Captions = len(captions)

		segments = p.buildSegments(ctx, captions)
		if err := p.punctuate(ctx, restorer, segments); err != nil {
			return res, err
		}
	}
	res.Segments = len(segments)

	var buf bytes.Buffer
	doc := render.Document{
		Title:    p.cfg.Processing.Title,
		Variant:  variant,
		Segments: segments,
	}
	if err := renderer.Render(&buf, doc); err != nil {
		return res, fmt.Errorf("render transcript: %w", err)
	}

	if err := p.writeOutput(ctx, outputPath, buf.Bytes()); err != nil {
		return res, fmt.Errorf("write transcript: %w", err)
	}

	res.Duration = time.Since(startTime)
	p.logger.Info(ctx, "Conversion completed: %s (%d captions -> %d segments, %s)",
		outputPath, res.Captions, res.Segments, res.Duration)
	return res, nil
}

// Inspect runs the merge and refine steps without punctuation or rendering.
func (p *implProcessor) Inspect(ctx context.Context, inputPath string) ([]segment.Segment, error) {
	captions, err := p.readCaptions(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	return p.buildSegments(ctx, captions), nil
}

func (p *implProcessor) readCaptions(ctx context.Context, inputPath string) ([]caption.Caption, error) {
	captions, err := caption.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}
	p.logger.Debug(ctx, "Read %d captions from %s", len(captions), inputPath)
	return captions, nil
}

func (p *implProcessor) buildSegments(ctx context.Context, captions []caption.Caption) []segment.Segment {
	merged := segment.Merge(captions, p.cfg.Processing.MinOverlapWords)
	refined := segment.Refine(merged, p.cfg.Processing.MinWords)
	p.logger.Debug(ctx, "Merged %d captions into %d segments, %d after refinement",
		len(captions), len(merged), len(refined))
	return refined
}

func (p *implProcessor) outputFormat(outputPath string) string {
	if f := strings.TrimSpace(p.cfg.Processing.Format); f != "" {
		return f
	}
	return render.FormatFromPath(outputPath)
}

// OutputPath maps a caption file to its transcript path inside dir.
func OutputPath(inputPath, dir, format string) (string, error) {
	r, err := render.New(format)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, base+r.Extension()), nil
}
