package processor

import (
	"context"

	"github.com/rex-sheridan/web-transcriptor/internal/segment"
)

// Processor defines the interface for caption conversion operations
type Processor interface {
	Process(ctx context.Context, inputPath, outputPath string) (Result, error)
	Inspect(ctx context.Context, inputPath string) ([]segment.Segment, error)
}
