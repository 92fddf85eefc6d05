package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rex-sheridan/web-transcriptor/internal/punctuation"
	"github.com/rex-sheridan/web-transcriptor/internal/segment"
)

// punctuate restores each segment's text in place. The first failure aborts
// the run.
func (p *implProcessor) punctuate(ctx context.Context, restorer punctuation.Restorer, segments []segment.Segment) error {
	for i := range segments {
		if strings.TrimSpace(segments[i].Text) == "" {
			continue
		}
		text, err := restorer.Restore(ctx, segments[i].Text)
		if err != nil {
			return fmt.Errorf("restore punctuation for segment %d (%s): %w", i+1, segments[i].Range(), err)
		}
		segments[i].Text = text
	}
	p.logger.Debug(ctx, "Restored punctuation for %d segments", len(segments))
	return nil
}
