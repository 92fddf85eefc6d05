// Package punctuation restores sentence punctuation and capitalization in
// transcript segments, either locally or through an external model.
package punctuation

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the configured restoration backend cannot be
// constructed. Conversions that require it must abort.
var ErrUnavailable = errors.New("punctuation restoration unavailable")

// Restorer returns text with punctuation and capitalization restored. Each
// call is independent; no context is carried between segments.
type Restorer interface {
	Restore(ctx context.Context, text string) (string, error)
	Close() error
}
