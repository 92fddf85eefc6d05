package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// writeOutput writes data next to outputPath and renames it into place so a
// failed run never leaves a truncated transcript behind.
func (p *implProcessor) writeOutput(ctx context.Context, outputPath string, data []byte) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer p.cleanupTempFile(ctx, tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		// If rename fails, copy instead
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("move output to final location: %w", err)
		}
	}
	return nil
}

// cleanupTempFile removes a temporary file if it still exists
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		}
		return
	}
	p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
}
