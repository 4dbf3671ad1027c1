// Package logging directs the standard logger to a rotating file or a fallback writer
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "block-outrun.log"

	// maxLogSize triggers rotation of an existing log at startup
	maxLogSize = 10 * 1024 * 1024

	rotatedTimeFormat = "20060102-150405"
)

// Setup points the standard logger at dir/block-outrun.log when enabled,
// otherwise at fallback. The returned file is nil unless a log file was opened;
// on error the logger is left on fallback
func Setup(enabled bool, dir string, fallback io.Writer) (*os.File, error) {
	if fallback == nil {
		fallback = io.Discard
	}
	log.SetOutput(fallback)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if !enabled {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path, time.Now()); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.Printf("log: started pid=%d", os.Getpid())
	return f, nil
}

// rotate renames path aside with a timestamp once it exceeds maxLogSize
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], now.Format(rotatedTimeFormat), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
