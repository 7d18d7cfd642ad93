// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Ingest reads the JSON input from path, or from stdin when path is
// empty, and decodes it. Progress is logged when logger is not nil.
func Ingest(ctx context.Context, path string, stdin io.Reader, logger *slog.Logger) ([]*ParsingResultSet, error) {
	if logger != nil {
		if path == "" {
			logger.Info("reading from stdin")
		} else {
			logger.Info("reading from file", "path", path)
		}
	}
	data, err := ReadInput(ctx, path, stdin)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	if logger != nil {
		logger.Info("starting deserialization", "bytes", len(data))
	}
	sets, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("deserialized", "result_sets", len(sets), "elapsed", time.Since(started))
	}
	return sets, nil
}
