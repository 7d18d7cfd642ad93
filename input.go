// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// StdinRetryInterval paces the reads of an empty stdin.
var StdinRetryInterval = 100 * time.Millisecond

// ReadInput returns the JSON text to decode.
//
// When path is set the file is read as is. Otherwise stdin is read until
// it yields something other than white space; an empty read is retried,
// not treated as a failure. Stdin text is trimmed. Waiting stops when
// ctx is done.
func ReadInput(ctx context.Context, path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &InputError{Path: path, Err: err}
		}
		return data, nil
	}

	limiter := rate.NewLimiter(rate.Every(StdinRetryInterval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, &InputError{Err: err}
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &InputError{Err: err}
		}
		if data = bytes.TrimSpace(data); len(data) != 0 {
			return data, nil
		}
	}
}
