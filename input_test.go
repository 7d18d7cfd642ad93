// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mdhender/trash"
)

// chunkedReader returns one chunk per ReadAll: each chunk is followed
// by io.EOF, like a terminal that has been sent an end-of-file.
type chunkedReader struct {
	chunks []string
	cur    *strings.Reader
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.cur == nil {
		if len(r.chunks) == 0 {
			return 0, io.EOF
		}
		r.cur = strings.NewReader(r.chunks[0])
		r.chunks = r.chunks[1:]
	}
	n, err := r.cur.Read(p)
	if err == io.EOF {
		r.cur = nil
	}
	return n, err
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(" [] \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := trash.ReadInput(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if got := string(data); got != " [] \n" {
		t.Errorf("ReadInput = %q, want file contents unchanged", got)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := trash.ReadInput(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	var ie *trash.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("ReadInput err = %v, want *InputError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadInput err = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestReadInput_StdinRetriesUntilText(t *testing.T) {
	saved := trash.StdinRetryInterval
	trash.StdinRetryInterval = time.Millisecond
	defer func() { trash.StdinRetryInterval = saved }()

	stdin := &chunkedReader{chunks: []string{"", "  \n", " [1] \n"}}
	data, err := trash.ReadInput(context.Background(), "", stdin)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if got := string(data); got != "[1]" {
		t.Errorf("ReadInput = %q, want %q", got, "[1]")
	}
}

func TestReadInput_StdinCanceled(t *testing.T) {
	saved := trash.StdinRetryInterval
	trash.StdinRetryInterval = time.Millisecond
	defer func() { trash.StdinRetryInterval = saved }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := trash.ReadInput(ctx, "", strings.NewReader(""))
	var ie *trash.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("ReadInput err = %v, want *InputError", err)
	}
}

func TestIngest(t *testing.T) {
	sets, err := trash.Ingest(context.Background(), "", strings.NewReader(sampleJSON), nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("len(sets) = %d, want 2", len(sets))
	}
}
