// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ReadFileFunc loads the original source named by a result set.
type ReadFileFunc func(path string) ([]byte, error)

// ReadSource reads the original source of a result set.
// A nil readFile means os.ReadFile.
func ReadSource(set *ParsingResultSet, readFile ReadFileFunc) ([]byte, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}
	src, err := readFile(set.FileName)
	if err != nil {
		return nil, &SourceFileMissingError{Path: set.FileName, Err: err}
	}
	return src, nil
}

// CaretReport prints, for every result set in order, the source lines
// and caret lines for each of its nodes. File names are printed as
// headers when there is more than one result set.
//
// The first failure stops the report. Output already written for
// earlier result sets stays written.
func CaretReport(w io.Writer, sets []*ParsingResultSet, readFile ReadFileFunc, logger *slog.Logger) error {
	moreThanOne := len(sets) > 1
	for _, set := range sets {
		if moreThanOne {
			if _, err := fmt.Fprintf(w, "%s:\n", set.FileName); err != nil {
				return err
			}
		}
		src, err := ReadSource(set, readFile)
		if err != nil {
			return err
		}
		var options []AnnotateOption
		if logger != nil {
			options = append(options, WithLogger(logger.With("file", set.FileName)))
		}
		if err := Annotate(w, src, set.Nodes, options...); err != nil {
			return err
		}
	}
	return nil
}

// TextReport prints the reconstructed text of every root node.
func TextReport(w io.Writer, sets []*ParsingResultSet) error {
	for _, set := range sets {
		for _, root := range set.Nodes {
			if err := ReconstructTo(w, root); err != nil {
				return err
			}
		}
	}
	return nil
}
