// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Select returns the result sets whose FileName matches pattern.
// An empty pattern selects everything. Input order is preserved.
func Select(sets []*ParsingResultSet, pattern string) ([]*ParsingResultSet, error) {
	if pattern == "" {
		return sets, nil
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.Wrapf(err, "select %q", pattern)
	}
	var selected []*ParsingResultSet
	for _, set := range sets {
		if g.Match(set.FileName) {
			selected = append(selected, set)
		}
	}
	return selected, nil
}
