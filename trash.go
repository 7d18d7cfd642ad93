// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package trash reads generic parse trees and reconstructs, annotates
// and locates the source text they were built from.
package trash

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
