// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package opts holds the shared dependencies the textscan commands run with.
package opts

import (
	"io"

	"github.com/walteh/textscan/pkg/config"
	"github.com/walteh/textscan/pkg/report"
)

// RootOpts carries the state shared by all commands
type RootOpts struct {
	Profile  *config.Profile // Loaded search profile, nil when --profile is not set
	Reporter *report.Logger  // Per-file result and summary output
	Out      io.Writer       // Match output (stdout unless redirected in tests)
	Globs    []string        // Doublestar globs selecting files to scan
	Ignore   []string        // Doublestar globs excluding files
	Jobs     int             // Parallel file scans
}
