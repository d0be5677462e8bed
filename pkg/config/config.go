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

// Package config loads search profiles: reusable keyword sets, match flags
// and file selection globs, stored as HCL, YAML or JSON.
package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for profile parsers
type Parser interface {
	// 📝 Parse parses the profile from bytes
	Parse(ctx context.Context, data []byte) (*Profile, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔍 Search holds the keyword sets and match flags of a profile
type Search struct {
	Keywords      []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`             // Include keywords (AND in line mode)
	Exclude       []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`               // Exclude keywords (any one vetoes a line)
	CaseSensitive bool     `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty"` // Match case exactly
	WholeWord     bool     `json:"whole_word,omitempty" yaml:"whole_word,omitempty"`         // Require word boundaries
	Regex         bool     `json:"regex,omitempty" yaml:"regex,omitempty"`                   // Treat the keyword as a regular expression
	MaxMatches    int      `json:"max_matches,omitempty" yaml:"max_matches,omitempty"`       // Result cap, 0 means unlimited
	Replace       *string  `json:"replace,omitempty" yaml:"replace,omitempty"`               // Optional replacement text
}

// 📚 Profile represents a complete search profile
type Profile struct {
	Search Search   `json:"search" yaml:"search"`
	Files  []string `json:"files,omitempty" yaml:"files,omitempty"`   // Doublestar globs selecting files to scan
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"` // Doublestar globs excluding files
}

// 🔍 Validate checks if the profile is valid
func (p *Profile) Validate() error {
	if len(p.Search.Keywords) == 0 && len(p.Search.Exclude) == 0 {
		return errors.Errorf("search.keywords or search.exclude is required")
	}
	if p.Search.MaxMatches < 0 {
		return errors.Errorf("search.max_matches must not be negative")
	}
	for i, g := range p.Files {
		if g == "" {
			return errors.Errorf("files[%d]: glob must not be empty", i)
		}
	}
	for i, g := range p.Ignore {
		if g == "" {
			return errors.Errorf("ignore[%d]: glob must not be empty", i)
		}
	}
	return nil
}

// 🎯 Load loads a search profile from a file
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading search profile")

	// Read profile file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading profile file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse profile
	profile, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing profile: %w", err)
	}

	// Validate
	if err := profile.Validate(); err != nil {
		return nil, errors.Errorf("validating profile: %w", err)
	}

	logger.Debug().
		Int("keywords", len(profile.Search.Keywords)).
		Int("excludes", len(profile.Search.Exclude)).
		Msg("profile loaded")

	return profile, nil
}
