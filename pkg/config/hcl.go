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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the profile from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Profile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "profile.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclProfile struct {
		Search struct {
			Keywords      []string `hcl:"keywords,optional"`
			Exclude       []string `hcl:"exclude,optional"`
			CaseSensitive bool     `hcl:"case_sensitive,optional"`
			WholeWord     bool     `hcl:"whole_word,optional"`
			Regex         bool     `hcl:"regex,optional"`
			MaxMatches    int      `hcl:"max_matches,optional"`
			Replace       *string  `hcl:"replace,optional"`
		} `hcl:"search,block"`
		Files  []string `hcl:"files,optional"`
		Ignore []string `hcl:"ignore,optional"`
	}

	// Decode HCL
	var hclProf hclProfile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclProf)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	return &Profile{
		Search: Search{
			Keywords:      hclProf.Search.Keywords,
			Exclude:       hclProf.Search.Exclude,
			CaseSensitive: hclProf.Search.CaseSensitive,
			WholeWord:     hclProf.Search.WholeWord,
			Regex:         hclProf.Search.Regex,
			MaxMatches:    hclProf.Search.MaxMatches,
			Replace:       hclProf.Search.Replace,
		},
		Files:  hclProf.Files,
		Ignore: hclProf.Ignore,
	}, nil
}
