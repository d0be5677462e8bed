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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textscan/cmd/textscan/commands"
	"github.com/walteh/textscan/cmd/textscan/opts"
	"github.com/walteh/textscan/pkg/config"
	"github.com/walteh/textscan/pkg/report"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	profileFile string
	globs       []string
	ignore      []string
	jobs        int
	debug       bool
)

// NewRootCmd creates the textscan root command
func NewRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "textscan",
		Short: "Find and replace keywords in text files",
		Long: `textscan searches files (or stdin) for keywords with literal, whole-word
or regular-expression matching, filters lines by include/exclude keyword
sets, and rewrites matches with offset-safe replacement.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set up logger
			logLevel := zerolog.InfoLevel
			if debug {
				logLevel = zerolog.DebugLevel
			}
			logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))

			// Load profile if requested
			if profileFile != "" {
				profile, err := config.Load(cmd.Context(), profileFile)
				if err != nil {
					return errors.Errorf("loading profile: %w", err)
				}
				o.Profile = profile
			}

			o.Reporter = report.New(cmd.OutOrStdout(), logLevel)
			o.Out = cmd.OutOrStdout()
			o.Globs = globs
			o.Ignore = ignore
			o.Jobs = jobs
			return nil
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(commands.NewFindCmd(o))
	cmd.AddCommand(commands.NewLinesCmd(o))
	cmd.AddCommand(commands.NewReplaceCmd(o))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&profileFile, "profile", "p", "", "search profile file (.hcl, .yaml or .json)")
	cmd.PersistentFlags().StringArrayVar(&globs, "glob", nil, "doublestar glob selecting files to scan (repeatable)")
	cmd.PersistentFlags().StringArrayVar(&ignore, "ignore", nil, "doublestar glob excluding files (repeatable)")
	cmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 4, "number of files scanned in parallel")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}
