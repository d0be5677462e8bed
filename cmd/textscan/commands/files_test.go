package commands

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textscan/pkg/config"
)

func TestResolveFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644), "writing fixture")
	}

	t.Run("positional_paths_kept", func(t *testing.T) {
		files, err := resolveFiles([]string{"one", "two"}, nil, nil)
		require.NoError(t, err, "resolving files")
		assert.Equal(t, []string{"one", "two"}, files, "positional paths")
	})

	t.Run("glob_expansion", func(t *testing.T) {
		files, err := resolveFiles(nil, []string{filepath.Join(dir, "*.txt")}, nil)
		require.NoError(t, err, "resolving files")
		assert.Len(t, files, 2, "txt files matched")
	})

	t.Run("ignore_patterns_drop_files", func(t *testing.T) {
		files, err := resolveFiles([]string{"keep.go", "vendor/drop.go"}, nil, []string{"vendor/**"})
		require.NoError(t, err, "resolving files")
		assert.Equal(t, []string{"keep.go"}, files, "vendored file dropped")
	})

	t.Run("bad_ignore_pattern", func(t *testing.T) {
		_, err := resolveFiles([]string{"a"}, nil, []string{"[\\"})
		require.Error(t, err, "malformed pattern should fail")
	})
}

func TestForEachFile(t *testing.T) {
	var calls atomic.Int32

	err := forEachFile(context.Background(), []string{"a", "b", "c"}, 2, func(path string) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, err, "running files")
	assert.Equal(t, int32(3), calls.Load(), "every file visited")
}

func TestMergeScanOptions(t *testing.T) {
	profile := &config.Profile{
		Search: config.Search{
			Keywords:      []string{"foo"},
			CaseSensitive: true,
			WholeWord:     true,
			MaxMatches:    7,
		},
	}

	t.Run("profile_supplies_defaults", func(t *testing.T) {
		cmd := NewFindCmd(testRootOpts(t))
		require.NoError(t, cmd.Flags().Parse(nil), "parsing flags")

		got := mergeScanOptions(cmd, profile, false, false, false, 0)
		assert.True(t, got.CaseSensitive, "profile case sensitivity")
		assert.True(t, got.WholeWord, "profile whole word")
		assert.Equal(t, 7, got.MaxMatches, "profile max matches")
	})

	t.Run("explicit_flags_override_profile", func(t *testing.T) {
		cmd := NewFindCmd(testRootOpts(t))
		require.NoError(t, cmd.Flags().Parse([]string{"--word=false", "--max", "3"}), "parsing flags")

		got := mergeScanOptions(cmd, profile, false, false, false, 3)
		assert.False(t, got.WholeWord, "flag wins over profile")
		assert.Equal(t, 3, got.MaxMatches, "flag wins over profile")
	})

	t.Run("no_profile_uses_flags", func(t *testing.T) {
		cmd := NewFindCmd(testRootOpts(t))
		require.NoError(t, cmd.Flags().Parse(nil), "parsing flags")

		got := mergeScanOptions(cmd, nil, true, false, true, 0)
		assert.False(t, got.CaseSensitive, "ignore-case inverts")
		assert.True(t, got.Regex, "regex flag")
	})
}
