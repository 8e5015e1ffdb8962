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

package rewrite

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Rewriter walks a tree and applies an ordered rule set to every file
// matching the suffix filter, rewriting changed files in place.
type Rewriter struct {
	cfg      *config.Config
	rules    *RuleSet
	reporter status.Reporter
}

// 🏭 New compiles the config's rules and returns a ready Rewriter.
func New(cfg *config.Config, reporter status.Reporter) (*Rewriter, error) {
	rules, err := CompileRules(cfg.Rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}
	return &Rewriter{
		cfg:      cfg,
		rules:    rules,
		reporter: reporter,
	}, nil
}

// 🏃 Run traverses the tree rooted at root, fully sequentially. Any read,
// write, or traversal error aborts the whole run: files not yet visited are
// left untouched and the error propagates to the caller.
func (rw *Rewriter) Run(ctx context.Context, root string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Int("rules", rw.rules.Len()).Msg("starting migration pass")

	summary := status.Summary{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), rw.cfg.Suffix) {
			return nil
		}
		if rw.shouldIgnore(ctx, root, path) {
			return nil
		}

		summary.FilesScanned++

		fixed, count, err := rw.processFile(ctx, path, d)
		if err != nil {
			return err
		}
		if fixed {
			summary.FilesFixed++
			summary.Replacements += count
			rw.reporter.FileFixed(path, count)
		}
		return nil
	})
	if err != nil {
		return err
	}

	rw.reporter.Finish(summary)
	return nil
}

// 📄 processFile reads one file, applies the rule set, and writes the file
// back only if the transformed content differs byte for byte.
func (rw *Rewriter) processFile(ctx context.Context, path string, d fs.DirEntry) (bool, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, 0, errors.Errorf("reading file %s: %w", path, err)
	}

	result := rw.rules.Apply(content)
	if !result.WasModified {
		return false, 0, nil
	}

	info, err := d.Info()
	if err != nil {
		return false, 0, errors.Errorf("stating file %s: %w", path, err)
	}

	// Full truncate-and-write, preserving the file's permission bits.
	if err := os.WriteFile(path, result.Modified, info.Mode().Perm()); err != nil {
		return false, 0, errors.Errorf("writing file %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Int("replacements", result.ReplacementCount).
		Msg("rewrote file")

	return true, result.ReplacementCount, nil
}

// 🔍 shouldIgnore checks the path, relative to root, against the ignore globs.
func (rw *Rewriter) shouldIgnore(ctx context.Context, root, path string) bool {
	if len(rw.cfg.IgnorePatterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range rw.cfg.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}
