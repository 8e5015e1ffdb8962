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
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule is one ordered substitution: a regular expression and its
// replacement text. Rules apply in list order, each to the output of the
// previous one, so earlier rules feed later ones.
type Rule struct {
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replace string `json:"replace" yaml:"replace" hcl:"replace,optional"`
}

// 📚 Config describes one migration run: which tree to walk, which files to
// touch, and the ordered rule list to apply to each of them.
type Config struct {
	Root           string   `json:"root" yaml:"root" hcl:"root,optional"`
	Suffix         string   `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Rules          []Rule   `json:"rules" yaml:"rules" hcl:"rule,block"`
}

// DefaultSuffix is the filename filter used when a config names none.
const DefaultSuffix = ".rs"

// 🔍 Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	for i, r := range cfg.Rules {
		// An empty replacement is legal: it deletes the match.
		if r.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
	}

	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
	if cfg.Root != "" {
		cfg.Root = filepath.Clean(cfg.Root)
	}

	return nil
}

// 🏭 Default returns the built-in frame-data migration: rename the old
// video_data field, drop the retired optional fields, and wrap bare frame
// payloads in their render-data variant. Root is left empty for the caller
// to supply.
func Default() *Config {
	return &Config{
		Suffix: DefaultSuffix,
		Rules: []Rule{
			{Pattern: `video_data:`, Replace: `render_data:`},
			{Pattern: `tally_data:\s*None,`, Replace: ``},
			{Pattern: `scene3d_data:\s*None,`, Replace: ``},
			{Pattern: `spatial_audio_data:\s*None,`, Replace: ``},
			{Pattern: `transform_data:\s*None,`, Replace: `control_data: None,`},
			{Pattern: `Some\(frame\)`, Replace: `Some(RenderData::Raster2D(frame))`},
			{Pattern: `Some\(video_frame\)`, Replace: `Some(RenderData::Raster2D(video_frame))`},
			{Pattern: `Some\(frame_data\)`, Replace: `Some(RenderData::Raster2D(frame_data))`},
		},
	}
}
