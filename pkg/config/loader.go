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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = ".retheme.hcl"

// 🎯 Load reads, parses and validates the configuration at path.
// The format comes from the file extension; a bare .retheme file is tried
// as YAML first and HCL second.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *Config
	if filepath.Base(path) == ".retheme" {
		cfg, err = (&YAMLParser{}).Parse(ctx, path, data)
		if err != nil {
			logger.Debug().Err(err).Msg("not YAML, trying HCL")
			cfg, err = (&HCLParser{}).Parse(ctx, path, data)
		}
		if err != nil {
			return nil, errors.Errorf("parsing .retheme as YAML or HCL: %w", err)
		}
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}
		cfg, err = p.Parse(ctx, path, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return cfg, nil
}
