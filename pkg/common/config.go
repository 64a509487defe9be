// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/taxi/pkg/engine"
)

// Config is the contents of taxi's configuration file.
type Config struct {
	// Engine configures the search of every command which picks moves,
	// unless overridden by flags.
	Engine engine.Config `yaml:"engine"`

	// Archive is the directory of the game archive.
	Archive string `yaml:"archive"`

	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	var config Config
	config.Engine = engine.DefaultConfig()
	config.Archive = ArchiveDirectory
	config.Server.Address = ":8080"
	return config
}

// LoadConfig reads the configuration file at the given path. Fields
// missing from the file keep their default values, and a missing file
// yields the default configuration.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Dump writes the configuration to the given path.
func (config Config) Dump(path string) error {
	file, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, file, FilePermissions)
}
