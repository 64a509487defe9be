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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is where taxi looks for its configuration.
	Directory = filepath.Join(xdg.ConfigHome, "taxi")

	// DataDirectory is where taxi keeps its persistent data.
	DataDirectory = filepath.Join(xdg.DataHome, "taxi")

	// ConfigFile is the default path of the configuration file.
	ConfigFile = filepath.Join(Directory, "config.yaml")

	// ArchiveDirectory is the default location of the game archive.
	ArchiveDirectory = filepath.Join(DataDirectory, "games")
)

// TryMkdir creates the given directory, along with its parents, if it
// does not exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes data to the given file if it does not exist yet.
func TryCreate(file string, data []byte) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(file, data, FilePermissions)
	}

	return nil
}

// EnsureDirectories creates taxi's configuration and data directories.
func EnsureDirectories() error {
	for _, dir := range []string{Directory, DataDirectory} {
		if err := TryMkdir(dir); err != nil {
			return err
		}
	}

	return nil
}
