// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"seehuhn.de/go/tikz/internal/logger"
)

// FileName is the name of the config file.
const FileName = "tikz.toml"

// EnvPrefix is the prefix of environment variables which override
// settings.  For example, TIKZ_RENDER_FILE_DPI sets render.file_dpi.
const EnvPrefix = "TIKZ"

// Load reads the configuration.  If path is empty, the file is searched
// for using [FindFile]; a missing file is not an error.  Environment
// variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path == "" {
		path = FindFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		logger.Debugw("config file loaded", "file", path)
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes the configuration from a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &c, nil
}

// LoadFromFile reads the configuration from a specific file.  Environment
// variables are not consulted.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	c, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return c, nil
}

// FindFile returns the config file which is used if no file is given
// explicitly, or the empty string if there is none.  The current directory
// is searched first, then the user configuration directory.
func FindFile() string {
	var candidates []string
	if dir, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}
	if dir := UserDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// UserDir returns the per-user configuration directory, or the empty
// string if it cannot be determined.
func UserDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tikz")
}
