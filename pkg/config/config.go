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

// Package config loads the user's connect4 configuration, a YAML file kept
// under the XDG config home.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/connect4/pkg/board"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// Config is the user's configuration.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Players Players `yaml:"players"`

	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log-level"`
}

// Players are the default names shown for each colour.
type Players struct {
	Yellow string `yaml:"yellow"`
	Red    string `yaml:"red"`
}

// Path returns the default location of the config file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "connect4", "config.yaml")
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Width:  board.DefaultWidth,
		Height: board.DefaultHeight,

		Players: Players{
			Yellow: "Yellow",
			Red:    "Red",
		},

		Color:    true,
		LogLevel: "info",
	}
}

// Load reads the config file at the given path, or at Path if it is empty.
// Fields missing from the file keep their default values, and a missing
// file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}

	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config, nil
	case err != nil:
		return config, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("config: %s: %w", path, err)
	}

	return config, config.Validate()
}

// Validate reports whether the configuration can be used.
func (config Config) Validate() error {
	if config.Width <= 0 || config.Height <= 0 ||
		config.Width > board.MaxSize || config.Height > board.MaxSize {
		return fmt.Errorf(
			"%w: board size %dx%d, each side must be 1 to %d",
			ErrInvalid, config.Width, config.Height, board.MaxSize,
		)
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}

	return nil
}

// Level returns the configured log level, defaulting to Info.
func (config Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// BoardOptions returns the options for creating a board of the
// configured size.
func (config Config) BoardOptions() []board.Option {
	return []board.Option{board.WithSize(config.Width, config.Height)}
}
