/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package config

import (
	"os"
	"strings"

	"github.com/Velocidex/yaml/v2"
	errors "github.com/go-errors/errors"
)

var (
	invalidFragmentExtension = errors.New(
		"report.fragment_extension must start with a '.' and may not be .html")
)

// LoadConfig reads the YAML file at filename over the default
// config. An empty filename just returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return ParseConfigFromString(data)
}

func ParseConfigFromString(data []byte) (*Config, error) {
	config_obj := &Config{}
	err := yaml.UnmarshalStrict(data, config_obj)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	mergeDefaults(config_obj)

	err = ValidateConfig(config_obj)
	if err != nil {
		return nil, err
	}
	return config_obj, nil
}

// Fill in anything the user did not set.
func mergeDefaults(config_obj *Config) {
	defaults := GetDefaultConfig()

	if config_obj.Report == nil {
		config_obj.Report = defaults.Report
	} else {
		report := config_obj.Report
		if report.Title == "" {
			report.Title = defaults.Report.Title
		}
		if report.Brand == "" {
			report.Brand = defaults.Report.Brand
		}
		if report.Heading == "" {
			report.Heading = defaults.Report.Heading
		}
		if report.Description == "" {
			report.Description = defaults.Report.Description
		}
		if report.Note == "" {
			report.Note = defaults.Report.Note
		}
		if report.FragmentExtension == "" {
			report.FragmentExtension = defaults.Report.FragmentExtension
		}
	}

	if config_obj.Assets == nil {
		config_obj.Assets = defaults.Assets
	}

	if config_obj.Logging == nil {
		config_obj.Logging = defaults.Logging
	}

	// An explicitly empty list is not distinguishable from a missing
	// one in YAML so an empty list always means the defaults.
	if len(config_obj.Contributors) == 0 {
		config_obj.Contributors = defaults.Contributors
	}
}

func ValidateConfig(config_obj *Config) error {
	ext := config_obj.Report.FragmentExtension
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 ||
		strings.EqualFold(ext, ".html") {
		return invalidFragmentExtension
	}

	for idx, c := range config_obj.Contributors {
		if c == nil || strings.TrimSpace(c.Name) == "" {
			return errors.Errorf("contributors[%d]: name is required", idx)
		}
	}

	if config_obj.Report.PageShellFile != "" {
		_, err := os.Stat(config_obj.Report.PageShellFile)
		if err != nil {
			return errors.Wrap(err, 0)
		}
	}

	return nil
}
