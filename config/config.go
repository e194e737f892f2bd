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
	"www.velocidex.com/golang/artifact_report/constants"
)

// Embed build time constants into here for reporting the version.
var (
	build_time  string
	commit_hash string
)

type Version struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	BuildTime string `yaml:"build_time,omitempty"`
	Commit    string `yaml:"commit,omitempty"`
}

func GetVersion() *Version {
	return &Version{
		Name:      constants.NAME,
		Version:   constants.VERSION,
		BuildTime: build_time,
		Commit:    commit_hash,
	}
}

type ReportConfig struct {
	// Shown in the page title and the sidebar brand.
	Title string `yaml:"title,omitempty"`
	Brand string `yaml:"brand,omitempty"`

	// Markdown rendered at the top and bottom of the index page.
	Heading     string `yaml:"heading,omitempty"`
	Description string `yaml:"description,omitempty"`
	Note        string `yaml:"note,omitempty"`

	FragmentExtension string `yaml:"fragment_extension,omitempty"`

	// A file containing an alternative page shell. It must contain
	// the slot tokens (at least the navigation placeholder).
	PageShellFile string `yaml:"page_shell_file,omitempty"`

	// Case data is html escaped unless this is explicitly set to
	// false - in that case values are sanitized instead.
	EscapeCaseData *bool `yaml:"escape_case_data,omitempty"`
}

func (self *ReportConfig) ShouldEscapeCaseData() bool {
	return self.EscapeCaseData == nil || *self.EscapeCaseData
}

type AssetsConfig struct {
	// A directory on disk holding the static assets. Entries missing
	// here are taken from the embedded bundle.
	Directory string `yaml:"directory,omitempty"`
}

type LoggingConfig struct {
	Filename string `yaml:"filename,omitempty"`
	Level    string `yaml:"level,omitempty"`
}

type Contributor struct {
	Name       string `yaml:"name"`
	Homepage   string `yaml:"homepage,omitempty"`
	Twitter    string `yaml:"twitter,omitempty"`
	Repository string `yaml:"repository,omitempty"`
}

type Config struct {
	Report       *ReportConfig  `yaml:"report,omitempty"`
	Assets       *AssetsConfig  `yaml:"assets,omitempty"`
	Logging      *LoggingConfig `yaml:"logging,omitempty"`
	Contributors []*Contributor `yaml:"contributors,omitempty"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Report: &ReportConfig{
			Title:   "Artifact Report",
			Brand:   "Artifact Report " + constants.VERSION,
			Heading: "Logs Events And Protobuf Parser",
			Description: "An open source project that aims to parse every " +
				"known mobile artifact for the purpose of forensic analysis.",
			Note:              "All dates and times are in UTC unless noted otherwise!",
			FragmentExtension: constants.FRAGMENT_EXTENSION,
		},
		Assets:  &AssetsConfig{},
		Logging: &LoggingConfig{Level: "info"},
		Contributors: []*Contributor{
			{
				Name:       "Alexis Brignoni",
				Homepage:   "https://abrignoni.com",
				Twitter:    "AlexisBrignoni",
				Repository: "https://github.com/abrignoni",
			},
			{
				Name:       "Yogesh Khatri",
				Homepage:   "https://swiftforensics.com",
				Twitter:    "SwiftForensics",
				Repository: "https://github.com/ydkhatri",
			},
		},
	}
}
