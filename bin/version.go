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
package main

import (
	"fmt"
	"runtime/debug"

	"github.com/Velocidex/yaml/v2"
	"github.com/alecthomas/kingpin/v2"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/reporting"
)

var (
	version = app.Command("version",
		"Report the version, the fragment extension and the bundled assets.")
)

type versionReport struct {
	config.Version `yaml:",inline"`

	// What the parsers must name their fragments with the current
	// config.
	FragmentExtension string `yaml:"fragment_extension"`

	// Everything copied into _elements/ next to the pages.
	Assets []string `yaml:"assets"`
}

func getVersionReport(config_obj *config.Config) *versionReport {
	result := &versionReport{
		Version:           *config.GetVersion(),
		FragmentExtension: config_obj.Report.FragmentExtension,
	}

	for _, entry := range reporting.AssetManifest {
		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		result.Assets = append(result.Assets, name)
	}
	return result
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == version.FullCommand() {
			config_obj, err := config.LoadConfig(*config_path)
			kingpin.FatalIfError(err, "Unable to load config file")

			res, err := yaml.Marshal(getVersionReport(config_obj))
			kingpin.FatalIfError(err, "Unable to encode version.")

			fmt.Printf("%v", string(res))

			if *verbose_flag {
				info, ok := debug.ReadBuildInfo()
				if ok {
					fmt.Printf("\n\nBuild Info:\n%v\n", info)
				}
			}

			return true
		}
		return false
	})
}
