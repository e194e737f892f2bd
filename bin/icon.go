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

	"www.velocidex.com/golang/artifact_report/reporting"
)

var (
	icon_command = app.Command("icon",
		"Show the sidebar icon chosen for an artifact.")

	icon_command_category = icon_command.Arg(
		"category", "The artifact category (directory name).").
		Required().String()

	icon_command_artifact = icon_command.Arg(
		"artifact", "The artifact name.").Required().String()
)

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case icon_command.FullCommand():
			fmt.Println(reporting.ResolveIcon(
				*icon_command_category, *icon_command_artifact))

		default:
			return false
		}
		return true
	})
}
