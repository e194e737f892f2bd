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
package vtesting

import (
	"regexp"

	"github.com/stretchr/testify/assert"
	"www.velocidex.com/golang/artifact_report/logging"
)

func MemoryLogsContain(t assert.TestingT, regex string, msgAndArgs ...interface{}) {
	if !MemoryLogsContainRegex(regex) {
		t.Errorf("Unable to find '%v' in memory logs %v", regex, msgAndArgs)
	}
}

func MemoryLogsDoNotContain(t assert.TestingT, regex string, msgAndArgs ...interface{}) {
	if MemoryLogsContainRegex(regex) {
		t.Errorf("Unexpected '%v' in memory logs %v", regex, msgAndArgs)
	}
}

func MemoryLogsContainRegex(regex string) bool {
	re := regexp.MustCompile(regex)

	for _, line := range logging.GetMemoryLogs() {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
