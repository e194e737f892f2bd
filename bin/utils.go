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
	"strings"

	"github.com/Velocidex/ordereddict"
	errors "github.com/go-errors/errors"
)

// Parses KEY=VALUE pairs keeping the order they were given in. Later
// values for the same key replace earlier ones.
func parseCaseFields(fields []string) (*ordereddict.Dict, error) {
	result := ordereddict.NewDict()
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf(
				"case information must be KEY=VALUE, got %q", field)
		}
		result.Set(key, strings.TrimSpace(value))
	}
	return result, nil
}
