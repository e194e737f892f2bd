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
package utils

import errors "github.com/go-errors/errors"

var (
	// Returned when a requested item is not present in any of the
	// places it was searched for.
	NotFoundError = errors.New("NotFoundError")

	// The destination of a tree copy already exists. Callers usually
	// treat this as "already deployed".
	AlreadyExistsError = errors.New("AlreadyExistsError")
)
