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
package json

import (
	"testing"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictKeepsOrder(t *testing.T) {
	dict := ordereddict.NewDict().
		Set("Zebra", 1).
		Set("Alpha", "two").
		Set("Nested", ordereddict.NewDict().Set("B", true).Set("A", nil))

	assert.Equal(t,
		`{"Zebra":1,"Alpha":"two","Nested":{"B":true,"A":null}}`,
		MustMarshalString(dict))

	assert.Equal(t, `{}`, MustMarshalString(ordereddict.NewDict()))
}

func TestDuration(t *testing.T) {
	dict := ordereddict.NewDict().Set("Elapsed", 65*time.Second)
	assert.Equal(t, `{"Elapsed":"1m5s"}`, MustMarshalString(dict))
}

func TestMarshalIndent(t *testing.T) {
	serialized, err := MarshalIndent(ordereddict.NewDict().Set("A", 1))
	require.NoError(t, err)
	assert.Equal(t, "{\n \"A\": 1\n}", string(serialized))

	data := make(map[string]interface{})
	require.NoError(t, Unmarshal(serialized, &data))
	assert.Equal(t, float64(1), data["A"])
}

func TestJsonFormat(t *testing.T) {
	obj := ordereddict.NewDict().Set("Foo", "Bar")
	subquery := Format(`{"Foo": %q}`, "Bar")

	assert.Equal(t, `{"Foo": "Bar"}`, subquery)

	query := Format(`{"a": %q, "integer": %d, "string": %q, "subquery": %s}`,
		obj, 1, "he said \"hi\"", subquery)
	assert.Equal(t,
		`{"a": {"Foo":"Bar"}, "integer": 1, "string": "he said \"hi\"", "subquery": {"Foo": "Bar"}}`,
		query)

	// Missing arguments are dropped, trailing % is kept.
	assert.Equal(t, `{"a": }%`, Format(`{"a": %q}%`))
}
