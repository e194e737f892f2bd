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
	"bytes"
	"fmt"

	"github.com/Velocidex/json"
)

func Marshal(v interface{}) ([]byte, error) {
	return json.MarshalWithOptions(v, NewEncOpts())
}

func MustMarshalString(v interface{}) string {
	result, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(result)
}

func MarshalIndent(v interface{}) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = json.Indent(&buf, b, "", " ")
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(b []byte, v interface{}) error {
	return json.Unmarshal(b, v)
}

func memcat(dest *[]byte, src []byte) {
	*dest = append(*dest, src...)
}

// Allows to format a JSON string safely similar to fmt.Sprintf. %s
// copies the argument in verbatim while %q and %d encode it as JSON.
func Format(template string, args ...interface{}) string {
	arg_idx := 0
	result := make([]byte, 0, len(template)*2)
	for i := 0; i < len(template); i++ {
		if template[i] == '%' && i+1 < len(template) {
			switch template[i+1] {
			case 's':
				if arg_idx < len(args) {
					memcat(&result, []byte(ToString(args[arg_idx])))
					arg_idx++
				}
				i++

			case 'q', 'd':
				if arg_idx < len(args) {
					arg, err := Marshal(args[arg_idx])
					if err != nil {
						arg = []byte("null")
					}
					memcat(&result, arg)
					arg_idx++
				}
				i++

			default:
				i++
			}
		} else {
			result = append(result, template[i])
		}
	}
	return string(result)
}

func ToString(x interface{}) string {
	switch t := x.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", x)
	}
}
