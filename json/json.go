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
// Wrap json library to control encoding.

package json

import (
	"time"

	"github.com/Velocidex/json"
	"github.com/Velocidex/ordereddict"
)

// Dicts are encoded with their keys in insertion order.
func MarshalJSONDict(v interface{}, opts *json.EncOpts) ([]byte, error) {
	self, ok := v.(*ordereddict.Dict)
	if !ok {
		return nil, json.EncoderCallbackSkip
	}

	result := []byte{'{'}
	for idx, k := range self.Keys() {
		if idx > 0 {
			result = append(result, ',')
		}

		k_escaped, err := json.MarshalWithOptions(k, opts)
		if err != nil {
			return nil, err
		}
		result = append(result, k_escaped...)
		result = append(result, ':')

		value, _ := self.Get(k)
		v_bytes, err := json.MarshalWithOptions(value, opts)
		if err != nil {
			v_bytes = []byte("null")
		}
		result = append(result, v_bytes...)
	}
	result = append(result, '}')
	return result, nil
}

// Durations are written the way people type them on the command
// line rather than as nanoseconds.
func MarshalDuration(v interface{}, opts *json.EncOpts) ([]byte, error) {
	switch t := v.(type) {
	case time.Duration:
		return json.Marshal(t.String())
	case *time.Duration:
		if t == nil {
			return []byte("null"), nil
		}
		return json.Marshal(t.String())
	}
	return nil, json.EncoderCallbackSkip
}

// Every value we serialize goes through these. The sample only
// selects the type.
var encoders = []struct {
	sample interface{}
	cb     json.EncoderCallback
}{
	{ordereddict.NewDict(), MarshalJSONDict},
	{time.Duration(0), MarshalDuration},
}

func NewEncOpts() *json.EncOpts {
	opts := json.NewEncOpts()
	for _, encoder := range encoders {
		opts.WithCallback(encoder.sample, encoder.cb)
	}
	return opts
}
