/*

  Copyright 2026 Distefano Identity Authors, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package guid

import (
	"fmt"
	"net/url"

	"github.com/distefano/identity/uuid"
)

// InvalidName is returned by NameBytes when its argument cannot be
// coerced to the bytes a name-based UUID is built from.
type InvalidName struct {
	Value any
}

func (e *InvalidName) Error() string {
	return fmt.Sprintf("guid: cannot coerce %T to name bytes", e.Value)
}

// NameBytes reduces a name argument to the byte slice NewV3/NewV5 hash,
// per the closed set of shapes this façade accepts:
//
//   - string: its UTF-8 bytes.
//   - uuid.UUID: its 16-byte big-endian wire form.
//   - *url.URL: the UTF-8 bytes of its string form.
//   - []byte: itself, unchanged.
//
// Any other type, or a nil *url.URL, returns an *InvalidName error.
func NameBytes(name any) ([]byte, error) {
	switch v := name.(type) {
	case string:
		return []byte(v), nil
	case uuid.UUID:
		return v.Bytes(), nil
	case *url.URL:
		if v == nil {
			return nil, &InvalidName{Value: name}
		}
		return []byte(v.String()), nil
	case []byte:
		return v, nil
	default:
		return nil, &InvalidName{Value: name}
	}
}
