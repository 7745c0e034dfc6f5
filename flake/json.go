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

package flake

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the Flake as its lexicographically sortable string
// form, grounded on the teacher's GID.MarshalJSON.
func (f Flake) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a Flake from its string form, grounded on the
// teacher's GID.UnmarshalJSON.
func (f *Flake) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, ok := FromString(s)
	if !ok {
		return fmt.Errorf("flake: invalid Flake string %q", s)
	}
	*f = decoded
	return nil
}
