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

package uuid

import "fmt"

// ParseError is returned when a UUID string is neither the canonical
// hyphenated form nor the urn:uuid: form.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uuid: invalid UUID %q: %s", e.Input, e.Msg)
}

// LengthError is returned when a byte slice has an unexpected length.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("uuid: unexpected length %d, want %d bytes", e.Got, e.Want)
}
