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

/*

Package guid is the public façade of this module: a unified entry point
for RFC 9562 UUIDs and 192-bit Flakes.

It re-exports the constructors, parsers, and accessors of the uuid and
flake packages behind a single import, and adds the name-byte coercion
required to build name-based (v3/v5) UUIDs from common Go argument
shapes — strings, URLs, raw bytes, and other UUIDs — instead of forcing
every caller to convert their own name value to a byte slice first.

No identifier logic lives here: this package is thin delegation and
argument coercion over uuid and flake.
*/
package guid
