// Copyright 2025 The morphdict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"testing"
)

// TestKeys tests Keys.
func TestKeys(t *testing.T) {
	t.Parallel()

	keys := Keys()
	if want, got := len(attributeNames), len(keys); want != got {
		t.Fatalf("len(Keys()); want: %d, got: %d", want, got)
	}

	// Every key round-trips through its external name.
	for _, key := range keys {
		name := key.String()
		if name == "" {
			t.Fatalf("no external name for key %d", int(key))
		}
		got, ok := KeyForName(name)
		if !ok {
			t.Fatalf("KeyForName(%q): not found", name)
		}
		if got != key {
			t.Fatalf("KeyForName(%q); want: %v, got: %v", name, key, got)
		}
	}
}

// TestKeyForName_unknown tests KeyForName with an unrecognized name.
func TestKeyForName_unknown(t *testing.T) {
	t.Parallel()

	if _, ok := KeyForName("fsa.dict.bogus"); ok {
		t.Fatal("KeyForName: expected not found")
	}
}
