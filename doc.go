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

// Package morphdict implements reading morphological stemming dictionaries
// in pure Go.
//
// A morphological dictionary consists of two companion files:
//  1. A .dict file containing the binary automaton payload. The payload may
//     be compressed using gzip or the dictzip format.
//  2. A .info file next to it containing dictionary metadata: the field
//     separator, character encoding, case-folding policy, conversion
//     tables, and the sequence-encoding strategy. The metadata is a flat
//     UTF-8 property list and is validated before any payload access.
//
// Payload traversal is the concern of an automaton reader built on top of
// this package; morphdict guarantees only that the metadata is internally
// consistent and that the payload stream is open and decompressed.
package morphdict
