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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEncoderType indicates an unrecognized sequence encoder name.
var ErrUnknownEncoderType = errors.New("unknown encoder type")

// EncoderType is the sequence-compression strategy used when encoding
// stem-to-form transformations in the dictionary payload.
type EncoderType int

const (
	// EncoderNone stores forms without compression.
	EncoderNone EncoderType = iota

	// EncoderSuffix trims a shared suffix.
	EncoderSuffix

	// EncoderPrefix trims a shared prefix and suffix.
	EncoderPrefix

	// EncoderInfix trims a shared infix and suffix.
	EncoderInfix
)

// String returns the encoder type's attribute literal.
func (t EncoderType) String() string {
	switch t {
	case EncoderNone:
		return "none"
	case EncoderSuffix:
		return "suffix"
	case EncoderPrefix:
		return "prefix"
	case EncoderInfix:
		return "infix"
	}
	return fmt.Sprintf("EncoderType(%d)", int(t))
}

// parseEncoderType parses an encoder type literal. Names are matched
// case-insensitively.
func parseEncoderType(s string) (EncoderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return EncoderNone, nil
	case "suffix":
		return EncoderSuffix, nil
	case "prefix":
		return EncoderPrefix, nil
	case "infix":
		return EncoderInfix, nil
	}
	return EncoderNone, fmt.Errorf("%w: %q", ErrUnknownEncoderType, s)
}
