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

	"golang.org/x/text/language"
)

var (
	// ErrMissingRequiredAttributes indicates that one or more mandatory
	// attributes were neither supplied nor defaulted.
	ErrMissingRequiredAttributes = errors.New("missing required attributes")

	// ErrSeparatorNotSingleByte indicates a separator character that does
	// not encode to exactly one byte in the dictionary's encoding.
	ErrSeparatorNotSingleByte = errors.New("separator is not a single byte")

	// errUnroutedKey indicates schema/resolver drift. The key space is
	// closed; every member must have a routing rule.
	errUnroutedKey = errors.New("internal error: unrouted attribute key")
)

// RawAttributes is an attribute mapping as supplied by a caller or read from
// a metadata file, prior to validation.
type RawAttributes map[AttributeKey]string

// Resolve validates and coerces the raw attributes into an immutable
// Metadata. Supplied values override schema defaults; mandatory attributes
// must be present in the merged set. Resolution stops at the first invalid
// attribute, and the returned error names the offending key so the metadata
// file can be fixed without consulting source.
func Resolve(raw RawAttributes) (*Metadata, error) {
	effective := make(RawAttributes, len(defaults)+len(raw))
	for k, v := range defaults {
		effective[k] = v
	}
	for k, v := range raw {
		effective[k] = v
	}

	missing := make(map[AttributeKey]bool, len(required))
	for _, k := range required {
		missing[k] = true
	}

	m := &Metadata{
		locale:     language.Und,
		attributes: make(map[AttributeKey]string, len(effective)),
	}

	// Keys are processed in enumeration order so that failures are
	// deterministic regardless of map iteration order.
	for _, key := range Keys() {
		value, ok := effective[key]
		if !ok {
			continue
		}
		delete(missing, key)

		if err := m.route(key, value); err != nil {
			return nil, fmt.Errorf("attribute %v: %w", key, err)
		}
		m.attributes[key] = value
	}

	if len(missing) > 0 {
		var names []string
		for _, k := range Keys() {
			if missing[k] {
				names = append(names, k.String())
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingRequiredAttributes, strings.Join(names, ", "))
	}

	b, err := m.encodeSeparator()
	if err != nil {
		return nil, err
	}
	m.separator = b

	return m, nil
}

// route coerces a single attribute value and stores the typed result. The
// switch is exhaustive over the closed key set; an unrouted key is a defect,
// not a data error.
func (m *Metadata) route(key AttributeKey, value string) error {
	var err error
	switch key {
	case Separator:
		m.separatorRune, err = parseSeparator(value)
	case Encoding:
		m.encodingName = value
		m.encoding, err = resolveEncoding(value)
	case Encoder:
		m.encoderType, err = parseEncoderType(value)
	case Culture:
		m.locale, err = resolveLocale(value)
	case FrequencyIncluded:
		m.frequencyIncluded, err = parseBool(value)
	case IgnorePunctuation:
		m.ignorePunctuation, err = parseBool(value)
	case IgnoreNumbers:
		m.ignoreNumbers, err = parseBool(value)
	case IgnoreCamelCase:
		m.ignoreCamelCase, err = parseBool(value)
	case IgnoreAllUppercase:
		m.ignoreAllUppercase, err = parseBool(value)
	case IgnoreDiacritics:
		m.ignoreDiacritics, err = parseBool(value)
	case ConvertCase:
		m.convertCase, err = parseBool(value)
	case RunOnWords:
		m.runOnWords, err = parseBool(value)
	case InputConversion:
		m.inputConversion, err = parseConversion(value)
	case OutputConversion:
		m.outputConversion, err = parseConversion(value)
	case ReplacementPairs:
		m.replacements, err = parseReplacements(value)
	case EquivalentChars:
		m.equivalences, err = parseEquivalences(value)
	case Author:
		m.author = value
	case License:
		m.license = value
	case CreationDate:
		m.creationDate = value
	default:
		return fmt.Errorf("%w: %d", errUnroutedKey, int(key))
	}
	return err
}

// encodeSeparator encodes the separator character with the dictionary's
// encoding and verifies that it occupies exactly one byte.
func (m *Metadata) encodeSeparator() (byte, error) {
	b, err := m.encoding.NewEncoder().Bytes([]byte(string(m.separatorRune)))
	if err != nil || len(b) != 1 {
		return 0, fmt.Errorf("%w: %q does not encode to one byte in %v",
			ErrSeparatorNotSingleByte, m.separatorRune, m.encodingName)
	}
	return b[0], nil
}
