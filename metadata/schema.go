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
	"unicode/utf8"
)

var (
	// ErrInvalidBoolean indicates a boolean attribute literal that is
	// neither "true" nor "false".
	ErrInvalidBoolean = errors.New("invalid boolean literal")

	// ErrInvalidSeparator indicates a separator value that is not exactly
	// one character.
	ErrInvalidSeparator = errors.New("invalid separator")

	// ErrMalformedConversionPair indicates a conversion list entry without a
	// well-formed from=to pair.
	ErrMalformedConversionPair = errors.New("malformed conversion pair")

	// ErrMalformedReplacementPair indicates a replacement list entry without
	// a well-formed from=to pair.
	ErrMalformedReplacementPair = errors.New("malformed replacement pair")

	// ErrInvalidEquivalenceChar indicates an equivalence list entry with a
	// token longer than one character.
	ErrInvalidEquivalenceChar = errors.New("invalid equivalence character")
)

// Pair-list syntax for multi-valued attributes: entries separated by commas,
// entry members separated by an equals sign, whitespace around tokens
// ignored.
const (
	pairListDelimiter = ","
	pairDelimiter     = "="
)

// defaults is the canonical default attribute set shared by every
// resolution. It is built once and never exposed mutably.
var defaults = map[AttributeKey]string{
	FrequencyIncluded:  "false",
	IgnorePunctuation:  "true",
	IgnoreNumbers:      "true",
	IgnoreCamelCase:    "true",
	IgnoreAllUppercase: "true",
	IgnoreDiacritics:   "true",
	ConvertCase:        "true",
	RunOnWords:         "true",
}

// required lists the attributes that must be supplied; none of them has a
// default.
var required = []AttributeKey{Separator, Encoder, Encoding}

// parseBool parses a boolean attribute literal. Literals are matched
// case-insensitively.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, s)
}

// parseSeparator parses the separator attribute. The value must be exactly
// one character.
func parseSeparator(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidSeparator, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// textPair is a single from=to entry from a pair list.
type textPair struct {
	from string
	to   string
}

// parsePairs parses a delimited pair list into its entries, preserving the
// entry order. Malformed entries are reported using malformedErr.
func parsePairs(s string, malformedErr error) ([]textPair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var pairs []textPair
	for _, entry := range strings.Split(s, pairListDelimiter) {
		from, to, ok := strings.Cut(entry, pairDelimiter)
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: %q", malformedErr, strings.TrimSpace(entry))
		}
		pairs = append(pairs, textPair{from: from, to: to})
	}
	return pairs, nil
}

// parseConversion parses an input or output conversion list. A key repeated
// later in the list overrides its earlier value.
func parseConversion(s string) ([]ConversionPair, error) {
	pairs, err := parsePairs(s, ErrMalformedConversionPair)
	if err != nil {
		return nil, err
	}

	var out []ConversionPair
	index := map[string]int{}
	for _, p := range pairs {
		if i, ok := index[p.from]; ok {
			out[i].To = p.to
			continue
		}
		index[p.from] = len(out)
		out = append(out, ConversionPair{From: p.from, To: p.to})
	}
	return out, nil
}

// parseReplacements parses the replacement pair list. Values for a repeated
// key accumulate in list order.
func parseReplacements(s string) ([]Replacement, error) {
	pairs, err := parsePairs(s, ErrMalformedReplacementPair)
	if err != nil {
		return nil, err
	}

	var out []Replacement
	index := map[string]int{}
	for _, p := range pairs {
		if i, ok := index[p.from]; ok {
			out[i].To = append(out[i].To, p.to)
			continue
		}
		index[p.from] = len(out)
		out = append(out, Replacement{From: p.from, To: []string{p.to}})
	}
	return out, nil
}

// parseEquivalences parses the character-equivalence list. Both members of
// every entry must be exactly one character; values for a repeated key
// accumulate in list order.
func parseEquivalences(s string) ([]Equivalence, error) {
	pairs, err := parsePairs(s, ErrInvalidEquivalenceChar)
	if err != nil {
		return nil, err
	}

	var out []Equivalence
	index := map[rune]int{}
	for _, p := range pairs {
		if utf8.RuneCountInString(p.from) != 1 || utf8.RuneCountInString(p.to) != 1 {
			return nil, fmt.Errorf("%w: %q=%q", ErrInvalidEquivalenceChar, p.from, p.to)
		}
		from, _ := utf8.DecodeRuneInString(p.from)
		to, _ := utf8.DecodeRuneInString(p.to)

		if i, ok := index[from]; ok {
			out[i].Equivalent = append(out[i].Equivalent, to)
			continue
		}
		index[from] = len(out)
		out = append(out, Equivalence{Char: from, Equivalent: []rune{to}})
	}
	return out, nil
}
