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

// Package metadata implements reading, validation, and writing of the .info
// metadata sidecar that accompanies a morphological dictionary. The sidecar
// is a flat UTF-8 property list describing how the dictionary's binary
// payload must be interpreted: field separator, character encoding,
// case-folding policy, conversion tables, and the sequence-encoding strategy.
package metadata

// AttributeKey identifies a recognized metadata attribute. The key set is
// closed: every key has a fixed external property name and a fixed coercion
// rule, and the resolver routes every key exhaustively.
type AttributeKey int

const (
	// Separator is the character separating stem/lemma/form fields inside a
	// dictionary entry. It must encode to exactly one byte in the
	// dictionary's encoding.
	Separator AttributeKey = iota

	// Encoding names the character encoding of the dictionary payload.
	Encoding

	// Encoder selects the sequence-compression strategy used when encoding
	// stem-to-form transformations.
	Encoder

	// Culture names the locale associated with the dictionary.
	Culture

	// FrequencyIncluded indicates entries carry a frequency annotation.
	FrequencyIncluded

	// IgnorePunctuation indicates the speller should skip punctuation-only
	// tokens.
	IgnorePunctuation

	// IgnoreNumbers indicates the speller should skip numeric tokens.
	IgnoreNumbers

	// IgnoreCamelCase indicates the speller should skip camelCase tokens.
	IgnoreCamelCase

	// IgnoreAllUppercase indicates the speller should skip all-uppercase
	// tokens.
	IgnoreAllUppercase

	// IgnoreDiacritics indicates diacritics are ignored during matching.
	IgnoreDiacritics

	// ConvertCase indicates candidate case should follow the input case.
	ConvertCase

	// RunOnWords indicates run-on words should be considered during
	// spelling correction.
	RunOnWords

	// InputConversion is a list of substitution pairs applied to input text.
	InputConversion

	// OutputConversion is a list of substitution pairs applied to output
	// text.
	OutputConversion

	// ReplacementPairs is a list of candidate-expansion pairs used to broaden
	// spell-check search.
	ReplacementPairs

	// EquivalentChars is a list of character-equivalence classes.
	EquivalentChars

	// Author is the dictionary author.
	Author

	// License is the dictionary license.
	License

	// CreationDate is the dictionary creation date.
	CreationDate
)

// attributeNames maps each key to its external property name.
var attributeNames = map[AttributeKey]string{
	Separator:          "fsa.dict.separator",
	Encoding:           "fsa.dict.encoding",
	Encoder:            "fsa.dict.encoder",
	Culture:            "fsa.dict.speller.locale",
	FrequencyIncluded:  "fsa.dict.frequency-included",
	IgnorePunctuation:  "fsa.dict.speller.ignore-punctuation",
	IgnoreNumbers:      "fsa.dict.speller.ignore-numbers",
	IgnoreCamelCase:    "fsa.dict.speller.ignore-camel-case",
	IgnoreAllUppercase: "fsa.dict.speller.ignore-all-uppercase",
	IgnoreDiacritics:   "fsa.dict.speller.ignore-diacritics",
	ConvertCase:        "fsa.dict.speller.convert-case",
	RunOnWords:         "fsa.dict.speller.runon-words",
	InputConversion:    "fsa.dict.input.conversion",
	OutputConversion:   "fsa.dict.output.conversion",
	ReplacementPairs:   "fsa.dict.speller.replacement-pairs",
	EquivalentChars:    "fsa.dict.speller.equivalent-chars",
	Author:             "fsa.dict.author",
	License:            "fsa.dict.license",
	CreationDate:       "fsa.dict.created",
}

// attributesByName is the reverse of attributeNames.
var attributesByName = func() map[string]AttributeKey {
	m := make(map[string]AttributeKey, len(attributeNames))
	for k, name := range attributeNames {
		m[name] = k
	}
	return m
}()

// Legacy property names superseded by fsa.dict.encoder. They are recognized
// only to produce a migration error; their values are never applied.
const (
	legacyUsesSuffixes = "fsa.dict.uses-suffixes"
	legacyUsesPrefixes = "fsa.dict.uses-prefixes"
	legacyUsesInfixes  = "fsa.dict.uses-infixes"
)

// String returns the key's external property name.
func (k AttributeKey) String() string {
	return attributeNames[k]
}

// KeyForName returns the AttributeKey for the given external property name.
func KeyForName(name string) (AttributeKey, bool) {
	k, ok := attributesByName[name]
	return k, ok
}

// Keys returns every recognized AttributeKey in enumeration order.
func Keys() []AttributeKey {
	keys := make([]AttributeKey, 0, len(attributeNames))
	for k := Separator; k <= CreationDate; k++ {
		keys = append(keys, k)
	}
	return keys
}
