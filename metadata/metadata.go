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
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
)

// ConversionPair is a substitution rule applied to input or output text,
// e.g. ligature normalization.
type ConversionPair struct {
	From string
	To   string
}

// Replacement is a candidate-expansion rule used to broaden spell-check
// search. It is not a literal substitution.
type Replacement struct {
	From string
	To   []string
}

// Equivalence groups characters treated as interchangeable for matching
// purposes, e.g. diacritic variants.
type Equivalence struct {
	Char       rune
	Equivalent []rune
}

// Metadata is the validated, typed dictionary metadata. It is constructed
// atomically by Resolve and is immutable afterwards, so it is safe to share
// across concurrent readers without locking.
type Metadata struct {
	separator     byte
	separatorRune rune

	encodingName string
	encoding     encoding.Encoding

	locale      language.Tag
	encoderType EncoderType

	frequencyIncluded  bool
	ignorePunctuation  bool
	ignoreNumbers      bool
	ignoreCamelCase    bool
	ignoreAllUppercase bool
	ignoreDiacritics   bool
	convertCase        bool
	runOnWords         bool

	inputConversion  []ConversionPair
	outputConversion []ConversionPair
	replacements     []Replacement
	equivalences     []Equivalence

	author       string
	license      string
	creationDate string

	// attributes is the string snapshot of every resolved attribute,
	// including defaulted values.
	attributes map[AttributeKey]string
}

// Separator returns the field separator as a single byte in the dictionary's
// encoding. This is the only value guaranteed safe for binary-format
// boundary detection.
func (m *Metadata) Separator() byte {
	return m.separator
}

// SeparatorRune returns the field separator as a character.
func (m *Metadata) SeparatorRune() rune {
	return m.separatorRune
}

// EncodingName returns the name of the dictionary's character encoding as
// supplied in the metadata.
func (m *Metadata) EncodingName() string {
	return m.encodingName
}

// Encoding returns the dictionary's character encoding.
func (m *Metadata) Encoding() encoding.Encoding {
	return m.encoding
}

// NewDecoder returns a new decoder translating dictionary bytes to UTF-8.
func (m *Metadata) NewDecoder() *encoding.Decoder {
	return m.encoding.NewDecoder()
}

// NewEncoder returns a new encoder translating UTF-8 to dictionary bytes.
func (m *Metadata) NewEncoder() *encoding.Encoder {
	return m.encoding.NewEncoder()
}

// Locale returns the dictionary's locale. It is language.Und when the
// metadata does not name one.
func (m *Metadata) Locale() language.Tag {
	return m.locale
}

// EncoderType returns the sequence-compression strategy of the dictionary
// payload.
func (m *Metadata) EncoderType() EncoderType {
	return m.encoderType
}

// IsFrequencyIncluded reports whether entries carry a frequency annotation.
func (m *Metadata) IsFrequencyIncluded() bool {
	return m.frequencyIncluded
}

// IsIgnoringPunctuation reports whether punctuation-only tokens are skipped.
func (m *Metadata) IsIgnoringPunctuation() bool {
	return m.ignorePunctuation
}

// IsIgnoringNumbers reports whether numeric tokens are skipped.
func (m *Metadata) IsIgnoringNumbers() bool {
	return m.ignoreNumbers
}

// IsIgnoringCamelCase reports whether camelCase tokens are skipped.
func (m *Metadata) IsIgnoringCamelCase() bool {
	return m.ignoreCamelCase
}

// IsIgnoringAllUppercase reports whether all-uppercase tokens are skipped.
func (m *Metadata) IsIgnoringAllUppercase() bool {
	return m.ignoreAllUppercase
}

// IsIgnoringDiacritics reports whether diacritics are ignored during
// matching.
func (m *Metadata) IsIgnoringDiacritics() bool {
	return m.ignoreDiacritics
}

// IsConvertingCase reports whether candidate case follows the input case.
func (m *Metadata) IsConvertingCase() bool {
	return m.convertCase
}

// IsSupportingRunOnWords reports whether run-on words are considered during
// spelling correction.
func (m *Metadata) IsSupportingRunOnWords() bool {
	return m.runOnWords
}

// InputConversion returns the ordered input substitution pairs.
func (m *Metadata) InputConversion() []ConversionPair {
	return append([]ConversionPair(nil), m.inputConversion...)
}

// OutputConversion returns the ordered output substitution pairs.
func (m *Metadata) OutputConversion() []ConversionPair {
	return append([]ConversionPair(nil), m.outputConversion...)
}

// ReplacementPairs returns the ordered candidate-expansion pairs.
func (m *Metadata) ReplacementPairs() []Replacement {
	return append([]Replacement(nil), m.replacements...)
}

// EquivalentChars returns the ordered character-equivalence classes.
func (m *Metadata) EquivalentChars() []Equivalence {
	return append([]Equivalence(nil), m.equivalences...)
}

// Author returns the dictionary author.
func (m *Metadata) Author() string {
	return m.author
}

// License returns the dictionary license.
func (m *Metadata) License() string {
	return m.license
}

// CreationDate returns the dictionary creation date.
func (m *Metadata) CreationDate() string {
	return m.creationDate
}

// AllAttributes returns a snapshot of every resolved attribute as strings,
// including defaulted values.
func (m *Metadata) AllAttributes() map[AttributeKey]string {
	attrs := make(map[AttributeKey]string, len(m.attributes))
	for k, v := range m.attributes {
		attrs[k] = v
	}
	return attrs
}
