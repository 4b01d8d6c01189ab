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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// minimalRaw returns raw attributes with every mandatory key set to a valid
// value.
func minimalRaw() RawAttributes {
	return RawAttributes{
		Separator: "+",
		Encoding:  "UTF-8",
		Encoder:   "suffix",
	}
}

// TestResolve tests Resolve.
func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    RawAttributes
		expect func(*testing.T, *Metadata)
		err    error

		// errContains is additionally checked against the error text.
		errContains string
	}{
		{
			name: "minimal",
			raw:  minimalRaw(),
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if want, got := byte(0x2B), m.Separator(); want != got {
					t.Fatalf("Separator; want: 0x%02X, got: 0x%02X", want, got)
				}
				if want, got := '+', m.SeparatorRune(); want != got {
					t.Fatalf("SeparatorRune; want: %q, got: %q", want, got)
				}
				if want, got := EncoderSuffix, m.EncoderType(); want != got {
					t.Fatalf("EncoderType; want: %v, got: %v", want, got)
				}
				if want, got := "UTF-8", m.EncodingName(); want != got {
					t.Fatalf("EncodingName; want: %q, got: %q", want, got)
				}
				if want, got := language.Und, m.Locale(); want != got {
					t.Fatalf("Locale; want: %v, got: %v", want, got)
				}
			},
		},
		{
			name: "boolean defaults",
			raw:  minimalRaw(),
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if m.IsFrequencyIncluded() {
					t.Fatal("IsFrequencyIncluded: expected default false")
				}
				for name, got := range map[string]bool{
					"IsIgnoringPunctuation":  m.IsIgnoringPunctuation(),
					"IsIgnoringNumbers":      m.IsIgnoringNumbers(),
					"IsIgnoringCamelCase":    m.IsIgnoringCamelCase(),
					"IsIgnoringAllUppercase": m.IsIgnoringAllUppercase(),
					"IsIgnoringDiacritics":   m.IsIgnoringDiacritics(),
					"IsConvertingCase":       m.IsConvertingCase(),
					"IsSupportingRunOnWords": m.IsSupportingRunOnWords(),
				} {
					if !got {
						t.Fatalf("%s: expected default true", name)
					}
				}
			},
		},
		{
			name: "defaults included in attribute snapshot",
			raw:  minimalRaw(),
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				attrs := m.AllAttributes()
				if want, got := len(minimalRaw())+len(defaults), len(attrs); want != got {
					t.Fatalf("len(AllAttributes); want: %d, got: %d", want, got)
				}
				if want, got := "true", attrs[IgnorePunctuation]; want != got {
					t.Fatalf("AllAttributes[IgnorePunctuation]; want: %q, got: %q", want, got)
				}
				if want, got := "false", attrs[FrequencyIncluded]; want != got {
					t.Fatalf("AllAttributes[FrequencyIncluded]; want: %q, got: %q", want, got)
				}
			},
		},
		{
			name: "supplied overrides default",
			raw: RawAttributes{
				Separator:         "+",
				Encoding:          "UTF-8",
				Encoder:           "suffix",
				IgnorePunctuation: "false",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if m.IsIgnoringPunctuation() {
					t.Fatal("IsIgnoringPunctuation: expected supplied false to win")
				}
			},
		},
		{
			name: "missing encoder",
			raw: RawAttributes{
				Separator: "+",
				Encoding:  "UTF-8",
			},
			err:         ErrMissingRequiredAttributes,
			errContains: "fsa.dict.encoder",
		},
		{
			name:        "missing all mandatory keys",
			raw:         RawAttributes{},
			err:         ErrMissingRequiredAttributes,
			errContains: "fsa.dict.separator, fsa.dict.encoding, fsa.dict.encoder",
		},
		{
			name: "separator needs two bytes in UTF-8",
			raw: RawAttributes{
				Separator: "ą",
				Encoding:  "UTF-8",
				Encoder:   "suffix",
			},
			err:         ErrSeparatorNotSingleByte,
			errContains: "UTF-8",
		},
		{
			name: "separator is one byte in ISO-8859-2",
			raw: RawAttributes{
				Separator: "ą",
				Encoding:  "ISO-8859-2",
				Encoder:   "suffix",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if want, got := byte(0xB1), m.Separator(); want != got {
					t.Fatalf("Separator; want: 0x%02X, got: 0x%02X", want, got)
				}
				if want, got := 'ą', m.SeparatorRune(); want != got {
					t.Fatalf("SeparatorRune; want: %q, got: %q", want, got)
				}
			},
		},
		{
			name: "separator not representable in encoding",
			raw: RawAttributes{
				Separator: "本",
				Encoding:  "ISO-8859-2",
				Encoder:   "suffix",
			},
			err: ErrSeparatorNotSingleByte,
		},
		{
			name: "invalid separator",
			raw: RawAttributes{
				Separator: "ab",
				Encoding:  "UTF-8",
				Encoder:   "suffix",
			},
			err:         ErrInvalidSeparator,
			errContains: "fsa.dict.separator",
		},
		{
			name: "unknown encoding",
			raw: RawAttributes{
				Separator: "+",
				Encoding:  "no-such-encoding",
				Encoder:   "suffix",
			},
			err:         ErrUnknownEncoding,
			errContains: "no-such-encoding",
		},
		{
			name: "unknown encoder type",
			raw: RawAttributes{
				Separator: "+",
				Encoding:  "UTF-8",
				Encoder:   "FSA5",
			},
			err:         ErrUnknownEncoderType,
			errContains: "FSA5",
		},
		{
			name: "invalid boolean",
			raw: RawAttributes{
				Separator:         "+",
				Encoding:          "UTF-8",
				Encoder:           "suffix",
				FrequencyIncluded: "yes",
			},
			err:         ErrInvalidBoolean,
			errContains: "fsa.dict.frequency-included",
		},
		{
			name: "unknown culture",
			raw: RawAttributes{
				Separator: "+",
				Encoding:  "UTF-8",
				Encoder:   "suffix",
				Culture:   "!!invalid!!",
			},
			err: ErrUnknownCulture,
		},
		{
			name: "culture",
			raw: RawAttributes{
				Separator: "+",
				Encoding:  "UTF-8",
				Encoder:   "suffix",
				Culture:   "pl_PL",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if want, got := language.MustParse("pl-PL"), m.Locale(); want != got {
					t.Fatalf("Locale; want: %v, got: %v", want, got)
				}
			},
		},
		{
			name: "conversion pairs",
			raw: RawAttributes{
				Separator:       "+",
				Encoding:        "UTF-8",
				Encoder:         "suffix",
				InputConversion: "ﬁ=fi,ﬂ=fl",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				want := []ConversionPair{
					{From: "ﬁ", To: "fi"},
					{From: "ﬂ", To: "fl"},
				}
				if diff := cmp.Diff(want, m.InputConversion()); diff != "" {
					t.Fatalf("InputConversion (-want, +got):\n%s", diff)
				}
				if got := m.OutputConversion(); len(got) != 0 {
					t.Fatalf("OutputConversion: expected default empty, got: %v", got)
				}
			},
		},
		{
			name: "malformed conversion pair",
			raw: RawAttributes{
				Separator:       "+",
				Encoding:        "UTF-8",
				Encoder:         "suffix",
				InputConversion: "ﬁfi",
			},
			err:         ErrMalformedConversionPair,
			errContains: "ﬁfi",
		},
		{
			name: "replacement pairs",
			raw: RawAttributes{
				Separator:        "+",
				Encoding:         "UTF-8",
				Encoder:          "suffix",
				ReplacementPairs: "x=ks, x=iks",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				want := []Replacement{
					{From: "x", To: []string{"ks", "iks"}},
				}
				if diff := cmp.Diff(want, m.ReplacementPairs()); diff != "" {
					t.Fatalf("ReplacementPairs (-want, +got):\n%s", diff)
				}
			},
		},
		{
			name: "equivalent chars",
			raw: RawAttributes{
				Separator:       "+",
				Encoding:        "UTF-8",
				Encoder:         "suffix",
				EquivalentChars: "ą=a, ę=e",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				want := []Equivalence{
					{Char: 'ą', Equivalent: []rune{'a'}},
					{Char: 'ę', Equivalent: []rune{'e'}},
				}
				if diff := cmp.Diff(want, m.EquivalentChars()); diff != "" {
					t.Fatalf("EquivalentChars (-want, +got):\n%s", diff)
				}
			},
		},
		{
			name: "invalid equivalence char",
			raw: RawAttributes{
				Separator:       "+",
				Encoding:        "UTF-8",
				Encoder:         "suffix",
				EquivalentChars: "ab=a",
			},
			err: ErrInvalidEquivalenceChar,
		},
		{
			name: "informational attributes",
			raw: RawAttributes{
				Separator:    "+",
				Encoding:     "UTF-8",
				Encoder:      "suffix",
				Author:       "Jan Kowalski",
				License:      "CC BY 4.0",
				CreationDate: "2024-03-01",
			},
			expect: func(t *testing.T, m *Metadata) {
				t.Helper()
				if want, got := "Jan Kowalski", m.Author(); want != got {
					t.Fatalf("Author; want: %q, got: %q", want, got)
				}
				if want, got := "CC BY 4.0", m.License(); want != got {
					t.Fatalf("License; want: %q, got: %q", want, got)
				}
				if want, got := "2024-03-01", m.CreationDate(); want != got {
					t.Fatalf("CreationDate; want: %q, got: %q", want, got)
				}
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m, err := Resolve(test.raw)
			if !errors.Is(err, test.err) {
				t.Fatalf("Resolve; want err: %v, got: %v", test.err, err)
			}
			if err != nil {
				if test.errContains != "" && !strings.Contains(err.Error(), test.errContains) {
					t.Fatalf("Resolve; error %q does not contain %q", err, test.errContains)
				}
				return
			}
			if test.expect != nil {
				test.expect(t, m)
			}
		})
	}
}

// TestResolve_snapshotIsCopy tests that mutating the returned attribute
// snapshot does not affect the metadata.
func TestResolve_snapshotIsCopy(t *testing.T) {
	t.Parallel()

	m, err := Resolve(minimalRaw())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	attrs := m.AllAttributes()
	attrs[Separator] = "changed"

	if want, got := "+", m.AllAttributes()[Separator]; want != got {
		t.Fatalf("AllAttributes[Separator]; want: %q, got: %q", want, got)
	}
}
