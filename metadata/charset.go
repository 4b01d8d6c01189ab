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

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// ErrUnknownEncoding indicates an encoding name that cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrUnknownCulture indicates a locale name that cannot be resolved.
var ErrUnknownCulture = errors.New("unknown culture")

// charsets maps normalized encoding names to encodings. It is built once at
// package init and never mutated afterwards. Names not present here fall
// back to the IANA index.
var charsets = buildCharsets()

func buildCharsets() map[string]encoding.Encoding {
	m := map[string]encoding.Encoding{
		"utf8":    unicode.UTF8,
		"utf16":   unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
		"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),

		// ASCII has no dedicated x/text encoding; ISO 8859-1 is a
		// byte-compatible superset.
		"ascii":   charmap.ISO8859_1,
		"usascii": charmap.ISO8859_1,
	}

	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		m[normalizeCharsetName(cm.String())] = cm
	}

	// Common aliases found in dictionary files.
	aliases := map[string]string{
		"latin1": "iso88591",
		"latin2": "iso88592",
		"latin5": "iso88599",
		"latin9": "iso885915",
	}
	for i := 1250; i <= 1258; i++ {
		aliases[fmt.Sprintf("cp%d", i)] = fmt.Sprintf("windows%d", i)
	}
	for alias, target := range aliases {
		if enc, ok := m[target]; ok {
			m[alias] = enc
		}
	}

	return m
}

// normalizeCharsetName lower-cases a charset name and strips separator
// characters so that "ISO-8859-2", "ISO 8859-2", and "iso8859_2" all match.
func normalizeCharsetName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', ':':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// resolveEncoding resolves an encoding name to a reusable byte<->character
// encoding. Lookup tries the local table first and the IANA index second.
func resolveEncoding(name string) (encoding.Encoding, error) {
	if enc, ok := charsets[normalizeCharsetName(name)]; ok {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// resolveLocale resolves a locale name to a language tag. Java-style names
// such as "pl_PL" are accepted by normalizing underscores to hyphens.
func resolveLocale(name string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnknownCulture, name)
	}
	return tag, nil
}
