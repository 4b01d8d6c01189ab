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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// Extension is the metadata sidecar file extension.
const Extension = ".info"

var (
	// ErrUnknownAttributeName indicates a property name outside the closed
	// attribute key set.
	ErrUnknownAttributeName = errors.New("unknown attribute")

	// ErrMissingEncoderAttribute indicates a metadata file without an
	// encoder attribute and without legacy encoder keys.
	ErrMissingEncoderAttribute = errors.New("missing encoder attribute")

	// ErrDeprecatedEncoderKeys indicates a metadata file still carrying the
	// legacy fsa.dict.uses-* keys. The legacy form is never applied
	// automatically; the file must be migrated.
	ErrDeprecatedEncoderKeys = errors.New("deprecated encoder attributes")
)

// saveComment is the comment line written at the top of saved metadata.
const saveComment = "Morphological dictionary metadata."

// Load reads raw attributes from the property-list stream r. The stream is
// owned by the caller and is not closed.
func Load(r io.Reader) (RawAttributes, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	p, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	p.DisableExpansion = true

	// Files predating the encoder attribute declared the sequence encoder
	// with three boolean keys. The legacy form is reported, never inferred.
	if _, ok := p.Get(Encoder.String()); !ok {
		inferred, legacyPresent := legacyEncoder(p)
		if legacyPresent {
			return nil, fmt.Errorf("%w: replace the fsa.dict.uses-* keys with %v=%v",
				ErrDeprecatedEncoderKeys, Encoder, inferred)
		}
		return nil, fmt.Errorf("%w: add %v=%v",
			ErrMissingEncoderAttribute, Encoder, inferred)
	}
	if _, legacyPresent := legacyEncoder(p); legacyPresent {
		return nil, fmt.Errorf("%w: remove the fsa.dict.uses-* keys; %v is authoritative",
			ErrDeprecatedEncoderKeys, Encoder)
	}

	raw := make(RawAttributes, len(p.Keys()))
	for _, name := range p.Keys() {
		key, ok := KeyForName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttributeName, name)
		}
		value, _ := p.Get(name)
		raw[key] = value
	}
	return raw, nil
}

// LoadFile reads raw attributes from the metadata file at path. The file is
// closed on every exit path.
func LoadFile(path string) (RawAttributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// legacyEncoder reports whether any legacy encoder key is present and the
// modern encoder value equivalent to the legacy flags. Absent flags take
// their historical defaults (suffixes on, prefixes and infixes off).
func legacyEncoder(p *properties.Properties) (EncoderType, bool) {
	present := false
	flag := func(name string, def bool) bool {
		v, ok := p.Get(name)
		if !ok {
			return def
		}
		present = true
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}

	suffixes := flag(legacyUsesSuffixes, true)
	prefixes := flag(legacyUsesPrefixes, false)
	infixes := flag(legacyUsesInfixes, false)

	switch {
	case infixes:
		return EncoderInfix, present
	case prefixes:
		return EncoderPrefix, present
	case suffixes:
		return EncoderSuffix, present
	}
	return EncoderNone, present
}

// Save writes every resolved attribute of m to w as a property list,
// preceded by a descriptive comment line. The output contains the full
// resolved set, including defaulted values, in attribute enumeration order.
// The writer is owned by the caller and is not closed.
func Save(m *Metadata, w io.Writer) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, key := range Keys() {
		value, ok := m.attributes[key]
		if !ok {
			continue
		}
		if _, _, err := p.Set(key.String(), value); err != nil {
			return fmt.Errorf("setting %v: %w", key, err)
		}
	}

	if _, err := fmt.Fprintf(w, "# %s\n", saveComment); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	if _, err := p.Write(w, properties.UTF8); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// FileName returns the expected metadata file name for the given dictionary
// file name, replacing the dictionary extension with Extension.
func FileName(dictFile string) string {
	base := filepath.Base(dictFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + Extension
}

// Path returns the expected metadata file path for the given dictionary
// path, resolved in the dictionary file's own directory.
func Path(dictPath string) string {
	return filepath.Join(filepath.Dir(dictPath), FileName(dictPath))
}
