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

package morphdict

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/morphdict/go-morphdict/metadata"
)

// DictExtension is the dictionary payload file extension.
const DictExtension = ".dict"

var (
	// ErrBadExtension indicates a path that does not name a dictionary file.
	ErrBadExtension = errors.New("bad extension")

	// ErrNoDictionary indicates that no payload file exists for the path.
	ErrNoDictionary = errors.New("no dictionary found")
)

// Dictionary is an opened morphological dictionary: its resolved metadata
// and its decompressed binary payload stream.
type Dictionary struct {
	meta *metadata.Metadata

	r      io.Reader
	closer io.Closer

	path string
}

// Open opens the dictionary at the given .dict path. The companion .info
// metadata file is located next to the dictionary, loaded, and resolved
// before the payload is opened. The payload may be the plain file, or a
// compressed variant with a .dz or .gz suffix.
func Open(path string) (*Dictionary, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(path, ".dz"), ".gz")
	if ext := filepath.Ext(base); !strings.EqualFold(ext, DictExtension) {
		return nil, fmt.Errorf("%w: %v", ErrBadExtension, ext)
	}

	raw, err := metadata.LoadFile(metadata.Path(base))
	if err != nil {
		return nil, err
	}
	meta, err := metadata.Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("resolving metadata for %q: %w", path, err)
	}

	r, closer, payloadPath, err := openPayload(path)
	if err != nil {
		return nil, err
	}

	return &Dictionary{
		meta:   meta,
		r:      r,
		closer: closer,
		path:   payloadPath,
	}, nil
}

// OpenAll opens all dictionaries under a directory. This function returns
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	seen := map[string]bool{}
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(strings.TrimSuffix(path, ".dz"), ".gz")
		if !strings.EqualFold(filepath.Ext(base), DictExtension) {
			return nil
		}
		// A dictionary may exist both plain and compressed; open it once.
		if seen[base] {
			return nil
		}
		seen[base] = true

		d, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		dicts = append(dicts, d)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Metadata returns the dictionary's resolved metadata.
func (d *Dictionary) Metadata() *metadata.Metadata {
	return d.meta
}

// Reader returns the decompressed payload stream.
func (d *Dictionary) Reader() io.Reader {
	return d.r
}

// Path returns the path of the payload file that was opened.
func (d *Dictionary) Path() string {
	return d.path
}

// Close closes the payload stream.
func (d *Dictionary) Close() error {
	if err := d.closer.Close(); err != nil {
		return fmt.Errorf("closing dictionary: %w", err)
	}
	return nil
}

// openPayload opens the dictionary payload, trying compressed variants when
// the plain file does not exist.
func openPayload(path string) (io.Reader, io.Closer, string, error) {
	candidates := []string{path}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".dz" && ext != ".gz" {
		candidates = append(candidates, path+".dz", path+".gz")
	}

	var payloadPath string
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			payloadPath = c
			break
		}
	}
	if payloadPath == "" {
		return nil, nil, "", fmt.Errorf("%w: %q", ErrNoDictionary, path)
	}

	f, err := os.Open(payloadPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("error opening %q: %w", payloadPath, err)
	}

	switch strings.ToLower(filepath.Ext(payloadPath)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, "", fmt.Errorf("error opening %q: %w", payloadPath, err)
		}
		return z, f, payloadPath, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, "", fmt.Errorf("error opening %q: %w", payloadPath, err)
		}
		return z, f, payloadPath, nil
	}
	return f, f, payloadPath, nil
}
