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

// Package testutil provides fixture helpers for dictionary tests.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// DictionaryOptions are options for writing a test dictionary.
type DictionaryOptions struct {
	// DictZip indicates the payload should be compressed with dictzip.
	DictZip bool

	// Gzip indicates the payload should be compressed with gzip.
	Gzip bool

	// NoMetadata omits the .info companion file.
	NoMetadata bool
}

// WriteDictionary writes a .dict/.info companion pair named name into dir
// and returns the payload path.
func WriteDictionary(t *testing.T, dir, name, info string, payload []byte, opts *DictionaryOptions) string {
	t.Helper()
	if opts == nil {
		opts = &DictionaryOptions{}
	}

	if !opts.NoMetadata {
		infoPath := filepath.Join(dir, name+".info")
		if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	dictPath := filepath.Join(dir, name+".dict")
	switch {
	case opts.DictZip:
		dictPath += ".dz"
		f, err := os.Create(dictPath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()

		if _, err := z.Write(payload); err != nil {
			t.Fatal(err)
		}
	case opts.Gzip:
		dictPath += ".gz"
		f, err := os.Create(dictPath)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		z := gzip.NewWriter(f)
		defer z.Close()

		if _, err := z.Write(payload); err != nil {
			t.Fatal(err)
		}
	default:
		if err := os.WriteFile(dictPath, payload, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dictPath
}
