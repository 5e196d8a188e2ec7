// Copyright 2026 Blink Labs Software
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

package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Store keeps one corpus entry per file in a directory
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes data to the store under its content-derived name. Saving the same
// data twice is a no-op.
func (s *Store) Save(data []byte) (Entry, error) {
	entry := NewEntry(data)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("create corpus directory: %w", err)
	}
	path := filepath.Join(s.dir, entry.Name)
	if _, err := os.Stat(path); err == nil {
		return entry, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Entry{}, err
	}
	if err := os.WriteFile(path, entry.Data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write corpus entry %s: %w", entry.Name, err)
	}
	return entry, nil
}

// Load reads every file in the store, sorted by name. Subdirectories are ignored.
// Files keep their own names, which need not be content hashes.
func (s *Store) Load() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}
	ret := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, dirEntry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read corpus entry %s: %w", dirEntry.Name(), err)
		}
		ret = append(ret, Entry{Name: dirEntry.Name(), Data: data})
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret, nil
}
