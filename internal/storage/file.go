/*
 * Copyright (c) 2026, PrivacyKit (https://privacykit.dev).
 *
 * PrivacyKit licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileBackend persists entries as a single JSON object on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written
// store behind.
type FileBackend struct {
	path  string
	mutex sync.Mutex
}

// NewFileBackend creates a file backend at the given path, creating parent
// directories as needed. The file itself is created on first write.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, errors.New("file backend requires a path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrapf(err, "mkdir %s", dir)
		}
	}
	return &FileBackend{path: path}, nil
}

// Get retrieves an entry.
func (b *FileBackend) Get(key string) (string, bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	items, err := b.load()
	if err != nil {
		return "", false, err
	}
	value, found := items[key]
	return value, found, nil
}

// Set stores an entry, overwriting any previous value.
func (b *FileBackend) Set(key string, value string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	items, err := b.load()
	if err != nil {
		return err
	}
	items[key] = value
	return b.flush(items)
}

// Delete removes an entry. Deleting a missing key is a no-op.
func (b *FileBackend) Delete(key string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	items, err := b.load()
	if err != nil {
		return err
	}
	if _, found := items[key]; !found {
		return nil
	}
	delete(items, key)
	return b.flush(items)
}

// Close is a no-op; every write is already flushed to disk.
func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) load() (map[string]string, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", b.path)
	}
	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", b.path)
	}
	return items, nil
}

func (b *FileBackend) flush(items map[string]string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode store")
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
