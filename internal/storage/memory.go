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

import "sync"

// MemoryBackend keeps entries in process memory. It backs tests and hosts
// running in sandboxed contexts where no durable storage is available.
type MemoryBackend struct {
	items map[string]string
	mutex sync.RWMutex
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		items: make(map[string]string),
	}
}

// Get retrieves an entry.
func (b *MemoryBackend) Get(key string) (string, bool, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	value, found := b.items[key]
	return value, found, nil
}

// Set stores an entry, overwriting any previous value.
func (b *MemoryBackend) Set(key string, value string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.items[key] = value
	return nil
}

// Delete removes an entry. Deleting a missing key is a no-op.
func (b *MemoryBackend) Delete(key string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	delete(b.items, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *MemoryBackend) Close() error {
	return nil
}
