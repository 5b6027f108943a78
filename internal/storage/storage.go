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
	errors2 "github.com/privacykit/consent-manager/internal/system/errors"
)

// Backend is the durable key-value storage the consent record lives in. It
// is the Go counterpart of the browser's localStorage: a handful of string
// entries owned by the host application.
type Backend interface {
	Get(key string) (value string, found bool, err error)
	Set(key string, value string) error
	Delete(key string) error
	Close() error
}

// Backend type names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open constructs a backend of the given type. File and sqlite backends
// require a path.
func Open(backendType string, path string) (Backend, error) {
	switch backendType {
	case BackendMemory, "":
		return NewMemoryBackend(), nil
	case BackendFile:
		return NewFileBackend(path)
	case BackendSQLite:
		return NewSQLiteBackend(path)
	default:
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_STORAGE_BACKEND.Code,
			Message:     errors2.INVALID_STORAGE_BACKEND.Message,
			Description: "Supported backends are memory, file, and sqlite.",
		})
	}
}
