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

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/events"
	"github.com/privacykit/consent-manager/internal/storage"
	"github.com/privacykit/consent-manager/internal/system/log"
)

// DefaultStorageKey is the entry name used when no key is configured.
const DefaultStorageKey = "cookie-consent"

// DefaultVersion is the shipped consent schema version.
const DefaultVersion = "1.0"

// ConsentStoreInterface is the persistence contract for the single consent
// record. No error escapes it: any backend failure degrades to "no consent"
// so the host page keeps running.
type ConsentStoreInterface interface {
	Read() *model.ConsentRecord
	Write(preferences model.PreferenceSet) *model.ConsentRecord
	Clear()
	IsPresent() bool
}

// ConsentStore is the default implementation over a storage backend.
type ConsentStore struct {
	backend    storage.Backend
	notifier   *events.Notifier
	storageKey string
	version    string
	expiry     time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

// Options configures a ConsentStore. Zero values fall back to the defaults;
// a zero Expiry disables the expiration check.
type Options struct {
	StorageKey string
	Version    string
	Expiry     time.Duration
	Now        func() time.Time
}

// NewConsentStore creates a store over the given backend and notifier.
func NewConsentStore(backend storage.Backend, notifier *events.Notifier, opts Options) *ConsentStore {
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ConsentStore{
		backend:    backend,
		notifier:   notifier,
		storageKey: opts.StorageKey,
		version:    opts.Version,
		expiry:     opts.Expiry,
		now:        opts.Now,
	}
}

// Read loads the persisted consent record. Malformed data, a schema version
// mismatch, and an expired record are all treated as absent, and in all
// three cases the stale entry is deleted so the corruption heals itself.
func (cs *ConsentStore) Read() *model.ConsentRecord {

	logger := log.GetLogger()
	raw, found, err := cs.backend.Get(cs.storageKey)
	if err != nil {
		logger.Debug(fmt.Sprintf("Failed to read consent record: %s", cs.storageKey), log.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var record model.ConsentRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		logger.Debug("Failed to decode consent record, purging", log.Error(err))
		cs.purge()
		return nil
	}
	if record.Preferences == nil {
		logger.Debug("Consent record has no preferences, purging")
		cs.purge()
		return nil
	}
	if record.Version != cs.version {
		logger.Info(fmt.Sprintf("Consent record version %s does not match %s, purging", record.Version, cs.version))
		cs.purge()
		return nil
	}
	if record.ExpiredAt(cs.now(), cs.expiry) {
		logger.Info("Consent record expired, purging")
		cs.purge()
		return nil
	}
	return &record
}

// Write persists a new consent record built from the preferences and
// broadcasts the update event carrying the full record. A persistence
// failure is logged and swallowed; the update still reaches subscribers so
// the session reflects the user's choice.
func (cs *ConsentStore) Write(preferences model.PreferenceSet) *model.ConsentRecord {

	logger := log.GetLogger()
	record := &model.ConsentRecord{
		ID:          uuid.New().String(),
		Preferences: preferences.Clone(),
		Timestamp:   cs.now().UnixMilli(),
		Version:     cs.version,
	}

	raw, err := json.Marshal(record)
	if err != nil {
		logger.Warn("Failed to encode consent record", log.Error(err))
	} else if err := cs.backend.Set(cs.storageKey, string(raw)); err != nil {
		logger.Warn(fmt.Sprintf("Failed to persist consent record: %s", cs.storageKey), log.Error(err))
	}

	cs.notifier.Publish(events.Event{Type: events.EventConsentUpdated, Record: record})
	return record
}

// Clear deletes the persisted record and broadcasts the reset event.
func (cs *ConsentStore) Clear() {
	cs.purge()
	cs.notifier.Publish(events.Event{Type: events.EventConsentReset})
}

// IsPresent reports whether a valid, current consent record exists.
func (cs *ConsentStore) IsPresent() bool {
	return cs.Read() != nil
}

func (cs *ConsentStore) purge() {
	if err := cs.backend.Delete(cs.storageKey); err != nil {
		log.GetLogger().Debug(fmt.Sprintf("Failed to delete consent record: %s", cs.storageKey), log.Error(err))
	}
}
