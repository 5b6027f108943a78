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

package service

import (
	"time"

	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/consent/store"
	"github.com/privacykit/consent-manager/internal/events"
	"github.com/privacykit/consent-manager/internal/integrations"
	integrationmodel "github.com/privacykit/consent-manager/internal/integrations/model"
	"github.com/privacykit/consent-manager/internal/storage"
)

// ConsentServiceInterface is the public consent API the UI layer calls.
type ConsentServiceInterface interface {
	GetPreferences() model.PreferenceSet
	HasGivenConsent() bool
	HasConsentFor(key model.CategoryKey) bool
	AcceptAll()
	DeclineOptional()
	Save(preferences model.PreferenceSet)
	Reset()
	Categories() []model.CategoryDescriptor
	GrantedCategories() []model.CategoryKey
	Subscribe(eventType events.EventType, handler events.Handler) func()
}

// Options is the explicit configuration surface accepted at construction.
// Backend is required; everything else has a sensible zero value.
type Options struct {
	Backend    storage.Backend
	Categories []model.CategoryDescriptor
	StorageKey string
	Version    string
	ExpireDays int

	// Integrations maps vendor name to activation token. Vendors without a
	// token are never activated regardless of consent.
	Integrations map[string]string
	Registry     *integrations.Registry
	Sink         integrationmodel.ScriptSink

	OnConsentGiven   func(model.PreferenceSet)
	OnConsentRevoked func()

	// Now is swappable for tests.
	Now func() time.Time
}

// ConsentService composes the schema, store, notifier, and dispatcher into
// the consent facade.
type ConsentService struct {
	schema     *model.Schema
	store      store.ConsentStoreInterface
	notifier   *events.Notifier
	dispatcher *integrations.Dispatcher
	onGiven    func(model.PreferenceSet)
	onRevoked  func()
}

// NewConsentService constructs the facade. If a valid record already exists
// in storage, the qualifying integrations are activated immediately, the
// same way a returning visitor's page load activates them.
func NewConsentService(opts Options) *ConsentService {

	schema := model.NewSchema(opts.Categories)
	notifier := events.NewNotifier()

	registry := opts.Registry
	if registry == nil {
		registry = integrations.NewRegistry()
	}

	var expiry time.Duration
	if opts.ExpireDays > 0 {
		expiry = time.Duration(opts.ExpireDays) * 24 * time.Hour
	}

	consentStore := store.NewConsentStore(opts.Backend, notifier, store.Options{
		StorageKey: opts.StorageKey,
		Version:    opts.Version,
		Expiry:     expiry,
		Now:        opts.Now,
	})

	svc := &ConsentService{
		schema:     schema,
		store:      consentStore,
		notifier:   notifier,
		dispatcher: integrations.NewDispatcher(registry, opts.Integrations, opts.Sink),
		onGiven:    opts.OnConsentGiven,
		onRevoked:  opts.OnConsentRevoked,
	}

	if record := svc.store.Read(); record != nil {
		svc.dispatcher.Dispatch(record.Preferences)
	}
	return svc
}

// GetPreferences returns the stored preferences, or the default set
// (required categories true, all else false) when no record exists.
func (cs *ConsentService) GetPreferences() model.PreferenceSet {
	record := cs.store.Read()
	if record == nil {
		return cs.schema.Defaults()
	}
	return cs.schema.Normalize(record.Preferences)
}

// HasGivenConsent reports whether a valid consent record exists.
func (cs *ConsentService) HasGivenConsent() bool {
	return cs.store.IsPresent()
}

// HasConsentFor reports whether the given category was granted. It fails
// closed: no record and unknown keys both resolve to false.
func (cs *ConsentService) HasConsentFor(key model.CategoryKey) bool {
	record := cs.store.Read()
	if record == nil {
		return false
	}
	return record.Preferences.Granted(key)
}

// AcceptAll grants every configured category and saves.
func (cs *ConsentService) AcceptAll() {
	cs.Save(cs.schema.AllGranted())
}

// DeclineOptional keeps only the required categories granted and saves.
func (cs *ConsentService) DeclineOptional() {
	cs.Save(cs.schema.Defaults())
}

// Save persists the preferences and activates qualifying integrations.
// Required categories are coerced to true even if the caller attempts to
// revoke them. The persisted write, the update broadcast, and the
// integration dispatch happen strictly in that order before Save returns.
func (cs *ConsentService) Save(preferences model.PreferenceSet) {
	normalized := cs.schema.Normalize(preferences)
	cs.store.Write(normalized)
	cs.dispatcher.Dispatch(normalized)
	if cs.onGiven != nil {
		cs.onGiven(normalized.Clone())
	}
}

// Reset deletes the consent record. Already-active integrations stay active;
// deactivating loaded third-party scripts is not supported.
func (cs *ConsentService) Reset() {
	cs.store.Clear()
	if cs.onRevoked != nil {
		cs.onRevoked()
	}
}

// Categories returns the configured category descriptors.
func (cs *ConsentService) Categories() []model.CategoryDescriptor {
	return cs.schema.Categories()
}

// GrantedCategories lists the currently granted categories in configuration
// order.
func (cs *ConsentService) GrantedCategories() []model.CategoryKey {
	preferences := cs.GetPreferences()
	granted := make([]model.CategoryKey, 0, len(preferences))
	for _, category := range cs.schema.Categories() {
		if preferences.Granted(category.Key) {
			granted = append(granted, category.Key)
		}
	}
	return granted
}

// Subscribe registers an observer for consent change events and returns its
// unsubscribe function.
func (cs *ConsentService) Subscribe(eventType events.EventType, handler events.Handler) func() {
	return cs.notifier.Subscribe(eventType, handler)
}
