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

package provider

import (
	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/consent/service"
	integrationmodel "github.com/privacykit/consent-manager/internal/integrations/model"
	"github.com/privacykit/consent-manager/internal/integrations/vendors"
	"github.com/privacykit/consent-manager/internal/storage"
	"github.com/privacykit/consent-manager/internal/system/config"
)

// ConsentProviderInterface defines the interface for the consent provider.
type ConsentProviderInterface interface {
	GetConsentService() service.ConsentServiceInterface
	Close() error
}

// ConsentProvider wires a consent service from the deployment configuration:
// it opens the configured storage backend, installs the built-in vendor
// registry, and owns the backend's lifetime.
type ConsentProvider struct {
	svc     service.ConsentServiceInterface
	backend storage.Backend
}

// NewConsentProvider creates a provider from the deployment configuration.
// The sink and callbacks come from the host application, not the file.
func NewConsentProvider(cfg *config.Config, sink integrationmodel.ScriptSink,
	onGiven func(model.PreferenceSet), onRevoked func()) (*ConsentProvider, error) {

	backend, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	svc := service.NewConsentService(service.Options{
		Backend:          backend,
		Categories:       cfg.Categories,
		StorageKey:       cfg.Consent.StorageKey,
		Version:          cfg.Consent.Version,
		ExpireDays:       cfg.Consent.ExpireDays,
		Integrations:     cfg.Integrations,
		Registry:         vendors.DefaultRegistry(),
		Sink:             sink,
		OnConsentGiven:   onGiven,
		OnConsentRevoked: onRevoked,
	})

	return &ConsentProvider{svc: svc, backend: backend}, nil
}

// GetConsentService returns the consent service instance.
func (cp *ConsentProvider) GetConsentService() service.ConsentServiceInterface {
	return cp.svc
}

// Close releases the underlying storage backend.
func (cp *ConsentProvider) Close() error {
	return cp.backend.Close()
}
