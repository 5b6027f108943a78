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

package integrations

import (
	"fmt"

	model "github.com/privacykit/consent-manager/internal/integrations/model"
	errors2 "github.com/privacykit/consent-manager/internal/system/errors"
)

// Registry holds the vendor adapters known to the dispatcher, grouped by the
// vendor group that gates them. Registration order within a group is
// preserved, but callers must not rely on activation order inside one group.
type Registry struct {
	byName  map[string]model.Adapter
	byGroup map[model.VendorGroup][]model.Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]model.Adapter),
		byGroup: make(map[model.VendorGroup][]model.Adapter),
	}
}

// Register adds one vendor adapter.
func (r *Registry) Register(adapter model.Adapter) error {

	if !model.AllowedVendorGroups[adapter.Group()] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_VENDOR_GROUP.Code,
			Message:     errors2.INVALID_VENDOR_GROUP.Message,
			Description: fmt.Sprintf("Vendor %s declares group %s.", adapter.Name(), adapter.Group()),
		})
	}

	if _, exists := r.byName[adapter.Name()]; exists {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.VENDOR_ALREADY_REGISTERED.Code,
			Message:     errors2.VENDOR_ALREADY_REGISTERED.Message,
			Description: fmt.Sprintf("Vendor %s is already registered.", adapter.Name()),
		})
	}

	r.byName[adapter.Name()] = adapter
	r.byGroup[adapter.Group()] = append(r.byGroup[adapter.Group()], adapter)
	return nil
}

// MustRegister registers an adapter and panics on error. It exists for the
// built-in vendor set, where a registration failure is a programming error.
func (r *Registry) MustRegister(adapter model.Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// AdaptersFor returns the adapters gated by the given group.
func (r *Registry) AdaptersFor(group model.VendorGroup) []model.Adapter {
	adapters := make([]model.Adapter, len(r.byGroup[group]))
	copy(adapters, r.byGroup[group])
	return adapters
}

// Lookup returns the adapter registered under the given name.
func (r *Registry) Lookup(name string) (model.Adapter, bool) {
	adapter, found := r.byName[name]
	return adapter, found
}
