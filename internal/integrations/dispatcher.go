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
	"sync"

	consent "github.com/privacykit/consent-manager/internal/consent/model"
	model "github.com/privacykit/consent-manager/internal/integrations/model"
	"github.com/privacykit/consent-manager/internal/system/log"
)

// activationOrder is the fixed category-to-vendor-group policy. Activation
// across categories follows this order; order within one group is
// unspecified.
var activationOrder = []struct {
	Category consent.CategoryKey
	Group    model.VendorGroup
}{
	{consent.CategoryAnalytics, model.GroupAnalytics},
	{consent.CategoryMarketing, model.GroupMarketing},
	{consent.CategoryPerformance, model.GroupPerformance},
	{consent.CategoryFunctional, model.GroupFunctional},
}

// Dispatcher activates configured vendors whose governing category was
// granted. Each vendor is activated at most once per process lifetime; a
// later save that revokes a category never deactivates an already-active
// vendor, matching the limits of script injection on a live page.
type Dispatcher struct {
	registry *Registry
	tokens   map[string]string
	sink     model.ScriptSink

	mutex     sync.Mutex
	activated map[string]bool
}

// NewDispatcher creates a dispatcher over the given adapter registry. The
// tokens map is the integration configuration: vendor name to activation
// token. A vendor without a token is never attempted.
func NewDispatcher(registry *Registry, tokens map[string]string, sink model.ScriptSink) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		tokens:    tokens,
		sink:      sink,
		activated: make(map[string]bool),
	}
}

// Dispatch activates every configured vendor in a granted category. It never
// fails: activation errors are logged and swallowed, consistent with
// fire-and-forget telemetry bootstrap.
func (d *Dispatcher) Dispatch(preferences consent.PreferenceSet) {

	logger := log.GetLogger()
	if d.sink == nil {
		logger.Debug("No script sink configured, skipping integration dispatch")
		return
	}

	for _, entry := range activationOrder {
		if !preferences.Granted(entry.Category) {
			continue
		}
		for _, adapter := range d.registry.AdaptersFor(entry.Group) {
			d.activate(adapter, logger)
		}
	}
}

func (d *Dispatcher) activate(adapter model.Adapter, logger *log.Logger) {

	token, configured := d.tokens[adapter.Name()]
	if !configured || token == "" {
		return
	}

	d.mutex.Lock()
	if d.activated[adapter.Name()] {
		d.mutex.Unlock()
		return
	}
	// Marked before the attempt: failed activations are never retried.
	d.activated[adapter.Name()] = true
	d.mutex.Unlock()

	if err := adapter.Activate(token, d.sink); err != nil {
		logger.Debug(fmt.Sprintf("Activation failed for vendor: %s", adapter.Name()), log.Error(err))
		return
	}
	logger.Info(fmt.Sprintf("Activated vendor: %s", adapter.Name()))
}

// Activated reports whether the named vendor was already activated in this
// process lifetime.
func (d *Dispatcher) Activated(vendor string) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.activated[vendor]
}
