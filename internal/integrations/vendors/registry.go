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

package vendors

import (
	"github.com/privacykit/consent-manager/internal/integrations"
)

// DefaultRegistry returns a registry populated with the built-in vendor
// adapters. Hosts with custom vendors can start from an empty registry
// instead.
func DefaultRegistry() *integrations.Registry {
	registry := integrations.NewRegistry()
	registry.MustRegister(GoogleAnalytics{})
	registry.MustRegister(GoogleTagManager{})
	registry.MustRegister(Mixpanel{})
	registry.MustRegister(MetaPixel{})
	registry.MustRegister(GoogleAds{})
	registry.MustRegister(Hotjar{})
	registry.MustRegister(Clarity{})
	registry.MustRegister(Intercom{})
	registry.MustRegister(HubSpot{})
	return registry
}
