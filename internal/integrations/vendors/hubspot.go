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
	"fmt"

	model "github.com/privacykit/consent-manager/internal/integrations/model"
)

// HubSpot activates the CRM tracking and chat widget. The token is the hub
// ID.
type HubSpot struct{}

func (HubSpot) Name() string {
	return "hubspot"
}

func (HubSpot) Group() model.VendorGroup {
	return model.GroupFunctional
}

// Activate injects the HubSpot loader script.
func (h HubSpot) Activate(token string, sink model.ScriptSink) error {
	return sink.Inject(model.Script{
		Vendor: h.Name(),
		URL:    fmt.Sprintf("https://js.hs-scripts.com/%s.js", token),
		Async:  true,
		Handle: "_hsq",
	})
}
