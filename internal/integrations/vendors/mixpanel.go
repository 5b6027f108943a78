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

// Mixpanel activates product analytics. The token is the project token.
type Mixpanel struct{}

func (Mixpanel) Name() string {
	return "mixpanel"
}

func (Mixpanel) Group() model.VendorGroup {
	return model.GroupAnalytics
}

// Activate injects the Mixpanel library and initializes the project.
func (m Mixpanel) Activate(token string, sink model.ScriptSink) error {
	if err := sink.Inject(model.Script{
		Vendor: m.Name(),
		URL:    "https://cdn.mxpnl.com/libs/mixpanel-2-latest.min.js",
		Async:  true,
		Handle: "mixpanel",
	}); err != nil {
		return err
	}
	return sink.Inject(model.Script{
		Vendor: m.Name(),
		Inline: fmt.Sprintf("mixpanel.init('%s');", token),
		Handle: "mixpanel",
	})
}
