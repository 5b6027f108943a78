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

// Intercom activates the chat messenger. The token is the workspace app ID.
type Intercom struct{}

func (Intercom) Name() string {
	return "intercom"
}

func (Intercom) Group() model.VendorGroup {
	return model.GroupFunctional
}

// Activate injects the widget loader and boots the messenger.
func (i Intercom) Activate(token string, sink model.ScriptSink) error {
	if err := sink.Inject(model.Script{
		Vendor: i.Name(),
		URL:    fmt.Sprintf("https://widget.intercom.io/widget/%s", token),
		Async:  true,
		Handle: "Intercom",
	}); err != nil {
		return err
	}
	return sink.Inject(model.Script{
		Vendor: i.Name(),
		Inline: fmt.Sprintf("window.intercomSettings = {app_id: '%s'};window.Intercom('boot', window.intercomSettings);", token),
		Handle: "Intercom",
	})
}
