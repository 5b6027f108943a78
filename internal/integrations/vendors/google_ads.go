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

// GoogleAds activates conversion tracking. The token is the conversion ID
// (AW-XXXXXXXXX).
type GoogleAds struct{}

func (GoogleAds) Name() string {
	return "google-ads"
}

func (GoogleAds) Group() model.VendorGroup {
	return model.GroupMarketing
}

// Activate injects the gtag loader configured for the Ads account. The
// loader is shared with Google Analytics, but the dispatcher tracks
// activation per vendor, so both can be configured side by side.
func (g GoogleAds) Activate(token string, sink model.ScriptSink) error {
	if err := sink.Inject(model.Script{
		Vendor: g.Name(),
		URL:    fmt.Sprintf("https://www.googletagmanager.com/gtag/js?id=%s", token),
		Async:  true,
		Handle: "dataLayer",
	}); err != nil {
		return err
	}
	return sink.Inject(model.Script{
		Vendor: g.Name(),
		Inline: fmt.Sprintf(
			"window.dataLayer = window.dataLayer || [];"+
				"function gtag(){dataLayer.push(arguments);}"+
				"gtag('js', new Date());gtag('config', '%s');", token),
		Handle: "gtag",
	})
}
