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

// GoogleTagManager activates a GTM container. The token is the container ID
// (GTM-XXXXXXX).
type GoogleTagManager struct{}

func (GoogleTagManager) Name() string {
	return "google-tag-manager"
}

func (GoogleTagManager) Group() model.VendorGroup {
	return model.GroupAnalytics
}

// Activate injects the GTM container loader.
func (g GoogleTagManager) Activate(token string, sink model.ScriptSink) error {
	return sink.Inject(model.Script{
		Vendor: g.Name(),
		Inline: fmt.Sprintf(
			"(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});"+
				"var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';"+
				"j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;"+
				"f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','%s');", token),
		Handle: "dataLayer",
	})
}
