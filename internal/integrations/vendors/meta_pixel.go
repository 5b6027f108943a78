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

// MetaPixel activates the Meta (Facebook) retargeting pixel. The token is
// the pixel ID.
type MetaPixel struct{}

func (MetaPixel) Name() string {
	return "meta-pixel"
}

func (MetaPixel) Group() model.VendorGroup {
	return model.GroupMarketing
}

// Activate injects the fbevents loader and fires the initial PageView.
func (p MetaPixel) Activate(token string, sink model.ScriptSink) error {
	return sink.Inject(model.Script{
		Vendor: p.Name(),
		Inline: fmt.Sprintf(
			"!function(f,b,e,v,n,t,s){if(f.fbq)return;n=f.fbq=function(){n.callMethod?"+
				"n.callMethod.apply(n,arguments):n.queue.push(arguments)};"+
				"if(!f._fbq)f._fbq=n;n.push=n;n.loaded=!0;n.version='2.0';n.queue=[];"+
				"t=b.createElement(e);t.async=!0;t.src=v;s=b.getElementsByTagName(e)[0];"+
				"s.parentNode.insertBefore(t,s)}(window,document,'script','https://connect.facebook.net/en_US/fbevents.js');"+
				"fbq('init', '%s');fbq('track', 'PageView');", token),
		Handle: "fbq",
	})
}
