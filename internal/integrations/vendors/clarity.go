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

// Clarity activates Microsoft Clarity session replay. The token is the
// project ID.
type Clarity struct{}

func (Clarity) Name() string {
	return "clarity"
}

func (Clarity) Group() model.VendorGroup {
	return model.GroupPerformance
}

// Activate injects the Clarity tracking snippet.
func (c Clarity) Activate(token string, sink model.ScriptSink) error {
	return sink.Inject(model.Script{
		Vendor: c.Name(),
		Inline: fmt.Sprintf(
			"(function(c,l,a,r,i,t,y){c[a]=c[a]||function(){(c[a].q=c[a].q||[]).push(arguments)};"+
				"t=l.createElement(r);t.async=1;t.src='https://www.clarity.ms/tag/'+i;"+
				"y=l.getElementsByTagName(r)[0];y.parentNode.insertBefore(t,y);"+
				"})(window,document,'clarity','script','%s');", token),
		Handle: "clarity",
	})
}
