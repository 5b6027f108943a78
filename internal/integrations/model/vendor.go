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

package model

// VendorGroup classifies vendors by the consent category that gates them.
type VendorGroup string

const (
	GroupAnalytics   VendorGroup = "analytics"   // tag managers, product analytics
	GroupMarketing   VendorGroup = "marketing"   // ad and retargeting pixels
	GroupPerformance VendorGroup = "performance" // session replay, heatmaps
	GroupFunctional  VendorGroup = "functional"  // chat and CRM widgets
)

// AllowedVendorGroups defines the valid set of vendor groups.
var AllowedVendorGroups = map[VendorGroup]bool{
	GroupAnalytics:   true,
	GroupMarketing:   true,
	GroupPerformance: true,
	GroupFunctional:  true,
}

// Script is one bootstrap resource a vendor adapter hands to the host page.
type Script struct {
	Vendor string // Adapter name that produced the script
	URL    string // External resource to load, if any
	Inline string // Inline bootstrap statements, if any
	Async  bool   // Whether the external resource loads asynchronously
	Handle string // Global handle the bootstrap initializes (e.g. "gtag")
}

// ScriptSink is the collaborator the host application supplies to receive
// injected scripts. Loading the resource is fire and forget; the sink's
// error is logged and swallowed, never surfaced to the saving user.
type ScriptSink interface {
	Inject(script Script) error
}

// Adapter activates one vendor. Activate builds the vendor's bootstrap
// scripts for the given token and hands them to the sink. Adapters do not
// track activation state themselves; the dispatcher guarantees at most one
// Activate call per vendor per process lifetime.
type Adapter interface {
	Name() string
	Group() VendorGroup
	Activate(token string, sink ScriptSink) error
}
