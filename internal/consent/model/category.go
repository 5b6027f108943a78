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

// CategoryKey identifies a consent category.
type CategoryKey string

// Default category keys. The configured category list may replace these; the
// constants exist for the shipped defaults and for the dispatcher's fixed
// category-to-vendor-group table.
const (
	CategoryEssential       CategoryKey = "essential"
	CategoryAnalytics       CategoryKey = "analytics"
	CategoryFunctional      CategoryKey = "functional"
	CategoryMarketing       CategoryKey = "marketing"
	CategoryPerformance     CategoryKey = "performance"
	CategoryPersonalization CategoryKey = "personalization"
)

// CategoryDescriptor describes one consent category presented to the user.
type CategoryDescriptor struct {
	Key         CategoryKey `json:"key" yaml:"key"`                 // Identifier used for internal referencing
	Label       string      `json:"label" yaml:"label"`             // Human-readable category name
	Description string      `json:"description" yaml:"description"` // Shown in the preference dialog
	Required    bool        `json:"required" yaml:"required"`       // Required categories can never be toggled off
}

// DefaultCategories returns the six categories the library ships with.
func DefaultCategories() []CategoryDescriptor {
	return []CategoryDescriptor{
		{
			Key:         CategoryEssential,
			Label:       "Essential",
			Description: "Required for the site to function. Always on.",
			Required:    true,
		},
		{
			Key:         CategoryAnalytics,
			Label:       "Analytics",
			Description: "Helps us understand how visitors use the site.",
		},
		{
			Key:         CategoryFunctional,
			Label:       "Functional",
			Description: "Enables chat widgets and other convenience features.",
		},
		{
			Key:         CategoryMarketing,
			Label:       "Marketing",
			Description: "Allows advertising and retargeting pixels.",
		},
		{
			Key:         CategoryPerformance,
			Label:       "Performance",
			Description: "Enables session replay and heatmap tooling.",
		},
		{
			Key:         CategoryPersonalization,
			Label:       "Personalization",
			Description: "Tailors content to your interests.",
		},
	}
}

// PreferenceSet maps each configured category to whether consent is granted.
type PreferenceSet map[CategoryKey]bool

// Clone returns an independent copy of the preference set.
func (p PreferenceSet) Clone() PreferenceSet {
	cloned := make(PreferenceSet, len(p))
	for key, granted := range p {
		cloned[key] = granted
	}
	return cloned
}

// Granted reports whether the given category is present and granted.
// Unknown keys resolve to false.
func (p PreferenceSet) Granted(key CategoryKey) bool {
	return p[key]
}
