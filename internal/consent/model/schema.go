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

// Schema holds the configured category set and answers preference-set
// questions against it. The category list is configuration, not hard-coded;
// NewSchema(nil) falls back to the shipped defaults.
type Schema struct {
	categories []CategoryDescriptor
	index      map[CategoryKey]CategoryDescriptor
}

// NewSchema builds a schema from the configured category descriptors.
func NewSchema(categories []CategoryDescriptor) *Schema {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	index := make(map[CategoryKey]CategoryDescriptor, len(categories))
	for _, category := range categories {
		index[category.Key] = category
	}
	return &Schema{categories: categories, index: index}
}

// Categories returns the configured descriptors in declaration order.
func (s *Schema) Categories() []CategoryDescriptor {
	result := make([]CategoryDescriptor, len(s.categories))
	copy(result, s.categories)
	return result
}

// Descriptor returns the descriptor for a key, if configured.
func (s *Schema) Descriptor(key CategoryKey) (CategoryDescriptor, bool) {
	descriptor, ok := s.index[key]
	return descriptor, ok
}

// Knows reports whether the key belongs to the configured category set.
func (s *Schema) Knows(key CategoryKey) bool {
	_, ok := s.index[key]
	return ok
}

// Defaults returns the preference set used before any consent is recorded:
// required categories true, everything else false.
func (s *Schema) Defaults() PreferenceSet {
	preferences := make(PreferenceSet, len(s.categories))
	for _, category := range s.categories {
		preferences[category.Key] = category.Required
	}
	return preferences
}

// AllGranted returns a preference set with every configured category true.
func (s *Schema) AllGranted() PreferenceSet {
	preferences := make(PreferenceSet, len(s.categories))
	for _, category := range s.categories {
		preferences[category.Key] = true
	}
	return preferences
}

// Normalize coerces an arbitrary preference set into a valid one: required
// categories are forced true, keys missing from the configured set are
// filled from the defaults, and unknown keys are dropped.
func (s *Schema) Normalize(preferences PreferenceSet) PreferenceSet {
	normalized := make(PreferenceSet, len(s.categories))
	for _, category := range s.categories {
		granted, ok := preferences[category.Key]
		if !ok {
			granted = category.Required
		}
		if category.Required {
			granted = true
		}
		normalized[category.Key] = granted
	}
	return normalized
}

// IsValid reports whether the preference set covers every configured
// category and keeps every required category granted.
func (s *Schema) IsValid(preferences PreferenceSet) bool {
	for _, category := range s.categories {
		granted, ok := preferences[category.Key]
		if !ok {
			return false
		}
		if category.Required && !granted {
			return false
		}
	}
	return true
}
