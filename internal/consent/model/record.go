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

import "time"

// ConsentRecord is the sole durable artifact of the subsystem. It is created
// only by an explicit save, destroyed only by an explicit reset, and read on
// every startup.
type ConsentRecord struct {
	ID          string        `json:"id,omitempty"` // Receipt identifier assigned at save time
	Preferences PreferenceSet `json:"preferences"`
	Timestamp   int64         `json:"timestamp"` // Epoch milliseconds of the save
	Version     string        `json:"version"`   // Schema version the record was saved under
}

// SavedAt returns the save instant of the record.
func (r *ConsentRecord) SavedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// ExpiredAt reports whether the record is older than the expiration window at
// the given instant. A zero window disables expiration.
func (r *ConsentRecord) ExpiredAt(now time.Time, window time.Duration) bool {
	if window <= 0 {
		return false
	}
	return now.After(r.SavedAt().Add(window))
}
