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

package config

import (
	model "github.com/privacykit/consent-manager/internal/consent/model"
)

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, file, or sqlite
	Path    string `yaml:"path"`
}

type ConsentConfig struct {
	StorageKey string `yaml:"storage_key"`
	Version    string `yaml:"version"`
	ExpireDays int    `yaml:"expire_days"`
}

// Config is the full deployment configuration. Categories and integrations
// are optional; an empty category list falls back to the shipped defaults
// and an empty integration map disables every vendor.
type Config struct {
	Log          LogConfig                  `yaml:"log"`
	Storage      StorageConfig              `yaml:"storage"`
	Consent      ConsentConfig              `yaml:"consent"`
	Categories   []model.CategoryDescriptor `yaml:"categories"`
	Integrations map[string]string          `yaml:"integrations"`
}
