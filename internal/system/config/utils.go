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
	"fmt"
	"os"

	errors2 "github.com/privacykit/consent-manager/internal/system/errors"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads and parses the deployment configuration file. Environment
// variable references in the file are expanded before parsing.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_LOAD.Code,
			Message:     errors2.CONFIG_LOAD.Message,
			Description: fmt.Sprintf("Failed to read configuration file: %s", filePath),
		}, err)
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_LOAD.Code,
			Message:     errors2.CONFIG_LOAD.Message,
			Description: fmt.Sprintf("Failed to parse configuration file: %s", filePath),
		}, err)
	}
	return &cfg, nil
}
