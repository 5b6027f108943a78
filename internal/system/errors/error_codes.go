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

package errors

const errorPrefix = "CCM-"

var (
	// Server error codes

	STORAGE_OPEN = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while opening the storage backend.",
	}

	STORAGE_READ = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while reading the consent record.",
	}

	STORAGE_WRITE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while persisting the consent record.",
	}

	STORAGE_DELETE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting the consent record.",
	}

	CONFIG_LOAD = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while loading the deployment configuration.",
	}

	// Client error codes

	INVALID_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "16001",
		Message: "Invalid consent category.",
	}

	INVALID_STORAGE_BACKEND = ErrorMessage{
		Code:    errorPrefix + "16002",
		Message: "Unknown storage backend type.",
	}

	VENDOR_ALREADY_REGISTERED = ErrorMessage{
		Code:    errorPrefix + "16003",
		Message: "A vendor adapter with the same name is already registered.",
	}

	INVALID_VENDOR_GROUP = ErrorMessage{
		Code:    errorPrefix + "16004",
		Message: "Vendor adapter declares an unknown vendor group.",
	}

	MISSING_REQUIRED_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "16005",
		Message: "Category configuration must contain a required category.",
	}
)
