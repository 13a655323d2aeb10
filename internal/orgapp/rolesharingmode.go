/*
 * Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

package orgapp

import (
	"errors"
	"fmt"
)

// RoleSharingMode defines how the roles of an application propagate to the organizations
// the application is shared with.
type RoleSharingMode string

const (
	// RoleSharingModeAll shares all the application roles.
	RoleSharingModeAll RoleSharingMode = "ALL"
	// RoleSharingModeSelected shares only the selected application roles.
	RoleSharingModeSelected RoleSharingMode = "SELECTED"
	// RoleSharingModeNone shares none of the application roles.
	RoleSharingModeNone RoleSharingMode = "NONE"
)

// ErrInvalidRoleSharingMode is returned when a value does not name a known role sharing mode.
var ErrInvalidRoleSharingMode = errors.New("invalid role sharing mode")

var roleSharingModes = []RoleSharingMode{
	RoleSharingModeAll,
	RoleSharingModeSelected,
	RoleSharingModeNone,
}

// ParseRoleSharingMode returns the role sharing mode with the given name. Names are case sensitive.
func ParseRoleSharingMode(value string) (RoleSharingMode, error) {
	for _, mode := range roleSharingModes {
		if string(mode) == value {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoleSharingMode, value)
}

// String returns the name of the role sharing mode.
func (m RoleSharingMode) String() string {
	return string(m)
}
