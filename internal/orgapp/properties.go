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
	"strconv"
	"strings"

	appmodel "github.com/asgardeo/orgappmgt/internal/application/model"
	"github.com/asgardeo/orgappmgt/internal/system/cmodels"
)

// SetShareWithAllChildrenProperty sets the property indicating whether the application should be
// shared with all child organizations.
func SetShareWithAllChildrenProperty(sp *appmodel.ServiceProvider, value bool) {
	setProperty(sp, ShareWithAllChildrenProperty, strconv.FormatBool(value))
}

// RemoveShareWithAllChildrenProperty removes the share with all children property, if present.
func RemoveShareWithAllChildrenProperty(sp *appmodel.ServiceProvider) {
	if sp == nil || sp.Properties == nil {
		return
	}
	sp.Properties.Remove(ShareWithAllChildrenProperty)
}

// IsShareWithAllChildren checks whether the application is configured to be shared with all
// child organizations.
func IsShareWithAllChildren(properties *cmodels.Properties) bool {
	return isFlagSet(properties, ShareWithAllChildrenProperty)
}

// IsShareWithAllChildrenPropertyAvailable checks whether the share with all children property exists,
// regardless of its value.
func IsShareWithAllChildrenPropertyAvailable(properties *cmodels.Properties) bool {
	return properties.HasFold(ShareWithAllChildrenProperty)
}

// SetAppAssociatedRoleSharingMode sets the role sharing mode of the application.
func SetAppAssociatedRoleSharingMode(sp *appmodel.ServiceProvider, mode RoleSharingMode) {
	setProperty(sp, RoleSharingModeProperty, mode.String())
}

// GetAppAssociatedRoleSharingMode returns the role sharing mode of the application.
// Applications shared before role sharing modes existed carry no property and share all roles,
// so an absent property resolves to RoleSharingModeAll. A stored value that is not a known mode
// is reported as an error.
func GetAppAssociatedRoleSharingMode(sp *appmodel.ServiceProvider) (RoleSharingMode, error) {
	if sp == nil {
		return RoleSharingModeAll, nil
	}
	value, ok := sp.Properties.Get(RoleSharingModeProperty)
	if !ok {
		return RoleSharingModeAll, nil
	}
	return ParseRoleSharingMode(value)
}

// SetIsAppSharedProperty sets the property indicating whether the application is shared with any
// child organization.
func SetIsAppSharedProperty(sp *appmodel.ServiceProvider, value bool) {
	setProperty(sp, IsAppSharedProperty, strconv.FormatBool(value))
}

// IsAppShared checks whether the application is marked as shared.
func IsAppShared(properties *cmodels.Properties) bool {
	return isFlagSet(properties, IsAppSharedProperty)
}

// setProperty upserts the property, creating the property collection when the application has none.
func setProperty(sp *appmodel.ServiceProvider, name, value string) {
	if sp == nil {
		return
	}
	if sp.Properties == nil {
		sp.Properties = cmodels.NewProperties()
	}
	sp.Properties.Set(name, value)
}

// isFlagSet reports whether any property matching the name, ignoring case, holds a true value.
func isFlagSet(properties *cmodels.Properties, name string) bool {
	for _, property := range properties.List() {
		if strings.EqualFold(property.Name, name) && parseBool(property.Value) {
			return true
		}
	}
	return false
}

// parseBool treats only a case insensitive "true" as true.
func parseBool(value string) bool {
	return strings.EqualFold(value, "true")
}
