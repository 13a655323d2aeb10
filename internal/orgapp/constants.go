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

// Service provider property names managed by the organization application utilities.
const (
	// ShareWithAllChildrenProperty marks an application as shared with all child organizations.
	ShareWithAllChildrenProperty = "shareWithAllChildren"
	// RoleSharingModeProperty holds the role sharing mode of a shared application.
	RoleSharingModeProperty = "roleSharingMode"
	// IsAppSharedProperty marks an application as shared with at least one child organization.
	IsAppSharedProperty = "isAppShared"
)

// Organization SSO identity provider constants.
const (
	// OrganizationLoginAuthenticator is the federated authenticator used for organization login.
	OrganizationLoginAuthenticator = "OrganizationAuthenticator"
	// OrganizationLoginIDPName is the name of the organization SSO identity provider.
	OrganizationLoginIDPName = "SSO"
	// OrganizationLoginHomeRealmIdentifier is the home realm identifier of the organization SSO identity provider.
	OrganizationLoginHomeRealmIdentifier = "OrganizationSSO"
	// OrganizationSSOIDPImageURL is the image shown for the organization SSO identity provider.
	OrganizationSSOIDPImageURL = "assets/images/logos/sso.svg"
	// OrganizationSSOIDPDescription is the description of the organization SSO identity provider.
	OrganizationSSOIDPDescription = "Identity provider for Organization SSO."
)

// DefaultServiceProviderName is the name of the service provider holding the default configurations.
const DefaultServiceProviderName = "default"
