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

import idpmodel "github.com/asgardeo/orgappmgt/internal/idp/model"

// CreateOrganizationSSOIDP builds the system reserved identity provider used for organization SSO.
// A new value is returned on every call.
func CreateOrganizationSSOIDP() *idpmodel.IdentityProvider {
	authenticator := idpmodel.FederatedAuthenticatorConfig{
		Name:        OrganizationLoginAuthenticator,
		DisplayName: OrganizationLoginAuthenticator,
		IsEnabled:   true,
	}
	defaultAuthenticator := authenticator

	return &idpmodel.IdentityProvider{
		Name:                          OrganizationLoginIDPName,
		Description:                   OrganizationSSOIDPDescription,
		ImageURL:                      OrganizationSSOIDPImageURL,
		HomeRealmID:                   OrganizationLoginHomeRealmIdentifier,
		IsPrimary:                     false,
		IsFederationHub:               false,
		DefaultAuthenticatorConfig:    &defaultAuthenticator,
		FederatedAuthenticatorConfigs: []idpmodel.FederatedAuthenticatorConfig{authenticator},
		ClaimConfig: &idpmodel.ClaimConfig{
			LocalClaimDialect: true,
		},
		Properties: []idpmodel.IdentityProviderProperty{
			{
				Name:        idpmodel.IsSystemReservedIDPFlag,
				DisplayName: idpmodel.IsSystemReservedIDPDisplayName,
				Value:       "true",
			},
		},
	}
}
