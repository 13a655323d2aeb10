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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	idpmodel "github.com/asgardeo/orgappmgt/internal/idp/model"
)

func TestCreateOrganizationSSOIDP(t *testing.T) {
	idp := CreateOrganizationSSOIDP()

	require.NotNil(t, idp)
	assert.Equal(t, "SSO", idp.Name)
	assert.Equal(t, "Identity provider for Organization SSO.", idp.Description)
	assert.Equal(t, "assets/images/logos/sso.svg", idp.ImageURL)
	assert.Equal(t, "OrganizationSSO", idp.HomeRealmID)
	assert.False(t, idp.IsPrimary)
	assert.False(t, idp.IsFederationHub)

	require.Len(t, idp.FederatedAuthenticatorConfigs, 1)
	authenticator := idp.FederatedAuthenticatorConfigs[0]
	assert.Equal(t, "OrganizationAuthenticator", authenticator.Name)
	assert.Equal(t, "OrganizationAuthenticator", authenticator.DisplayName)
	assert.True(t, authenticator.IsEnabled)
	require.NotNil(t, idp.DefaultAuthenticatorConfig)
	assert.Equal(t, authenticator, *idp.DefaultAuthenticatorConfig)

	require.NotNil(t, idp.ClaimConfig)
	assert.True(t, idp.ClaimConfig.LocalClaimDialect)

	assert.Equal(t, []idpmodel.IdentityProviderProperty{
		{Name: "isSystemReservedIdP", DisplayName: "Is System Reserved IdP", Value: "true"},
	}, idp.Properties)
	property, ok := idp.GetProperty(idpmodel.IsSystemReservedIDPFlag)
	require.True(t, ok)
	assert.Equal(t, "true", property.Value)
}

func TestCreateOrganizationSSOIDPReturnsFreshValues(t *testing.T) {
	first := CreateOrganizationSSOIDP()
	second := CreateOrganizationSSOIDP()

	first.Name = "changed"
	first.Properties[0].Value = "false"
	first.DefaultAuthenticatorConfig.IsEnabled = false
	first.FederatedAuthenticatorConfigs[0].Name = "changed"

	assert.Equal(t, "SSO", second.Name)
	assert.Equal(t, "true", second.Properties[0].Value)
	assert.True(t, second.DefaultAuthenticatorConfig.IsEnabled)
	assert.Equal(t, "OrganizationAuthenticator", second.FederatedAuthenticatorConfigs[0].Name)
}
