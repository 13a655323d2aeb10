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

// Package model defines the identity provider data structures.
package model

// IdentityProvider represents a federated identity provider.
type IdentityProvider struct {
	Name                          string                         `json:"name"`
	Description                   string                         `json:"description,omitempty"`
	ImageURL                      string                         `json:"image_url,omitempty"`
	HomeRealmID                   string                         `json:"home_realm_id,omitempty"`
	IsPrimary                     bool                           `json:"is_primary"`
	IsFederationHub               bool                           `json:"is_federation_hub"`
	DefaultAuthenticatorConfig    *FederatedAuthenticatorConfig  `json:"default_authenticator_config,omitempty"`
	FederatedAuthenticatorConfigs []FederatedAuthenticatorConfig `json:"federated_authenticator_configs"`
	ClaimConfig                   *ClaimConfig                   `json:"claim_config,omitempty"`
	Properties                    []IdentityProviderProperty     `json:"properties"`
}

// FederatedAuthenticatorConfig represents the configuration of a federated authenticator.
type FederatedAuthenticatorConfig struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsEnabled   bool   `json:"is_enabled"`
}

// ClaimConfig represents the claim configuration of an identity provider.
type ClaimConfig struct {
	LocalClaimDialect bool `json:"local_claim_dialect"`
}

// IdentityProviderProperty represents a property of an identity provider.
type IdentityProviderProperty struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Value       string `json:"value"`
}

// GetProperty returns the property with the given name.
func (idp *IdentityProvider) GetProperty(name string) (IdentityProviderProperty, bool) {
	for _, property := range idp.Properties {
		if property.Name == name {
			return property, true
		}
	}
	return IdentityProviderProperty{}, false
}
